package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for retrieving a current-weather observation for a coordinate.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, at domain.Coordinates) (domain.WeatherReading, error)
}
