package weather

import (
	"context"
	"sync/atomic"

	"trip-planner-service/internal/domain"
)

// MockWeatherProvider answers every coordinate with one fixed reading, or
// fails when Err is set. Safe for concurrent use, matching how the advisor
// fans annotation out.
type MockWeatherProvider struct {
	Reading domain.WeatherReading
	Err     error
	hits    int64
}

func (p *MockWeatherProvider) CurrentWeather(ctx context.Context, at domain.Coordinates) (domain.WeatherReading, error) {
	atomic.AddInt64(&p.hits, 1)
	if p.Err != nil {
		return domain.WeatherReading{}, p.Err
	}
	return p.Reading, nil
}

// Hits reports how many lookups the provider has served.
func (p *MockWeatherProvider) Hits() int64 {
	return atomic.LoadInt64(&p.hits)
}
