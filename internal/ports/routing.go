package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for retrieving the driving duration between two coordinates.
// Implementations return raw provider seconds; the travel time estimator
// owns the conversion to minutes and the fallback on failure.
type DurationProvider interface {
	// Return travel duration in seconds between two points.
	DurationSeconds(ctx context.Context, origin, destination domain.Coordinates) (float64, error)
}
