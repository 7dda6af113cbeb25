package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// GeocodeCache stores address -> resolved location mappings so repeated
// sessions do not hammer free geocoding services. Both the resolver and the
// plan orchestrator treat the cache as optional (nil means uncached).
type GeocodeCache interface {
	// Fetch a cached resolution. ok is false on a miss.
	Get(ctx context.Context, address string) (loc domain.ResolvedLocation, ok bool, err error)
	// Store a resolution.
	Put(ctx context.Context, address string, loc domain.ResolvedLocation) error
}

// WeatherCache stores short-lived current-weather readings keyed by rounded
// coordinate so annotating several nearby stops reuses one provider call.
type WeatherCache interface {
	Get(ctx context.Context, at domain.Coordinates) (r domain.WeatherReading, ok bool, err error)
	Put(ctx context.Context, at domain.Coordinates, r domain.WeatherReading) error
}
