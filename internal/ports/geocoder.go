package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for turning a free-text address into coordinates.
//
// A nil result with a nil error means the provider answered but found
// nothing; the caller is expected to try the next provider in its chain.
type Geocoder interface {
	// Resolve an address. Returns (nil, nil) when the provider has no match.
	Geocode(ctx context.Context, address string) (*domain.ResolvedLocation, error)
}

// Contract for retrieving the bounding rectangle of a city.
type BoundaryProvider interface {
	// Return the city's bounding box. Returns (nil, nil) when the city is
	// unknown to the provider.
	CityBounds(ctx context.Context, cityName string) (*domain.BoundingBox, error)
}
