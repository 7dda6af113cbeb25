package geocode

import (
	"context"

	"trip-planner-service/internal/domain"
)

// MockGeocoder serves canned resolutions keyed by address text. Addresses
// without an entry resolve to (nil, nil), matching the "no match" contract.
type MockGeocoder struct {
	m    map[string]domain.ResolvedLocation
	Err  error
	Hits int
}

func NewMockGeocoder(entries map[string]domain.ResolvedLocation) *MockGeocoder {
	return &MockGeocoder{m: entries}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (*domain.ResolvedLocation, error) {
	g.Hits++
	if g.Err != nil {
		return nil, g.Err
	}
	loc, ok := g.m[address]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

// MockBoundaryProvider serves one fixed bounding box for any city.
type MockBoundaryProvider struct {
	Box *domain.BoundingBox
	Err error
}

func (p *MockBoundaryProvider) CityBounds(ctx context.Context, cityName string) (*domain.BoundingBox, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Box, nil
}
