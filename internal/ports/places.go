package ports

import "context"

// A point of interest as stored in the catalog.
type PlaceRecord struct {
	City     string
	Name     string
	BestTime string
}

// Port: a boundary for retrieving the point-of-interest catalog from a data
// source.
type PlaceRepository interface {
	// Retrieve all catalog entries.
	ListPlaces(ctx context.Context) ([]PlaceRecord, error)
}
