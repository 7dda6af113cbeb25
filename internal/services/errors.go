package services

import "errors"

// Resolution failures are fatal to a planning session: the caller must abort
// before any schedule is built on bad input. Provider failures in routing
// and weather are absorbed locally and never surface here.
var (
	// ErrNotFound: no geocoding provider could resolve the address.
	ErrNotFound = errors.New("location not found")
	// ErrOutOfBounds: the resolved coordinate lies outside the city's
	// bounding rectangle.
	ErrOutOfBounds = errors.New("location outside city bounds")
)
