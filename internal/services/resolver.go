package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// Resolver turns free-text addresses into verified coordinates by trying an
// ordered chain of geocoding providers. A provider that errors or returns no
// match simply yields to the next one; only the chain as a whole can fail.
//
// When a bounding box is supplied the resolved coordinate must lie inside
// it. Callers apply the box to user-entered start/return locations only:
// points of interest may legitimately sit just outside a tight city box
// (outskirts), so they are resolved without one.
type Resolver struct {
	providers []ports.Geocoder
	cache     ports.GeocodeCache
}

// NewResolver builds a resolver over the provider chain, tried in order.
// cache may be nil for uncached resolution.
func NewResolver(cache ports.GeocodeCache, providers ...ports.Geocoder) (*Resolver, error) {
	if len(providers) == 0 {
		return nil, errors.New("new resolver: at least one geocoding provider is required")
	}
	return &Resolver{providers: providers, cache: cache}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolve geocodes an address, optionally enforcing city containment.
// Returns ErrNotFound when every provider comes up empty, and ErrOutOfBounds
// when bounds are supplied and the result falls outside them.
func (r *Resolver) Resolve(
	ctx context.Context,
	address string,
	bounds *domain.BoundingBox,
) (domain.ResolvedLocation, error) {
	address = normalize(address)
	if address == "" {
		return domain.ResolvedLocation{}, errors.New("resolve: address must be non-empty")
	}

	loc, err := r.lookup(ctx, address)
	if err != nil {
		return domain.ResolvedLocation{}, err
	}

	if bounds != nil && !bounds.Contains(loc.Coordinates) {
		return domain.ResolvedLocation{}, fmt.Errorf(
			"resolve %q: coordinate %s: %w",
			address, loc.Coordinates, ErrOutOfBounds,
		)
	}

	return loc, nil
}

func (r *Resolver) lookup(ctx context.Context, address string) (domain.ResolvedLocation, error) {
	if r.cache != nil {
		loc, ok, err := r.cache.Get(ctx, address)
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if ok {
			return loc, nil
		}
	}

	for _, provider := range r.providers {
		if err := ctx.Err(); err != nil {
			return domain.ResolvedLocation{}, err
		}

		loc, err := provider.Geocode(ctx, address)
		if err != nil {
			// A failing provider yields to the next in the chain.
			log.Printf("geocode provider failed addr=%q err=%v", address, err)
			continue
		}
		if loc == nil {
			continue
		}

		if r.cache != nil {
			if err := r.cache.Put(ctx, address, *loc); err != nil {
				log.Printf("geocode cache write failed: %v", err)
			}
		}
		return *loc, nil
	}

	return domain.ResolvedLocation{}, fmt.Errorf("resolve %q: %w", address, ErrNotFound)
}
