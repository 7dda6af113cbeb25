// Package catalog holds the static tourism reference data: which points of
// interest belong to each city, and when each is best visited. The catalog
// is built once at startup and read-only afterwards.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"trip-planner-service/internal/ports"
)

const noInfo = "Information not available."

// Catalog is an immutable city -> places / place -> best-season mapping.
type Catalog struct {
	cityPlaces map[string][]string
	bestTime   map[string]string
	cityNames  []string
	// bestTime keys sorted by descending length so substring lookups prefer
	// the most specific catalog entry.
	keysByLength []string
}

// New builds a catalog from records. Later records for the same (city, name)
// pair win.
func New(records []ports.PlaceRecord) *Catalog {
	c := &Catalog{
		cityPlaces: make(map[string][]string),
		bestTime:   make(map[string]string),
	}

	seen := make(map[string]map[string]bool)
	for _, r := range records {
		city := strings.TrimSpace(r.City)
		name := strings.TrimSpace(r.Name)
		if city == "" || name == "" {
			continue
		}
		if seen[city] == nil {
			seen[city] = make(map[string]bool)
		}
		if !seen[city][name] {
			seen[city][name] = true
			c.cityPlaces[city] = append(c.cityPlaces[city], name)
		}
		c.bestTime[name] = r.BestTime
	}

	for city := range c.cityPlaces {
		c.cityNames = append(c.cityNames, city)
	}
	sort.Strings(c.cityNames)

	for k := range c.bestTime {
		c.keysByLength = append(c.keysByLength, k)
	}
	sort.Slice(c.keysByLength, func(i, j int) bool {
		a, b := c.keysByLength[i], c.keysByLength[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return c
}

// Load builds a catalog from a repository, falling back to the built-in
// defaults when repo is nil.
func Load(ctx context.Context, repo ports.PlaceRepository) (*Catalog, error) {
	if repo == nil {
		return New(Defaults()), nil
	}
	records, err := repo.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(records) == 0 {
		return New(Defaults()), nil
	}
	return New(records), nil
}

// Cities returns the known city names in sorted order.
func (c *Catalog) Cities() []string {
	out := make([]string, len(c.cityNames))
	copy(out, c.cityNames)
	return out
}

// Places returns the points of interest of a city in catalog order.
func (c *Catalog) Places(city string) []string {
	places := c.cityPlaces[city]
	out := make([]string, len(places))
	copy(out, places)
	return out
}

// HasCity reports whether the city is in the catalog.
func (c *Catalog) HasCity(city string) bool {
	_, ok := c.cityPlaces[city]
	return ok
}

// BestTime returns the best-time-to-visit text for a stop label using a
// case-insensitive substring match against the catalog keys. When several
// keys match (one place name contained in another), the longest key wins;
// equal lengths break lexicographically. Unknown labels return a fixed
// "no information" text.
func (c *Catalog) BestTime(label string) string {
	lower := strings.ToLower(label)
	for _, key := range c.keysByLength {
		if strings.Contains(lower, strings.ToLower(key)) {
			return c.bestTime[key]
		}
	}
	return noInfo
}
