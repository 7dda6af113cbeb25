package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// NominatimProvider is the primary geocoder, backed by the public Nominatim
// search endpoint. It also serves city boundary lookups.
//
// It coordinates:
//   - A minimum inter-call spacing (Nominatim throttles per client)
//   - Bounded retry with backoff on transient failures
//
// The provider is safe for concurrent use.
type NominatimProvider struct {
	session   *http.Client
	baseURL   string
	userAgent string
	limiter   *rateLimiter
}

func NewNominatimProvider(userAgent string) *NominatimProvider {
	return &NominatimProvider{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: userAgent,
		limiter:   newRateLimiter(time.Second),
	}
}

// NewNominatimProviderAt targets a non-default endpoint. Used by tests and
// self-hosted Nominatim installations.
func NewNominatimProviderAt(baseURL, userAgent string, spacing time.Duration) *NominatimProvider {
	return &NominatimProvider{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   newRateLimiter(spacing),
	}
}

type nominatimResult struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	BoundingBox []string `json:"boundingbox"`
}

func (p *NominatimProvider) search(ctx context.Context, query string, details bool) ([]nominatimResult, error) {
	if err := p.limiter.wait(ctx); err != nil {
		return nil, err
	}

	makeReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search", nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", p.userAgent)
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("q", query)
		q.Set("format", "json")
		q.Set("limit", "1")
		if details {
			q.Set("addressdetails", "1")
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := doWithRetry(ctx, p.session, 3, makeReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return decoded, nil
}

// Geocode resolves a free-text address. Returns (nil, nil) when Nominatim
// has no match, so the caller can fall through to the secondary provider.
func (p *NominatimProvider) Geocode(ctx context.Context, address string) (_ *domain.ResolvedLocation, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	results, err := p.search(ctx, address, false)
	if err != nil {
		return nil, fmt.Errorf("nominatim geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	r := results[0]
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim geocode %q: parse lat %q: %w", address, r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim geocode %q: parse lon %q: %w", address, r.Lon, err)
	}

	loc := &domain.ResolvedLocation{
		Coordinates:    domain.Coordinates{Lat: lat, Lon: lon},
		DisplayAddress: r.DisplayName,
	}
	if err := loc.Coordinates.Validate(); err != nil {
		return nil, fmt.Errorf("nominatim geocode %q: %w", address, err)
	}
	return loc, nil
}

// CityBounds looks up the bounding rectangle of a city. Nominatim returns
// the box as [south, north, west, east] strings.
func (p *NominatimProvider) CityBounds(ctx context.Context, cityName string) (_ *domain.BoundingBox, err error) {
	defer obs.Time(ctx, "nominatim.CityBounds")(&err)

	results, err := p.search(ctx, cityName, true)
	if err != nil {
		return nil, fmt.Errorf("nominatim city bounds %q: %w", cityName, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	raw := results[0].BoundingBox
	if len(raw) != 4 {
		return nil, fmt.Errorf("nominatim city bounds %q: expected 4 box values, got %d", cityName, len(raw))
	}

	vals := make([]float64, 4)
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("nominatim city bounds %q: parse box value %q: %w", cityName, s, err)
		}
		vals[i] = v
	}

	box := &domain.BoundingBox{South: vals[0], North: vals[1], West: vals[2], East: vals[3]}
	if err := box.Validate(); err != nil {
		return nil, fmt.Errorf("nominatim city bounds %q: %w", cityName, err)
	}
	return box, nil
}
