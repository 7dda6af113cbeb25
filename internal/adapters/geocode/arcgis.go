package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// ArcGISProvider is the secondary geocoder, backed by the keyless ArcGIS
// findAddressCandidates endpoint. It is only consulted when the primary
// provider returns nothing, so it carries no rate limiter.
type ArcGISProvider struct {
	session *http.Client
	baseURL string
}

func NewArcGISProvider() *ArcGISProvider {
	return &ArcGISProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://geocode.arcgis.com/arcgis/rest/services/World/GeocodeServer",
	}
}

func NewArcGISProviderAt(baseURL string) *ArcGISProvider {
	return &ArcGISProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type arcgisResponse struct {
	Candidates []struct {
		Address  string `json:"address"`
		Location struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"location"`
	} `json:"candidates"`
}

// Geocode resolves a free-text address. Returns (nil, nil) when ArcGIS has
// no candidate.
func (p *ArcGISProvider) Geocode(ctx context.Context, address string) (_ *domain.ResolvedLocation, err error) {
	defer obs.Time(ctx, "arcgis.Geocode")(&err)

	makeReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/findAddressCandidates", nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("f", "json")
		q.Set("singleLine", address)
		q.Set("maxLocations", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := doWithRetry(ctx, p.session, 2, makeReq)
	if err != nil {
		return nil, fmt.Errorf("arcgis geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var decoded arcgisResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("arcgis geocode %q: decode response: %w", address, err)
	}
	if len(decoded.Candidates) == 0 {
		return nil, nil
	}

	c := decoded.Candidates[0]
	loc := &domain.ResolvedLocation{
		// ArcGIS reports x=longitude, y=latitude.
		Coordinates:    domain.Coordinates{Lat: c.Location.Y, Lon: c.Location.X},
		DisplayAddress: c.Address,
	}
	if err := loc.Coordinates.Validate(); err != nil {
		return nil, fmt.Errorf("arcgis geocode %q: %w", address, err)
	}
	return loc, nil
}
