package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// OSRMProvider implements DurationProvider against the public OSRM routing
// API. Only the route duration is requested (overview=false, no polyline).
//
// Failures propagate to the caller; the travel time estimator owns the
// fallback policy, so this adapter stays a thin decoder.
type OSRMProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMProvider() *OSRMProvider {
	return &OSRMProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "http://router.project-osrm.org",
		profile: "driving",
	}
}

func NewOSRMProviderAt(baseURL string) *OSRMProvider {
	return &OSRMProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		profile: "driving",
	}
}

type routeResponse struct {
	Routes []struct {
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// DurationSeconds fetches the driving duration between two coordinates.
// OSRM expects lon,lat pairs in the path.
func (p *OSRMProvider) DurationSeconds(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ float64, err error) {
	defer obs.Time(ctx, "osrm.DurationSeconds")(&err)

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%g,%g;%g,%g",
		p.baseURL, p.profile,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("overview", "false")
	req.URL.RawQuery = q.Encode()

	resp, err := p.session.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode route response: %w", err)
	}
	if len(decoded.Routes) == 0 {
		return 0, fmt.Errorf("no routes for %s -> %s", origin, destination)
	}

	return decoded.Routes[0].Duration, nil
}
