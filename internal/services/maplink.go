package services

import (
	"net/url"
	"strings"

	"trip-planner-service/internal/domain"
)

// BuildMapsURL renders the itinerary as a single Google Maps directions
// link: origin, ordered waypoints, destination. Pure and deterministic, no
// network call; stop order is preserved exactly as given.
func BuildMapsURL(origin domain.Coordinates, stops []domain.Coordinates, destination domain.Coordinates) string {
	waypoints := make([]string, 0, len(stops))
	for _, c := range stops {
		waypoints = append(waypoints, c.String())
	}

	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", origin.String())
	params.Set("destination", destination.String())
	params.Set("travelmode", "driving")
	if len(waypoints) > 0 {
		params.Set("waypoints", strings.Join(waypoints, "|"))
	}

	return "https://www.google.com/maps/dir/?" + params.Encode()
}
