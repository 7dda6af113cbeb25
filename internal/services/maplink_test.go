package services

import (
	"net/url"
	"strings"
	"testing"

	"trip-planner-service/internal/domain"
)

func TestBuildMapsURLPreservesOrderAndEncoding(t *testing.T) {
	link := BuildMapsURL(
		domain.Coordinates{Lat: 1, Lon: 1},
		[]domain.Coordinates{{Lat: 2, Lon: 2}, {Lat: 3, Lon: 3}},
		domain.Coordinates{Lat: 4, Lon: 4},
	)

	if !strings.HasPrefix(link, "https://www.google.com/maps/dir/?") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	// The waypoint separator must be percent-encoded in the raw URL.
	if !strings.Contains(link, "2%2C2%7C3%2C3") {
		t.Fatalf("expected percent-encoded ordered waypoints in %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	q := u.Query()

	if got := q.Get("origin"); got != "1,1" {
		t.Fatalf("origin = %q, want \"1,1\"", got)
	}
	if got := q.Get("destination"); got != "4,4" {
		t.Fatalf("destination = %q, want \"4,4\"", got)
	}
	if got := q.Get("travelmode"); got != "driving" {
		t.Fatalf("travelmode = %q, want \"driving\"", got)
	}
	if got := q.Get("waypoints"); got != "2,2|3,3" {
		t.Fatalf("waypoints = %q, want \"2,2|3,3\"", got)
	}
}

func TestBuildMapsURLWithoutWaypoints(t *testing.T) {
	link := BuildMapsURL(
		domain.Coordinates{Lat: 1, Lon: 1},
		nil,
		domain.Coordinates{Lat: 4, Lon: 4},
	)

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if u.Query().Has("waypoints") {
		t.Fatalf("expected no waypoints parameter in %s", link)
	}
}

func TestBuildMapsURLIsDeterministic(t *testing.T) {
	a := BuildMapsURL(domain.Coordinates{Lat: 1, Lon: 1}, []domain.Coordinates{{Lat: 2, Lon: 2}}, domain.Coordinates{Lat: 3, Lon: 3})
	b := BuildMapsURL(domain.Coordinates{Lat: 1, Lon: 1}, []domain.Coordinates{{Lat: 2, Lon: 2}}, domain.Coordinates{Lat: 3, Lon: 3})
	if a != b {
		t.Fatalf("link builder not deterministic: %s vs %s", a, b)
	}
}
