package services

import (
	"context"
	"fmt"
	"time"

	"trip-planner-service/internal/catalog"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type StopRequest struct {
	Place        string
	DwellMinutes int
}

type PlanTripRequest struct {
	City          string
	StartAddress  string
	ReturnAddress string
	StartAt       time.Time
	DesiredEnd    time.Time
	Stops         []StopRequest
}

// PlanResult is one completed planning session. MapsURL is only set for
// feasible plans; an infeasible session still carries the full schedule and
// annotations so the caller can show what went over.
type PlanResult struct {
	City        string
	Start       domain.ResolvedLocation
	Return      domain.ResolvedLocation
	Stops       []domain.Stop
	Plan        *domain.TripPlan
	Annotations []domain.WeatherAnnotation
	MapsURL     string
}

// Planner runs a whole planning session: verify the city, resolve all
// locations, build the timed schedule, annotate stops with weather, and
// build the navigation link.
type Planner struct {
	Resolver  *Resolver
	Estimator *Estimator
	Advisor   *Advisor
	Boundary  ports.BoundaryProvider
	Catalog   *catalog.Catalog

	// Region is appended to point-of-interest queries ("<place>, <city>,
	// <region>"); Country to user-entered addresses ("<addr>, <city>,
	// <country>").
	Region  string
	Country string
}

func (p *Planner) region() string {
	if p.Region == "" {
		return "Jharkhand, India"
	}
	return p.Region
}

func (p *Planner) country() string {
	if p.Country == "" {
		return "India"
	}
	return p.Country
}

// PlanTrip executes one session. Resolution failures abort before any
// schedule is built (fail fast); routing and weather failures degrade
// gracefully inside their components.
func (p *Planner) PlanTrip(ctx context.Context, req PlanTripRequest) (*PlanResult, error) {
	if !p.Catalog.HasCity(req.City) {
		return nil, fmt.Errorf("plan trip: unknown city %q", req.City)
	}
	if !req.DesiredEnd.After(req.StartAt) {
		return nil, fmt.Errorf("plan trip: desired end %s must be later than start %s",
			FormatClock(req.DesiredEnd), FormatClock(req.StartAt))
	}
	for _, s := range req.Stops {
		if s.DwellMinutes < 0 {
			return nil, fmt.Errorf("plan trip: negative dwell time for %q", s.Place)
		}
	}

	// City bounding box, fetched once and immutable for the session.
	bounds, err := p.Boundary.CityBounds(ctx, req.City+", "+p.country())
	if err != nil {
		return nil, fmt.Errorf("plan trip: verify city %q: %w", req.City, err)
	}
	if bounds == nil {
		return nil, fmt.Errorf("plan trip: verify city %q: %w", req.City, ErrNotFound)
	}

	// Start and return are user-entered and must lie inside the city box.
	start, err := p.Resolver.Resolve(ctx, fmt.Sprintf("%s, %s, %s", req.StartAddress, req.City, p.country()), bounds)
	if err != nil {
		return nil, fmt.Errorf("plan trip: start location: %w", err)
	}
	returnTo, err := p.Resolver.Resolve(ctx, fmt.Sprintf("%s, %s, %s", req.ReturnAddress, req.City, p.country()), bounds)
	if err != nil {
		return nil, fmt.Errorf("plan trip: return location: %w", err)
	}

	// Points of interest resolve without the box: outskirts are fine.
	stops := make([]domain.Stop, 0, len(req.Stops))
	for _, s := range req.Stops {
		loc, err := p.Resolver.Resolve(ctx, fmt.Sprintf("%s, %s, %s", s.Place, req.City, p.region()), nil)
		if err != nil {
			return nil, fmt.Errorf("plan trip: stop %q: %w", s.Place, err)
		}
		stops = append(stops, domain.Stop{
			Label:        s.Place,
			Location:     loc,
			DwellMinutes: s.DwellMinutes,
		})
	}

	plan := BuildSchedule(ctx, start, stops, returnTo, req.StartAt, req.DesiredEnd, p.Estimator)
	annotations := p.Advisor.AnnotateAll(ctx, stops)

	result := &PlanResult{
		City:        req.City,
		Start:       start,
		Return:      returnTo,
		Stops:       stops,
		Plan:        plan,
		Annotations: annotations,
	}

	// An infeasible session ends without a navigation link.
	if plan.Feasible {
		waypoints := make([]domain.Coordinates, 0, len(stops))
		for _, s := range stops {
			waypoints = append(waypoints, s.Location.Coordinates)
		}
		result.MapsURL = BuildMapsURL(start.Coordinates, waypoints, returnTo.Coordinates)
	}

	return result, nil
}
