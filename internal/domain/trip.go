package domain

import "time"

// ScheduleLeg is one travel segment between two consecutive points of the
// itinerary. ArriveAt is when the vehicle reaches To; DepartAt is ArriveAt
// plus the dwell at To (equal to ArriveAt on the return leg, which has no
// dwell).
type ScheduleLeg struct {
	From          Coordinates
	To            Coordinates
	Label         string
	TravelMinutes int
	DwellMinutes  int
	ArriveAt      time.Time
	DepartAt      time.Time
}

// TripPlan is the fully timed itinerary for a single day. It is planning
// data, built once and immutable after construction; the totals are pure
// aggregates over the legs.
//
// Feasible is true iff ReturnAt is at or before the desired end time. An
// infeasible plan is still a complete plan; infeasibility is a normal
// negative outcome, not an error.
type TripPlan struct {
	StartAt            time.Time
	Legs               []ScheduleLeg
	TotalTravelMinutes int
	TotalStayMinutes   int
	ReturnAt           time.Time
	Feasible           bool
}

// TotalMinutes is the whole time spent on the trip, travel plus dwell.
func (p *TripPlan) TotalMinutes() int {
	return p.TotalTravelMinutes + p.TotalStayMinutes
}
