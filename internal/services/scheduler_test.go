package services

import (
	"context"
	"testing"
	"time"

	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/domain"
)

func mustClock(t *testing.T, s string) time.Time {
	t.Helper()
	c, err := ParseClock(s)
	if err != nil {
		t.Fatalf("parse clock %q: %v", s, err)
	}
	return c
}

func locAt(lat, lon float64, addr string) domain.ResolvedLocation {
	return domain.ResolvedLocation{
		Coordinates:    domain.Coordinates{Lat: lat, Lon: lon},
		DisplayAddress: addr,
	}
}

func TestBuildScheduleOneStopMissesDeadline(t *testing.T) {
	// Travel stubbed to 20 min for both legs; 30 min dwell; start 09:00.
	// Arrive 09:20, leave 09:50, return 10:10 -> misses a 10:00 deadline.
	est := NewEstimator(&routing.FixedDurationProvider{Seconds: 1200})

	start := locAt(23.36, 85.33, "Start")
	stop := domain.Stop{Label: "Tagore Hill", Location: locAt(23.40, 85.35, "Tagore Hill"), DwellMinutes: 30}
	returnTo := locAt(23.36, 85.33, "Return")

	plan := BuildSchedule(
		context.Background(),
		start, []domain.Stop{stop}, returnTo,
		mustClock(t, "09:00"), mustClock(t, "10:00"),
		est,
	)

	if len(plan.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(plan.Legs))
	}
	if got := FormatClock(plan.Legs[0].ArriveAt); got != "09:20" {
		t.Fatalf("stop arrival = %s, want 09:20", got)
	}
	if got := FormatClock(plan.Legs[0].DepartAt); got != "09:50" {
		t.Fatalf("stop departure = %s, want 09:50", got)
	}
	if got := FormatClock(plan.ReturnAt); got != "10:10" {
		t.Fatalf("return arrival = %s, want 10:10", got)
	}
	if plan.Feasible {
		t.Fatal("plan returning at 10:10 must be infeasible against a 10:00 deadline")
	}
	if plan.TotalTravelMinutes != 40 {
		t.Fatalf("total travel = %d, want 40", plan.TotalTravelMinutes)
	}
	if plan.TotalStayMinutes != 30 {
		t.Fatalf("total stay = %d, want 30", plan.TotalStayMinutes)
	}
}

func TestBuildScheduleOneStopMakesDeadline(t *testing.T) {
	est := NewEstimator(&routing.FixedDurationProvider{Seconds: 1200})

	start := locAt(23.36, 85.33, "Start")
	stop := domain.Stop{Label: "Tagore Hill", Location: locAt(23.40, 85.35, "Tagore Hill"), DwellMinutes: 30}
	returnTo := locAt(23.36, 85.33, "Return")

	plan := BuildSchedule(
		context.Background(),
		start, []domain.Stop{stop}, returnTo,
		mustClock(t, "09:00"), mustClock(t, "10:30"),
		est,
	)

	if !plan.Feasible {
		t.Fatal("plan returning at 10:10 must be feasible against a 10:30 deadline")
	}
}

func TestBuildScheduleLegCountAndMonotonicClocks(t *testing.T) {
	est := NewEstimator(&routing.FixedDurationProvider{Seconds: 600})

	start := locAt(23.36, 85.33, "Start")
	returnTo := locAt(23.37, 85.34, "Return")
	stops := []domain.Stop{
		{Label: "A", Location: locAt(23.40, 85.35, "A"), DwellMinutes: 15},
		{Label: "B", Location: locAt(23.42, 85.44, "B"), DwellMinutes: 0},
		{Label: "C", Location: locAt(23.28, 85.21, "C"), DwellMinutes: 45},
	}

	plan := BuildSchedule(
		context.Background(),
		start, stops, returnTo,
		mustClock(t, "08:00"), mustClock(t, "18:00"),
		est,
	)

	if len(plan.Legs) != len(stops)+1 {
		t.Fatalf("expected %d legs, got %d", len(stops)+1, len(plan.Legs))
	}

	prev := plan.StartAt
	for i, leg := range plan.Legs {
		if leg.ArriveAt.Before(prev) {
			t.Fatalf("leg %d arrival %v before previous clock %v", i, leg.ArriveAt, prev)
		}
		if leg.DepartAt.Before(leg.ArriveAt) {
			t.Fatalf("leg %d departure %v before arrival %v", i, leg.DepartAt, leg.ArriveAt)
		}
		prev = leg.DepartAt
	}

	last := plan.Legs[len(plan.Legs)-1]
	if !last.ArriveAt.Equal(plan.ReturnAt) {
		t.Fatalf("return leg arrival %v != plan return %v", last.ArriveAt, plan.ReturnAt)
	}
	if last.DwellMinutes != 0 {
		t.Fatalf("return leg dwell = %d, want 0", last.DwellMinutes)
	}
}

func TestBuildScheduleZeroStops(t *testing.T) {
	// Degenerates to a single start -> return leg without special-casing.
	est := NewEstimator(&routing.FixedDurationProvider{Seconds: 0})

	here := locAt(23.36, 85.33, "Home")

	plan := BuildSchedule(
		context.Background(),
		here, nil, here,
		mustClock(t, "09:00"), mustClock(t, "09:00"),
		est,
	)

	if len(plan.Legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(plan.Legs))
	}
	if plan.TotalTravelMinutes != 0 || plan.TotalStayMinutes != 0 {
		t.Fatalf("totals = (%d, %d), want (0, 0)", plan.TotalTravelMinutes, plan.TotalStayMinutes)
	}
	// With zero travel the deadline check reduces to startClock <= desiredEnd.
	if !plan.Feasible {
		t.Fatal("zero-duration trip ending exactly at the deadline must be feasible")
	}
}

func TestBuildScheduleFeasibilityMonotonicInDwell(t *testing.T) {
	est := NewEstimator(&routing.FixedDurationProvider{Seconds: 1200})

	start := locAt(23.36, 85.33, "Start")
	returnTo := locAt(23.36, 85.33, "Return")
	stopAt := locAt(23.40, 85.35, "Stop")

	startClock := mustClock(t, "09:00")
	deadline := mustClock(t, "10:30")

	wasFeasible := true
	for dwell := 0; dwell <= 120; dwell += 10 {
		stops := []domain.Stop{{Label: "Stop", Location: stopAt, DwellMinutes: dwell}}
		plan := BuildSchedule(context.Background(), start, stops, returnTo, startClock, deadline, est)

		if plan.Feasible && !wasFeasible {
			t.Fatalf("feasibility flipped false -> true at dwell=%d", dwell)
		}
		wasFeasible = plan.Feasible
	}
	if wasFeasible {
		t.Fatal("expected long dwell times to become infeasible")
	}
}

func TestBuildSchedulePastMidnightIsInfeasible(t *testing.T) {
	// 23:50 start with a one-hour leg runs past midnight; the anchored clock
	// advances to the next day, so any same-day deadline is missed.
	est := NewEstimator(&routing.FixedDurationProvider{Seconds: 3600})

	start := locAt(23.36, 85.33, "Start")
	returnTo := locAt(23.37, 85.34, "Return")

	plan := BuildSchedule(
		context.Background(),
		start, nil, returnTo,
		mustClock(t, "23:50"), mustClock(t, "23:59"),
		est,
	)

	if plan.Feasible {
		t.Fatal("schedule running past midnight must not be feasible for a same-day deadline")
	}
	if got := FormatClock(plan.ReturnAt); got != "00:50" {
		t.Fatalf("return clock = %s, want 00:50", got)
	}
}
