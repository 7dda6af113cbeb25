package services

import (
	"context"
	"time"

	"trip-planner-service/internal/domain"
)

// BuildSchedule accumulates a running clock across the itinerary, strictly
// in stop order: each leg's arrival is the previous leg's departure plus its
// own travel time, so leg i depends on leg i-1 by data, not by accident.
// This loop must stay sequential.
//
// A plan over N stops always has exactly N+1 legs (one per stop plus the
// return leg). With zero stops it degenerates to the single start -> return
// leg. Feasibility is checked at the return point only; being late at an
// intermediate stop is not itself a failure.
func BuildSchedule(
	ctx context.Context,
	start domain.ResolvedLocation,
	stops []domain.Stop,
	returnTo domain.ResolvedLocation,
	startAt time.Time,
	desiredEnd time.Time,
	estimator *Estimator,
) *domain.TripPlan {
	clock := startAt
	cursor := start.Coordinates

	legs := make([]domain.ScheduleLeg, 0, len(stops)+1)
	totalTravel := 0
	totalStay := 0

	for _, stop := range stops {
		travel := estimator.Minutes(ctx, cursor, stop.Location.Coordinates)
		arrive := clock.Add(time.Duration(travel) * time.Minute)
		depart := arrive.Add(time.Duration(stop.DwellMinutes) * time.Minute)

		legs = append(legs, domain.ScheduleLeg{
			From:          cursor,
			To:            stop.Location.Coordinates,
			Label:         stop.Label,
			TravelMinutes: travel,
			DwellMinutes:  stop.DwellMinutes,
			ArriveAt:      arrive,
			DepartAt:      depart,
		})

		clock = depart
		cursor = stop.Location.Coordinates
		totalTravel += travel
		totalStay += stop.DwellMinutes
	}

	// Return leg: travel only, no dwell.
	travel := estimator.Minutes(ctx, cursor, returnTo.Coordinates)
	clock = clock.Add(time.Duration(travel) * time.Minute)
	totalTravel += travel

	legs = append(legs, domain.ScheduleLeg{
		From:          cursor,
		To:            returnTo.Coordinates,
		Label:         returnTo.DisplayAddress,
		TravelMinutes: travel,
		ArriveAt:      clock,
		DepartAt:      clock,
	})

	return &domain.TripPlan{
		StartAt:            startAt,
		Legs:               legs,
		TotalTravelMinutes: totalTravel,
		TotalStayMinutes:   totalStay,
		ReturnAt:           clock,
		Feasible:           !clock.After(desiredEnd),
	}
}
