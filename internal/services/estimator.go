package services

import (
	"context"
	"log"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// DefaultTravelMinutes is assumed for a leg whenever the routing provider
// fails. The scheduler must never abort solely because routing is
// unavailable, so the estimator absorbs every provider error.
const DefaultTravelMinutes = 25

// Estimator wraps the routing provider and converts its raw seconds into
// whole minutes.
type Estimator struct {
	provider ports.DurationProvider
}

func NewEstimator(provider ports.DurationProvider) *Estimator {
	return &Estimator{provider: provider}
}

// Minutes returns the estimated driving time between two points as a
// non-negative integer number of minutes. Fractional provider seconds are
// floor-divided. On any provider failure the fixed default applies.
func (e *Estimator) Minutes(ctx context.Context, origin, destination domain.Coordinates) int {
	seconds, err := e.provider.DurationSeconds(ctx, origin, destination)
	if err != nil {
		log.Printf(
			"travel time lookup failed, defaulting to %d min: from=%s to=%s err=%v",
			DefaultTravelMinutes, origin, destination, err,
		)
		return DefaultTravelMinutes
	}

	if seconds < 0 {
		seconds = 0
	}
	return int(seconds) / 60
}
