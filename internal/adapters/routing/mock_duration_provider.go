package routing

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinates
	Seconds  float64
}

// MockDurationProvider serves canned durations keyed by coordinate pair.
// Pairs without an entry return an error, exercising the estimator fallback.
type MockDurationProvider struct {
	m map[string]float64
}

func NewMockDurationProvider(pairs []MockPair) *MockDurationProvider {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[p.From.String()+"|"+p.To.String()] = p.Seconds
	}
	return &MockDurationProvider{m: m}
}

func (p *MockDurationProvider) DurationSeconds(ctx context.Context, origin, destination domain.Coordinates) (float64, error) {
	s, ok := p.m[origin.String()+"|"+destination.String()]
	if !ok {
		return 0, fmt.Errorf("missing pair %s -> %s", origin, destination)
	}
	return s, nil
}

// FixedDurationProvider answers every pair with the same duration.
type FixedDurationProvider struct {
	Seconds float64
	Err     error
}

func (p *FixedDurationProvider) DurationSeconds(ctx context.Context, origin, destination domain.Coordinates) (float64, error) {
	if p.Err != nil {
		return 0, p.Err
	}
	return p.Seconds, nil
}
