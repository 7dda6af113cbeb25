package services

import (
	"fmt"
	"time"
)

// Schedule clocks are wall-clock times of day anchored to one fixed
// reference date. Anchoring keeps clock arithmetic on time.Time: when a
// schedule runs past midnight the timestamp advances into the next day and
// compares strictly later than any same-day deadline, so such plans come
// out infeasible instead of silently wrapping around.
var clockAnchor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseClock parses a 24-hour "HH:MM" string into an anchored clock value.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return clockAnchor.Add(
		time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute,
	), nil
}

// FormatClock renders an anchored clock value as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
