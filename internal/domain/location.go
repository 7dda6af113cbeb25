package domain

// ResolvedLocation is the result of geocoding one free-text address.
// It is produced once per input and never mutated.
type ResolvedLocation struct {
	Coordinates    Coordinates
	DisplayAddress string
}

// Stop is a point of interest the traveler wants to visit, with a requested
// dwell time in minutes. Stops keep the order the user selected them in;
// the schedule engine never reorders them.
type Stop struct {
	Label        string
	Location     ResolvedLocation
	DwellMinutes int
}
