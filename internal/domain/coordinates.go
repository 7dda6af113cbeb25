package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate checks that the coordinate lies on the globe.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// Return the coordinate as "lat,lon" the way navigation URLs expect it.
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}

// BoundingBox is the geographic rectangle of one city. It is fetched once per
// planning session and immutable afterwards.
type BoundingBox struct {
	South float64
	North float64
	West  float64
	East  float64
}

func (b BoundingBox) Validate() error {
	if b.South > b.North {
		return fmt.Errorf("south %v greater than north %v", b.South, b.North)
	}
	if b.West > b.East {
		return fmt.Errorf("west %v greater than east %v", b.West, b.East)
	}
	return nil
}

// Contains reports whether the coordinate lies inside the box.
// Points exactly on an edge count as inside.
func (b BoundingBox) Contains(c Coordinates) bool {
	return b.South <= c.Lat && c.Lat <= b.North &&
		b.West <= c.Lon && c.Lon <= b.East
}
