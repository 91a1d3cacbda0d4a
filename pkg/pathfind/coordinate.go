package pathfind

import (
	"errors"
	"math"
)

// ErrInvalidCoordinate is returned when an input coordinate is NaN, infinite
// or outside the valid latitude/longitude range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a geographic point in decimal degrees.
//
// It is a comparable value type: two coordinates name the same point only if
// both fields are bit-identical. Callers passing logically-equal points must
// pass bit-equal floats.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Validate checks that the coordinate is a finite point on the globe.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return ErrInvalidCoordinate
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}
