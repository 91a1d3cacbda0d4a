package pathfind

import (
	"github.com/tidwall/rtree"

	"safe_router/pkg/geo"
)

// dangerIndex answers "is this candidate within the danger radius of any
// zone center" without scanning the whole zone list per candidate. Centers
// live in an R-tree; a bounding-box search over-approximates the radius and
// an exact haversine check decides.
type dangerIndex struct {
	tree   rtree.RTreeG[Coordinate]
	radius float64 // meters
	count  int
}

func newDangerIndex(zones []Coordinate, radiusMeters float64) *dangerIndex {
	d := &dangerIndex{radius: radiusMeters, count: len(zones)}
	for _, z := range zones {
		p := [2]float64{z.Lng, z.Lat}
		d.tree.Insert(p, p, z)
	}
	return d
}

// blocked reports whether c lies strictly inside the danger radius of any
// zone center. A point exactly at the radius is passable.
func (d *dangerIndex) blocked(c Coordinate) bool {
	if d.count == 0 {
		return false
	}

	latPad := geo.LatDegrees(d.radius)
	lngPad := geo.LngDegrees(d.radius, c.Lat)
	min := [2]float64{c.Lng - lngPad, c.Lat - latPad}
	max := [2]float64{c.Lng + lngPad, c.Lat + latPad}

	hit := false
	d.tree.Search(min, max, func(_, _ [2]float64, z Coordinate) bool {
		if geo.Haversine(c.Lat, c.Lng, z.Lat, z.Lng) < d.radius {
			hit = true
			return false
		}
		return true
	})
	return hit
}
