package pathfind

import "safe_router/pkg/geo"

// Simplify reduces a waypoint chain with Douglas-Peucker: an interior
// waypoint survives only if removing it would move the polyline by at least
// toleranceMeters. Endpoints always survive. A tolerance <= 0 or a chain
// shorter than 3 points returns the input unchanged.
//
// Simplification only drops lattice points along near-straight runs; it is
// not applied to fallback routes, which are already minimal.
func Simplify(waypoints []Coordinate, toleranceMeters float64) []Coordinate {
	if toleranceMeters <= 0 || len(waypoints) < 3 {
		return waypoints
	}

	keep := make([]bool, len(waypoints))
	keep[0] = true
	keep[len(waypoints)-1] = true
	simplifyRange(waypoints, 0, len(waypoints)-1, toleranceMeters, keep)

	out := make([]Coordinate, 0, len(waypoints))
	for i, k := range keep {
		if k {
			out = append(out, waypoints[i])
		}
	}
	return out
}

// simplifyRange marks the interior point of pts[lo..hi] furthest from the
// chord lo→hi as kept when it deviates by at least tol, then recurses on
// both halves around it.
func simplifyRange(pts []Coordinate, lo, hi int, tol float64, keep []bool) {
	if hi-lo < 2 {
		return
	}

	maxDist := -1.0
	maxIdx := -1
	for k := lo + 1; k < hi; k++ {
		d, _ := geo.PointToSegmentDist(
			pts[k].Lat, pts[k].Lng,
			pts[lo].Lat, pts[lo].Lng,
			pts[hi].Lat, pts[hi].Lng,
		)
		if d > maxDist {
			maxDist = d
			maxIdx = k
		}
	}

	if maxDist < tol {
		return
	}

	keep[maxIdx] = true
	simplifyRange(pts, lo, maxIdx, tol, keep)
	simplifyRange(pts, maxIdx, hi, tol, keep)
}
