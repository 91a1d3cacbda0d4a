package pathfind

import (
	"context"
	"fmt"

	"safe_router/pkg/geo"
)

// Route is the result of a route-safety query.
type Route struct {
	// Waypoints runs start to destination. The first element is the start
	// itself; the last is within one grid step of the destination.
	Waypoints []Coordinate

	// TotalDistanceMeters is the summed edge length of the waypoint chain.
	TotalDistanceMeters float64

	// ExpandedNodes counts finalized search nodes, for observability.
	ExpandedNodes int

	// Fallback marks the degraded direct start→destination pair returned
	// when no safe path was found within the search budget. A fallback
	// route may cross danger zones.
	Fallback bool
}

// Pathfinder is the interface for route-safety queries.
type Pathfinder interface {
	FindRoute(ctx context.Context, start, destination Coordinate, dangers []Coordinate) (*Route, error)
}

// Config holds pathfinder tuning parameters.
type Config struct {
	// GridStepDegrees is the angular lattice step. 0.0005° is ~55 m of
	// latitude. A longitude step spans fewer meters away from the equator
	// and is not corrected for, so effective cell width shrinks toward
	// the poles.
	GridStepDegrees float64

	// DangerRadiusMeters is the impassable radius around each danger
	// center. Candidates strictly inside it are never expanded.
	DangerRadiusMeters float64

	// MaxExpandedNodes caps the search so that danger rings fully
	// enclosing the destination cannot run unbounded. Hitting the cap
	// yields the fallback route.
	MaxExpandedNodes int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		GridStepDegrees:    0.0005,
		DangerRadiusMeters: 50,
		MaxExpandedNodes:   200_000,
	}
}

// Finder implements Pathfinder with A* over an 8-connected lattice anchored
// at the start coordinate. Each call builds and discards its own state, so
// a single Finder is safe for concurrent use.
type Finder struct {
	cfg Config
}

// NewFinder creates a Finder. Zero-valued config fields fall back to
// DefaultConfig values.
func NewFinder(cfg Config) *Finder {
	def := DefaultConfig()
	if cfg.GridStepDegrees <= 0 {
		cfg.GridStepDegrees = def.GridStepDegrees
	}
	if cfg.DangerRadiusMeters <= 0 {
		cfg.DangerRadiusMeters = def.DangerRadiusMeters
	}
	if cfg.MaxExpandedNodes <= 0 {
		cfg.MaxExpandedNodes = def.MaxExpandedNodes
	}
	return &Finder{cfg: cfg}
}

// Config returns the effective configuration.
func (f *Finder) Config() Config { return f.cfg }

// gridNode addresses a lattice point by integer step offsets from the start
// coordinate (i along latitude, j along longitude). Keying the search on
// integers keeps repeated step additions from drifting into near-duplicate
// float nodes.
type gridNode struct {
	i, j int32
}

// neighborOffsets is the fixed expansion order for the 8-connected lattice:
// row-major over {-1,0,+1}² with the zero offset removed.
var neighborOffsets = [8][2]int32{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// checkCancelEvery controls how often the search loop polls ctx.
const checkCancelEvery = 64

// FindRoute computes a waypoint chain from start to destination that stays
// strictly outside the danger radius of every danger center.
//
// If no admissible lattice path exists within the node budget the direct
// [start, destination] pair is returned with Fallback set, never an error:
// degradation is policy here, not failure. Errors are reserved for malformed
// coordinates and context cancellation.
func (f *Finder) FindRoute(ctx context.Context, start, destination Coordinate, dangers []Coordinate) (*Route, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	for k, d := range dangers {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("dangers[%d]: %w", k, err)
		}
	}

	index := newDangerIndex(dangers, f.cfg.DangerRadiusMeters)
	step := f.cfg.GridStepDegrees

	// Meter length of one lattice step along latitude. The goal test
	// compares meters against meters: the search terminates once the
	// current node is closer to the destination than one step.
	stepMeters := geo.Haversine(start.Lat, start.Lng, start.Lat+step, start.Lng)

	at := func(n gridNode) Coordinate {
		return Coordinate{
			Lat: start.Lat + float64(n.i)*step,
			Lng: start.Lng + float64(n.j)*step,
		}
	}
	heuristic := func(c Coordinate) float64 {
		return geo.Haversine(c.Lat, c.Lng, destination.Lat, destination.Lng)
	}

	origin := gridNode{}
	gScore := map[gridNode]float64{origin: 0}
	cameFrom := make(map[gridNode]gridNode)
	closed := make(map[gridNode]bool)

	var open minHeap
	var seq uint64
	open.Push(origin, heuristic(start), seq)

	expanded := 0
	iterations := 0
	for open.Len() > 0 {
		if iterations%checkCancelEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		iterations++

		current := open.Pop().node
		if closed[current] {
			continue // stale duplicate entry
		}
		cur := at(current)

		if geo.Haversine(cur.Lat, cur.Lng, destination.Lat, destination.Lng) < stepMeters {
			return &Route{
				Waypoints:           reconstruct(cameFrom, current, at),
				TotalDistanceMeters: gScore[current],
				ExpandedNodes:       expanded,
			}, nil
		}

		closed[current] = true
		expanded++
		if expanded >= f.cfg.MaxExpandedNodes {
			break
		}

		for _, off := range neighborOffsets {
			nb := gridNode{current.i + off[0], current.j + off[1]}
			if closed[nb] {
				continue
			}
			nc := at(nb)
			if index.blocked(nc) {
				continue
			}
			tentative := gScore[current] + geo.Haversine(cur.Lat, cur.Lng, nc.Lat, nc.Lng)
			if best, seen := gScore[nb]; seen && tentative >= best {
				continue
			}
			gScore[nb] = tentative
			cameFrom[nb] = current
			seq++
			open.Push(nb, tentative+heuristic(nc), seq)
		}
	}

	// No safe lattice path within budget: degrade to the direct pair.
	return &Route{
		Waypoints:           []Coordinate{start, destination},
		TotalDistanceMeters: geo.Haversine(start.Lat, start.Lng, destination.Lat, destination.Lng),
		ExpandedNodes:       expanded,
		Fallback:            true,
	}, nil
}

// reconstruct walks predecessor links back from end to the start node
// (the one node without a predecessor) and returns waypoints in forward
// order. Predecessor links never cycle, so this always terminates.
func reconstruct(cameFrom map[gridNode]gridNode, end gridNode, at func(gridNode) Coordinate) []Coordinate {
	var nodes []gridNode
	n := end
	for {
		nodes = append(nodes, n)
		p, ok := cameFrom[n]
		if !ok {
			break
		}
		n = p
	}

	out := make([]Coordinate, len(nodes))
	for i := range nodes {
		out[i] = at(nodes[len(nodes)-1-i])
	}
	return out
}
