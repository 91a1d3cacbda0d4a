package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"mime"
	"net/http"

	"safe_router/pkg/pathfind"
)

// maxRouteBodyBytes bounds the request body; danger lists can be sizable.
const maxRouteBodyBytes = 1 << 20

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	finder      pathfind.Pathfinder
	staticZones []pathfind.Coordinate
	stats       StatsResponse
}

// NewHandlers creates handlers with the given pathfinder and the danger
// zones loaded at startup.
func NewHandlers(finder pathfind.Pathfinder, staticZones []pathfind.Coordinate, stats StatsResponse) *Handlers {
	return &Handlers{
		finder:      finder,
		staticZones: staticZones,
		stats:       stats,
	}
}

// HandleRoute handles POST /api/v1/route.
func (h *Handlers) HandleRoute(w http.ResponseWriter, r *http.Request) {
	// Enforce Content-Type.
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	// Parse request.
	var req RouteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRouteBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	// Validate coordinates.
	if err := validateCoord(req.Start); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "start")
		return
	}
	if err := validateCoord(req.Destination); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "destination")
		return
	}
	for _, d := range req.Dangers {
		if err := validateCoord(d); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_coordinates", "dangers")
			return
		}
	}

	// Merge static zones with request zones.
	dangers := make([]pathfind.Coordinate, 0, len(h.staticZones)+len(req.Dangers))
	dangers = append(dangers, h.staticZones...)
	for _, d := range req.Dangers {
		dangers = append(dangers, pathfind.Coordinate{Lat: d.Lat, Lng: d.Lng})
	}

	route, err := h.finder.FindRoute(r.Context(),
		pathfind.Coordinate{Lat: req.Start.Lat, Lng: req.Start.Lng},
		pathfind.Coordinate{Lat: req.Destination.Lat, Lng: req.Destination.Lng},
		dangers)
	if err != nil {
		if errors.Is(err, pathfind.ErrInvalidCoordinate) {
			writeError(w, http.StatusBadRequest, "invalid_coordinates", "")
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	waypoints := route.Waypoints
	if req.SimplifyToleranceM > 0 && !route.Fallback {
		waypoints = pathfind.Simplify(waypoints, req.SimplifyToleranceM)
	}

	resp := RouteResponse{
		Waypoints:           make([]LatLngJSON, len(waypoints)),
		TotalDistanceMeters: route.TotalDistanceMeters,
		ExpandedNodes:       route.ExpandedNodes,
		Fallback:            route.Fallback,
	}
	for i, wp := range waypoints {
		resp.Waypoints[i] = LatLngJSON{Lat: wp.Lat, Lng: wp.Lng}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.stats)
}

func validateCoord(ll LatLngJSON) error {
	if math.IsNaN(ll.Lat) || math.IsNaN(ll.Lng) || math.IsInf(ll.Lat, 0) || math.IsInf(ll.Lng, 0) {
		return errors.New("coordinates must be finite numbers")
	}
	if ll.Lat < -90 || ll.Lat > 90 || ll.Lng < -180 || ll.Lng > 180 {
		return errors.New("coordinates out of range")
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
