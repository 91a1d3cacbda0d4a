package api

// RouteRequest is the JSON body for POST /api/v1/route.
type RouteRequest struct {
	Start       LatLngJSON `json:"start"`
	Destination LatLngJSON `json:"destination"`
	// Dangers are merged with the server's statically loaded danger zones.
	Dangers []LatLngJSON `json:"dangers,omitempty"`
	// SimplifyToleranceM > 0 collapses near-collinear waypoints. Never
	// applied to fallback routes.
	SimplifyToleranceM float64 `json:"simplify_tolerance_m,omitempty"`
}

// LatLngJSON represents a lat/lng pair in JSON.
type LatLngJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteResponse is the JSON response for a successful route query.
type RouteResponse struct {
	Waypoints           []LatLngJSON `json:"waypoints"`
	TotalDistanceMeters float64      `json:"total_distance_meters"`
	ExpandedNodes       int          `json:"expanded_nodes"`
	// Fallback marks a degraded direct start→destination pair that may
	// cross danger zones; clients should render it as unsafe.
	Fallback bool `json:"fallback"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	GridStepDegrees    float64 `json:"grid_step_degrees"`
	DangerRadiusMeters float64 `json:"danger_radius_meters"`
	MaxExpandedNodes   int     `json:"max_expanded_nodes"`
	StaticZones        int     `json:"static_zones"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
