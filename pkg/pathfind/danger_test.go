package pathfind

import (
	"testing"

	"safe_router/pkg/geo"
)

func TestDangerIndex_Blocked(t *testing.T) {
	center := Coordinate{Lat: 1.3000, Lng: 103.8000}
	idx := newDangerIndex([]Coordinate{center}, 50)

	tests := []struct {
		name      string
		candidate Coordinate
		want      bool
	}{
		{"at the center", center, true},
		{"40m north", Coordinate{Lat: center.Lat + geo.LatDegrees(40), Lng: center.Lng}, true},
		{"40m east", Coordinate{Lat: center.Lat, Lng: center.Lng + geo.LngDegrees(40, center.Lat)}, true},
		{"60m north", Coordinate{Lat: center.Lat + geo.LatDegrees(60), Lng: center.Lng}, false},
		{"60m diagonal", Coordinate{Lat: center.Lat + geo.LatDegrees(43), Lng: center.Lng + geo.LngDegrees(43, center.Lat)}, false},
		{"far away", Coordinate{Lat: 1.4, Lng: 103.9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.blocked(tt.candidate); got != tt.want {
				t.Errorf("blocked(%+v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestDangerIndex_EmptyZones(t *testing.T) {
	idx := newDangerIndex(nil, 50)
	if idx.blocked(Coordinate{Lat: 1.3, Lng: 103.8}) {
		t.Error("blocked = true with no danger zones")
	}
}

func TestDangerIndex_NearestOfManyDecides(t *testing.T) {
	zones := []Coordinate{
		{Lat: 1.30, Lng: 103.80},
		{Lat: 1.31, Lng: 103.81},
		{Lat: 1.32, Lng: 103.82},
	}
	idx := newDangerIndex(zones, 50)

	// 30m from the middle zone, hundreds of meters from the others.
	candidate := Coordinate{Lat: 1.31 + geo.LatDegrees(30), Lng: 103.81}
	if !idx.blocked(candidate) {
		t.Error("blocked = false near the middle zone")
	}

	// Midway between zones, outside every radius.
	between := Coordinate{Lat: 1.305, Lng: 103.805}
	if idx.blocked(between) {
		t.Error("blocked = true midway between distant zones")
	}
}
