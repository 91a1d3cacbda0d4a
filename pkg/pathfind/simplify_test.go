package pathfind

import (
	"reflect"
	"testing"
)

func TestSimplify_CollapsesStraightRun(t *testing.T) {
	// Five collinear lattice points due east.
	pts := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.0005},
		{Lat: 0, Lng: 0.0010},
		{Lat: 0, Lng: 0.0015},
		{Lat: 0, Lng: 0.0020},
	}

	got := Simplify(pts, 5)
	want := []Coordinate{pts[0], pts[4]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Simplify = %+v, want endpoints only %+v", got, want)
	}
}

func TestSimplify_KeepsCorner(t *testing.T) {
	// East then north: the corner deviates ~55m from the chord.
	pts := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.0005},
		{Lat: 0, Lng: 0.0010},
		{Lat: 0.0005, Lng: 0.0010},
		{Lat: 0.0010, Lng: 0.0010},
	}

	got := Simplify(pts, 5)
	if len(got) != 3 {
		t.Fatalf("Simplify kept %d points, want 3 (both endpoints plus the corner)", len(got))
	}
	corner := Coordinate{Lat: 0, Lng: 0.0010}
	if got[1] != corner {
		t.Errorf("kept interior point %+v, want corner %+v", got[1], corner)
	}
}

func TestSimplify_NoOpCases(t *testing.T) {
	pts := []Coordinate{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.001}}

	if got := Simplify(pts, 10); !reflect.DeepEqual(got, pts) {
		t.Errorf("two-point chain changed: %+v", got)
	}

	three := append(pts, Coordinate{Lat: 0.001, Lng: 0.001})
	if got := Simplify(three, 0); !reflect.DeepEqual(got, three) {
		t.Errorf("zero tolerance changed the chain: %+v", got)
	}
}
