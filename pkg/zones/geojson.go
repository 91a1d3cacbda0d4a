// Package zones reads and writes danger-zone center files as GeoJSON
// FeatureCollections of Points.
package zones

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"safe_router/pkg/pathfind"
)

// Load reads danger-zone centers from a GeoJSON file.
func Load(path string) ([]pathfind.Coordinate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read danger file: %w", err)
	}
	zones, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return zones, nil
}

// Parse decodes a GeoJSON FeatureCollection of Points into danger centers.
// Non-point geometries are rejected rather than silently dropped, so a file
// of polygons doesn't read as an empty zone list.
func Parse(data []byte) ([]pathfind.Coordinate, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}

	out := make([]pathfind.Coordinate, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f.Geometry == nil {
			return nil, fmt.Errorf("feature %d: missing geometry", i)
		}
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("feature %d: geometry %v is not a point", i, f.Geometry.GeoJSONType())
		}
		c := pathfind.Coordinate{Lat: pt.Lat(), Lng: pt.Lon()}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Marshal encodes danger centers as a GeoJSON FeatureCollection of Points.
func Marshal(zones []pathfind.Coordinate) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, z := range zones {
		fc.Append(geojson.NewFeature(orb.Point{z.Lng, z.Lat}))
	}
	return fc.MarshalJSON()
}

// Save writes danger centers to a GeoJSON file.
func Save(path string, zones []pathfind.Coordinate) error {
	data, err := Marshal(zones)
	if err != nil {
		return fmt.Errorf("encode danger file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write danger file: %w", err)
	}
	return nil
}
