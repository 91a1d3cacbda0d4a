// Package osm extracts danger-zone centers from OpenStreetMap PBF extracts.
package osm

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

// Hazard is a point considered dangerous for routing, with the tag-derived
// classification it came from.
type Hazard struct {
	Lat  float64
	Lng  float64
	Kind string
}

// hazardKind classifies a tag set as a danger source.
// Returns "" when the tags describe nothing hazardous.
func hazardKind(tags osm.Tags) string {
	if v := tags.Find("hazard"); v != "" {
		return "hazard:" + v
	}
	if tags.Find("highway") == "construction" || tags.Find("building") == "construction" ||
		tags.Find("landuse") == "construction" {
		return "construction"
	}
	if v := tags.Find("military"); v != "" {
		return "military:" + v
	}
	if tags.Find("landuse") == "quarry" {
		return "quarry"
	}
	if tags.Find("man_made") == "mineshaft" || tags.Find("man_made") == "adit" {
		return "mine"
	}
	return ""
}

// hazardWay holds a hazard-tagged way collected during pass 1.
type hazardWay struct {
	NodeIDs []osm.NodeID
	Kind    string
}

// BBox defines a geographic bounding box for filtering.
// If non-zero, only hazards inside the box are kept.
type BBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// IsZero returns true if the bbox is unset.
func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0
}

// Contains returns true if the point is inside the bounding box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ExtractOptions configures hazard extraction.
type ExtractOptions struct {
	BBox BBox // if non-zero, filter hazards to this bounding box
}

// ExtractHazards reads an OSM PBF file and returns one hazard point per
// hazard-tagged node, plus the node centroid of every hazard-tagged way.
// The reader is consumed twice (seeks back to start for the second pass),
// so it must implement io.ReadSeeker.
func ExtractHazards(ctx context.Context, rs io.ReadSeeker, opts ...ExtractOptions) ([]Hazard, error) {
	var opt ExtractOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	useBBox := !opt.BBox.IsZero()

	// Pass 1: scan ways for hazard tags and collect their node IDs.
	referencedNodes := make(map[osm.NodeID]struct{})
	var ways []hazardWay

	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}

		kind := hazardKind(w.Tags)
		if kind == "" || len(w.Nodes) == 0 {
			continue
		}

		nodeIDs := make([]osm.NodeID, len(w.Nodes))
		for i, wn := range w.Nodes {
			nodeIDs[i] = wn.ID
			referencedNodes[wn.ID] = struct{}{}
		}
		ways = append(ways, hazardWay{NodeIDs: nodeIDs, Kind: kind})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 1 (ways): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 1 complete: %d hazard ways, %d referenced nodes", len(ways), len(referencedNodes))

	// Pass 2: scan nodes for hazard tags and for way-node coordinates.
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek for pass 2: %w", err)
	}

	nodeLat := make(map[osm.NodeID]float64, len(referencedNodes))
	nodeLon := make(map[osm.NodeID]float64, len(referencedNodes))
	var hazards []Hazard

	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		if kind := hazardKind(n.Tags); kind != "" {
			if !useBBox || opt.BBox.Contains(n.Lat, n.Lon) {
				hazards = append(hazards, Hazard{Lat: n.Lat, Lng: n.Lon, Kind: kind})
			}
		}

		if _, needed := referencedNodes[n.ID]; needed {
			nodeLat[n.ID] = n.Lat
			nodeLon[n.ID] = n.Lon
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 2 (nodes): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 2 complete: %d hazard nodes, %d way-node coordinates", len(hazards), len(nodeLat))

	// Collapse each hazard way to the centroid of its resolved nodes.
	var skippedWays int
	for _, w := range ways {
		lat, lng, ok := centroid(w.NodeIDs, nodeLat, nodeLon)
		if !ok {
			skippedWays++
			continue
		}
		if useBBox && !opt.BBox.Contains(lat, lng) {
			continue
		}
		hazards = append(hazards, Hazard{Lat: lat, Lng: lng, Kind: w.Kind})
	}
	if skippedWays > 0 {
		log.Printf("Skipped %d hazard ways with unresolved nodes", skippedWays)
	}

	return hazards, nil
}

// centroid averages the resolved coordinates of the way's nodes. A closed
// way repeats its first node; drop the duplicate so it doesn't weigh double.
func centroid(ids []osm.NodeID, lat, lon map[osm.NodeID]float64) (float64, float64, bool) {
	if len(ids) > 1 && ids[0] == ids[len(ids)-1] {
		ids = ids[:len(ids)-1]
	}

	var sumLat, sumLng float64
	count := 0
	for _, id := range ids {
		la, ok := lat[id]
		if !ok {
			continue
		}
		sumLat += la
		sumLng += lon[id]
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return sumLat / float64(count), sumLng / float64(count), true
}
