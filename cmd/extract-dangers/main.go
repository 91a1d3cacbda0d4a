package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	osmhazards "safe_router/pkg/osm"
	"safe_router/pkg/pathfind"
	"safe_router/pkg/zones"
)

func main() {
	input := flag.String("input", "", "Path to .osm.pbf file")
	output := flag.String("output", "dangers.geojson", "Output GeoJSON danger-zone file")
	bbox := flag.String("bbox", "", "Bounding box filter: minLat,minLng,maxLat,maxLng (e.g. 1.15,103.6,1.48,104.1)")
	singapore := flag.Bool("singapore", false, "Shortcut for --bbox 1.15,103.6,1.48,104.1 (Singapore bounding box)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: extract-dangers --input <file.osm.pbf> [--output dangers.geojson] [--singapore | --bbox minLat,minLng,maxLat,maxLng]")
		os.Exit(1)
	}

	// Parse bbox option.
	var opts osmhazards.ExtractOptions
	if *singapore {
		opts.BBox = osmhazards.BBox{MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1}
		log.Println("Using Singapore bounding box filter: lat [1.15, 1.48], lng [103.6, 104.1]")
	} else if *bbox != "" {
		var minLat, minLng, maxLat, maxLng float64
		_, err := fmt.Sscanf(*bbox, "%f,%f,%f,%f", &minLat, &minLng, &maxLat, &maxLng)
		if err != nil {
			log.Fatalf("Invalid bbox format (expected minLat,minLng,maxLat,maxLng): %v", err)
		}
		opts.BBox = osmhazards.BBox{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}
		log.Printf("Using bounding box filter: lat [%.4f, %.4f], lng [%.4f, %.4f]", minLat, maxLat, minLng, maxLng)
	}

	start := time.Now()

	// Step 1: Extract hazard points from OSM data.
	log.Println("Opening OSM file...")
	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer f.Close()

	log.Println("Scanning for hazards...")
	hazards, err := osmhazards.ExtractHazards(context.Background(), f, opts)
	if err != nil {
		log.Fatalf("Failed to extract hazards: %v", err)
	}
	log.Printf("Found %d hazard points", len(hazards))

	kinds := make(map[string]int)
	for _, h := range hazards {
		kinds[h.Kind]++
	}
	for kind, n := range kinds {
		log.Printf("  %s: %d", kind, n)
	}

	// Step 2: Write danger-zone file.
	centers := make([]pathfind.Coordinate, len(hazards))
	for i, h := range hazards {
		centers[i] = pathfind.Coordinate{Lat: h.Lat, Lng: h.Lng}
	}
	if err := zones.Save(*output, centers); err != nil {
		log.Fatalf("Failed to write danger file: %v", err)
	}

	log.Printf("Wrote %s in %s", *output, time.Since(start).Round(time.Millisecond))
}
