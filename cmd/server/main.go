package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"safe_router/pkg/api"
	"safe_router/pkg/pathfind"
	"safe_router/pkg/zones"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	dangerFile := flag.String("danger-file", "", "Path to GeoJSON file of danger-zone centers (optional)")
	gridStep := flag.Float64("grid-step", 0.0005, "Lattice step in degrees (~55m of latitude at 0.0005)")
	dangerRadius := flag.Float64("danger-radius", 50, "Impassable radius around each danger center, meters")
	maxNodes := flag.Int("max-nodes", 200_000, "Search node budget before degrading to the direct route")
	flag.Parse()

	start := time.Now()

	// Load static danger zones.
	var staticZones []pathfind.Coordinate
	if *dangerFile != "" {
		var err error
		staticZones, err = zones.Load(*dangerFile)
		if err != nil {
			log.Fatalf("Failed to load danger zones: %v", err)
		}
		log.Printf("Loaded %d danger zones from %s", len(staticZones), *dangerFile)
	}

	// Build pathfinder.
	finder := pathfind.NewFinder(pathfind.Config{
		GridStepDegrees:    *gridStep,
		DangerRadiusMeters: *dangerRadius,
		MaxExpandedNodes:   *maxNodes,
	})
	fcfg := finder.Config()
	log.Printf("Pathfinder ready: step %.4f°, radius %.0fm, budget %d nodes",
		fcfg.GridStepDegrees, fcfg.DangerRadiusMeters, fcfg.MaxExpandedNodes)

	log.Printf("Ready in %s", time.Since(start).Round(time.Millisecond))

	// Setup HTTP server.
	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin

	stats := api.StatsResponse{
		GridStepDegrees:    fcfg.GridStepDegrees,
		DangerRadiusMeters: fcfg.DangerRadiusMeters,
		MaxExpandedNodes:   fcfg.MaxExpandedNodes,
		StaticZones:        len(staticZones),
	}

	handlers := api.NewHandlers(finder, staticZones, stats)
	srv := api.NewServer(cfg, handlers)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
