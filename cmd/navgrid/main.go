package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pdrpinto/navgrid"
	"github.com/pdrpinto/navgrid/internal/api"
	"github.com/pdrpinto/navgrid/internal/config"
	"github.com/pdrpinto/navgrid/internal/render"
	"github.com/pdrpinto/navgrid/internal/tui"
	"github.com/pdrpinto/navgrid/internal/world"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file")
	mode       = flag.String("mode", "print", "Mode: print, batch, serve, tui")
	fromFlag   = flag.String("from", "0,0", "Origin world point as x,z")
	toFlag     = flag.String("to", "10,10", "Destination world point as x,z")
	seedFlag   = flag.Uint64("seed", 0, "Obstacle seed, overrides the config when non-zero")
	queries    = flag.Int("queries", 100, "Number of random queries in batch mode")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if *seedFlag != 0 {
		cfg.Grid.Seed = *seedFlag
	}
	options, err := cfg.SearchOptions()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	grid := navgrid.Build(cfg.Grid.Width, cfg.Grid.Depth)
	placed := world.Seed(grid, world.NewSource(cfg.Grid.Seed), cfg.Grid.MinObstacle, cfg.Grid.MaxObstacle)

	switch *mode {
	case "print":
		if err := printPath(grid, options); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
	case "batch":
		if err := runBatch(grid, cfg.Grid.Seed, options); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
	case "serve":
		log.Printf("[INFO] Grid %dx%d with %d obstacles", grid.Width(), grid.Depth(), len(placed))
		router := api.NewRouter(api.NewServer(grid, options...), api.RouterConfig{
			CORSOrigin: cfg.Server.CORSOrigin,
			Compress:   cfg.Server.Compress,
		})
		log.Printf("[INFO] Serving on %s", cfg.Server.Addr)
		if err := router.Run(cfg.Server.Addr); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
	case "tui":
		if err := runTUI(grid, options); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

func printPath(grid *navgrid.Grid, options []navgrid.Option) error {
	origin, err := parsePoint(*fromFlag)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	destination, err := parsePoint(*toFlag)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	path := grid.FindPath(origin, destination, options...)
	start, goal := navgrid.CoordOf(origin), navgrid.CoordOf(destination)
	status := fmt.Sprintf("no path from %v to %v", start, goal)
	if len(path) > 0 {
		status = fmt.Sprintf("path from %v to %v: %d waypoints", start, goal, len(path))
	}
	fmt.Print(render.Text(render.Scene{Grid: grid, Path: path, Start: &start, Goal: &goal, Status: status}))
	return nil
}

func runBatch(grid *navgrid.Grid, seed uint64, options []navgrid.Option) error {
	rng := world.NewSource(seed + 1)
	coords := grid.Coords()
	batch := make([]navgrid.Query, *queries)
	for i := range batch {
		batch[i] = navgrid.Query{
			Start: coords[rng.IntN(len(coords))],
			Goal:  coords[rng.IntN(len(coords))],
		}
	}

	startTime := time.Now()
	results, err := navgrid.FindPaths(context.Background(), grid, grid.Bounds(), batch, options...)
	if err != nil {
		return err
	}
	fmt.Print(summarize(results, time.Since(startTime)))
	return nil
}

func runTUI(grid *navgrid.Grid, options []navgrid.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tui.New(screen, grid, options...).Run()
	return nil
}
