package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/pdrpinto/navgrid"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Grid.Width != 50 || cfg.Grid.Depth != 50 {
		t.Errorf("default grid = %dx%d, want 50x50", cfg.Grid.Width, cfg.Grid.Depth)
	}
	if cfg.Grid.MinObstacle != 0.10 || cfg.Grid.MaxObstacle != 0.15 {
		t.Errorf("default obstacle range = [%v, %v]", cfg.Grid.MinObstacle, cfg.Grid.MaxObstacle)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
heuristic = "chebyshev"
workers = 2

[grid]
width = 20
seed = 7

[server]
addr = "127.0.0.1:9000"
compress = false
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Depth != 50 {
		t.Errorf("grid = %dx%d, want 20x50", cfg.Grid.Width, cfg.Grid.Depth)
	}
	if cfg.Grid.Seed != 7 || cfg.Workers != 2 || cfg.Heuristic != "chebyshev" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.Compress {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.CORSOrigin != "http://localhost:3000" {
		t.Errorf("cors origin lost default: %q", cfg.Server.CORSOrigin)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "colour = \"red\"\n"},
		{"bad syntax", "[grid\nwidth = 3\n"},
		{"zero width", "[grid]\nwidth = 0\n"},
		{"inverted obstacle range", "[grid]\nmin_obstacle = 0.4\nmax_obstacle = 0.2\n"},
		{"fraction above one", "[grid]\nmax_obstacle = 1.5\n"},
		{"unknown heuristic", "heuristic = \"dijkstra\"\n"},
		{"no workers", "workers = 0\n"},
		{"empty addr", "[server]\naddr = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestValidate_ReportsField(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = -1
	err := cfg.Validate()
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("err = %v, want validator.ValidationErrors", err)
	}
	if len(errs) != 1 || errs[0].Field() != "Width" {
		t.Errorf("errors = %v", errs)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg.Grid.Width != navgrid.DefaultWidth {
		t.Errorf("Load(\"\") = %+v, %v", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "navgrid.toml")
	if err := os.WriteFile(path, []byte("[grid]\ndepth = 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Depth != 12 {
		t.Errorf("depth = %d, want 12", cfg.Grid.Depth)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "min_obstacle") {
		t.Errorf("marshalled config missing keys:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) = %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip = %+v, want %+v", cfg, Default())
	}
}

func TestSearchOptions(t *testing.T) {
	cfg := Default()
	cfg.Heuristic = "euclidean"
	options, err := cfg.SearchOptions()
	if err != nil || len(options) != 2 {
		t.Fatalf("SearchOptions = %v, %v", options, err)
	}

	cfg.Heuristic = "nope"
	if _, err := cfg.SearchOptions(); !errors.Is(err, navgrid.ErrUnknownHeuristic) {
		t.Errorf("err = %v, want ErrUnknownHeuristic", err)
	}
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "navgrid.example.toml"))
	if err != nil {
		t.Fatalf("Load example: %v", err)
	}
	if cfg.Workers != 4 || cfg.Grid.Width != 50 || !cfg.Server.Compress {
		t.Errorf("example config = %+v", cfg)
	}
}
