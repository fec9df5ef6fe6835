// Package config loads the navgrid settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/pdrpinto/navgrid"
	"github.com/pdrpinto/navgrid/internal/world"
)

// Config holds every setting of the navgrid binary.
type Config struct {
	Grid      GridConfig   `toml:"grid"`
	Heuristic string       `toml:"heuristic" validate:"oneof=manhattan chebyshev euclidean"`
	Workers   int          `toml:"workers" validate:"gte=1"`
	Server    ServerConfig `toml:"server"`
}

// GridConfig sizes the grid and controls obstacle seeding.
type GridConfig struct {
	Width       int     `toml:"width" validate:"gte=1,lte=4096"`
	Depth       int     `toml:"depth" validate:"gte=1,lte=4096"`
	MinObstacle float64 `toml:"min_obstacle" validate:"gte=0,lte=1"`
	MaxObstacle float64 `toml:"max_obstacle" validate:"gte=0,lte=1,gtefield=MinObstacle"`
	Seed        uint64  `toml:"seed"`
}

// ServerConfig configures the HTTP front end.
type ServerConfig struct {
	Addr       string `toml:"addr" validate:"required"`
	CORSOrigin string `toml:"cors_origin"`
	Compress   bool   `toml:"compress"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:       navgrid.DefaultWidth,
			Depth:       navgrid.DefaultDepth,
			MinObstacle: world.DefaultMinFraction,
			MaxObstacle: world.DefaultMaxFraction,
		},
		Heuristic: "manhattan",
		Workers:   runtime.NumCPU(),
		Server: ServerConfig{
			Addr:       ":8080",
			CORSOrigin: "http://localhost:3000",
			Compress:   true,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("parse config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// HeuristicFunc resolves the configured heuristic name.
func (c Config) HeuristicFunc() (navgrid.Heuristic, error) {
	return navgrid.HeuristicByName(c.Heuristic)
}

// SearchOptions turns the configuration into core search options.
func (c Config) SearchOptions() ([]navgrid.Option, error) {
	heuristic, err := c.HeuristicFunc()
	if err != nil {
		return nil, err
	}
	return []navgrid.Option{navgrid.WithHeuristic(heuristic), navgrid.WithWorkers(c.Workers)}, nil
}

// Marshal encodes c as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
