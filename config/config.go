// Package config loads tourkit service and CLI settings.
//
// Sources, later overriding earlier:
//   - Default() values
//   - an optional TOML (.toml) or YAML (.yaml, .yml) file
//   - environment variables (TOUR_ADDR, TOUR_DB, TOUR_MAX_PASSES, TOUR_SEED)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourkit/tsp"
)

// Environment variables consulted by Load.
const (
	EnvAddr      = "TOUR_ADDR"
	EnvDB        = "TOUR_DB"
	EnvMaxPasses = "TOUR_MAX_PASSES"
	EnvSeed      = "TOUR_SEED"
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the full settings tree.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Store  StoreConfig  `toml:"store" yaml:"store"`
	Solver SolverConfig `toml:"solver" yaml:"solver"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr            string   `toml:"addr" yaml:"addr"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	// MaxPoints bounds the size of one request; 0 means the server default.
	MaxPoints int `toml:"max_points" yaml:"max_points"`
}

// Duration is a time.Duration written as a Go duration string ("30s", "2m")
// in both TOML and YAML. Bare numbers are rejected rather than read as
// nanoseconds.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string with time.ParseDuration.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration in time.Duration.String form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// StoreConfig configures run history. An empty Path disables persistence.
type StoreConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// SolverConfig configures each optimizer call.
type SolverConfig struct {
	// MaxPasses caps 2-opt passes; 0 means tsp.DefaultMaxPasses.
	MaxPasses int `toml:"max_passes" yaml:"max_passes"`
	// Seed makes every call deterministic; 0 means the auto-seeded global source.
	Seed int64 `toml:"seed" yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ShutdownTimeout: Duration{30 * time.Second},
			MaxPoints:       2000,
		},
		Store: StoreConfig{
			Path: "tourkit.db",
		},
		Solver: SolverConfig{
			MaxPasses: tsp.DefaultMaxPasses,
		},
	}
}

// Load builds a Config from defaults, the file at path (if any) and the
// environment, then validates it. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse error in %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse error in %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Server.Addr = getEnv(EnvAddr, c.Server.Addr)
	c.Store.Path = getEnv(EnvDB, c.Store.Path)

	if v := os.Getenv(EnvMaxPasses); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxPasses, v, ErrInvalid)
		}
		c.Solver.MaxPasses = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalid)
		}
		c.Solver.Seed = n
	}

	return nil
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty: %w", ErrInvalid)
	}
	if c.Server.ShutdownTimeout.Duration < 0 {
		return fmt.Errorf("server.shutdown_timeout is negative: %w", ErrInvalid)
	}
	if c.Server.MaxPoints < 0 {
		return fmt.Errorf("server.max_points is negative: %w", ErrInvalid)
	}
	if c.Solver.MaxPasses < 0 {
		return fmt.Errorf("solver.max_passes is negative: %w", ErrInvalid)
	}

	return nil
}

// Options returns fresh optimizer options for one call. Each call gets its
// own seeded source, so concurrent calls never share RNG state.
func (s SolverConfig) Options() tsp.Options {
	opts := tsp.DefaultOptions()
	if s.MaxPasses > 0 {
		opts.MaxPasses = s.MaxPasses
	}
	if s.Seed != 0 {
		opts.Source = tsp.SeededSource(s.Seed)
	}

	return opts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
