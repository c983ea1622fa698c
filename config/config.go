package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime settings of the simulation process
type Config struct {
	// TickInterval is the fixed simulation step
	TickInterval time.Duration
	// ContentDir holds the plant definition YAML files
	ContentDir string
	// Seed feeds the deterministic RNG; 0 means derive from wall clock
	Seed uint64
	// LogLevel is a zerolog level name (trace, debug, info, warn, error)
	LogLevel string
	// SaveName identifies the snapshot slot in the data store
	SaveName string
	// SaveInterval is how often the world snapshot is written; 0 disables
	// periodic saving
	SaveInterval time.Duration
}

// Default returns the baseline configuration
func Default() Config {
	return Config{
		TickInterval: 100 * time.Millisecond,
		ContentDir:   "./plants",
		Seed:         0,
		LogLevel:     "info",
		SaveName:     "world",
		SaveInterval: 30 * time.Second,
	}
}

type fileConfig struct {
	TickInterval string `toml:"tick_interval"`
	ContentDir   string `toml:"content_dir"`
	Seed         uint64 `toml:"seed"`
	LogLevel     string `toml:"log_level"`
	SaveName     string `toml:"save_name"`
	SaveInterval string `toml:"save_interval"`
}

// Load reads a TOML config file over the defaults
// Keys absent from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("tick_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.TickInterval))
		if err != nil {
			return Config{}, fmt.Errorf("parse tick_interval: %w", err)
		}
		cfg.TickInterval = d
	}

	if meta.IsDefined("content_dir") {
		if dir := strings.TrimSpace(raw.ContentDir); dir != "" {
			cfg.ContentDir = dir
		}
	}

	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	if meta.IsDefined("save_name") {
		if name := strings.TrimSpace(raw.SaveName); name != "" {
			cfg.SaveName = name
		}
	}

	if meta.IsDefined("save_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.SaveInterval))
		if err != nil {
			return Config{}, fmt.Errorf("parse save_interval: %w", err)
		}
		cfg.SaveInterval = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.SaveInterval < 0 {
		return fmt.Errorf("save_interval must not be negative, got %v", c.SaveInterval)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
