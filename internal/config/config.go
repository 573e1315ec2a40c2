package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"lightsout/pkg/lightsout"
)

// Config holds the puzzle parameters and front-end settings.
type Config struct {
	Rows         int   `yaml:"rows"         env:"LIGHTSOUT_ROWS"`
	Columns      int   `yaml:"columns"      env:"LIGHTSOUT_COLUMNS"`
	InitialCount int   `yaml:"lit"          env:"LIGHTSOUT_LIT"`
	Seed         int64 `yaml:"seed"         env:"LIGHTSOUT_SEED"`
	Scale        int   `yaml:"scale"        env:"LIGHTSOUT_SCALE"`
	TPS          int   `yaml:"tps"          env:"LIGHTSOUT_TPS"`
}

// DefaultConfig returns the standard 5x5 configuration.
func DefaultConfig() Config {
	return Config{Rows: 5, Columns: 5, InitialCount: 10, Seed: 42, Scale: 48, TPS: 60}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields from a string map.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["columns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["lit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.InitialCount = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (5-20)")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns (5-20)")
	fs.IntVar(&c.InitialCount, "lit", c.InitialCount, "cells lit at start")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the starting layout")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// LoadFile reads a YAML preset on top of base.
func LoadFile(path string, base Config) (Config, error) {
	c := base
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides fields from LIGHTSOUT_* environment variables.
func ApplyEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the puzzle parameters against the grid bounds.
func (c Config) Validate() error {
	if err := lightsout.ValidateInitialCount(c.Rows, c.Columns, c.InitialCount); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("invalid config: scale %d must be positive", c.Scale)
	}
	return nil
}
