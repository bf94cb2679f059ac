// SPDX-License-Identifier: MIT

// Package config provides configuration loading for cfcalc.
package config

import (
	"errors"
	"fmt"
)

// Defaults mirror the library defaults of package cf.
const (
	DefaultFuseRounds   = 50
	DefaultCompareDepth = 40
	DefaultDisplayTerms = 40
	DefaultExactLimit   = 10000
	DefaultFuseFinish   = "simplest"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete cfcalc configuration.
type Config struct {
	Engine EngineConfig `koanf:"engine"`
	Log    LogConfig    `koanf:"log"`
}

// EngineConfig holds the continued-fraction engine settings.
type EngineConfig struct {
	FuseRounds   int    `koanf:"fuse_rounds"`
	FuseFinish   string `koanf:"fuse_finish"`
	CompareDepth int    `koanf:"compare_depth"`
	DisplayTerms int    `koanf:"display_terms"`
	ExactLimit   int    `koanf:"exact_limit"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)

	return &cfg
}

// applyDefaults fills zero values.
func applyDefaults(cfg *Config) {
	if cfg.Engine.FuseRounds == 0 {
		cfg.Engine.FuseRounds = DefaultFuseRounds
	}
	if cfg.Engine.FuseFinish == "" {
		cfg.Engine.FuseFinish = DefaultFuseFinish
	}
	if cfg.Engine.CompareDepth == 0 {
		cfg.Engine.CompareDepth = DefaultCompareDepth
	}
	if cfg.Engine.DisplayTerms == 0 {
		cfg.Engine.DisplayTerms = DefaultDisplayTerms
	}
	if cfg.Engine.ExactLimit == 0 {
		cfg.Engine.ExactLimit = DefaultExactLimit
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	positive := []struct {
		key string
		v   int
	}{
		{"engine.fuse_rounds", c.Engine.FuseRounds},
		{"engine.compare_depth", c.Engine.CompareDepth},
		{"engine.display_terms", c.Engine.DisplayTerms},
		{"engine.exact_limit", c.Engine.ExactLimit},
	}
	for _, p := range positive {
		if p.v < 1 {
			return fmt.Errorf("%w: %s must be ≥ 1, got %d", ErrInvalid, p.key, p.v)
		}
	}
	if c.Engine.FuseFinish != "simplest" && c.Engine.FuseFinish != "limit" {
		return fmt.Errorf("%w: engine.fuse_finish must be 'simplest' or 'limit', got %q", ErrInvalid, c.Engine.FuseFinish)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: log.format must be 'json' or 'console', got %q", ErrInvalid, c.Log.Format)
	}

	return nil
}
