// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Environment identifies the process-wide runtime mode. Non-goals exclude a
// general plugin/extension system, but the single "is this a test run"
// toggle from the concurrency/resource model stays. Config.IsTestEnvironment
// reports it; nothing else in this module changes behaviour on it.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentTest       Environment = "test"
)

// LoggingConfig holds default settings for the global zerolog sink (see
// internal/logging). Loading it does not configure that logger; logging.Init
// takes its own Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// HTTPConfig controls default transport selection for the execution core.
type HTTPConfig struct {
	// ForceHTTP1 disables HTTP/2 on the default transport. The DevOps
	// gateway requires this; the Data API does not, so per-client
	// construction may override this default.
	ForceHTTP1 bool `koanf:"force_http1"`

	// RequestTimeout is the single-phase timeout applied when a caller does
	// not specify a per-call timeout (§4.1 single-phase vs multi-phase budgets).
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// PollInterval is the default interval between long-running-operation
	// poll attempts.
	PollInterval time.Duration `koanf:"poll_interval"`
}

// Config is the process-wide ambient configuration loaded once at client
// construction time.
type Config struct {
	Environment     Environment   `koanf:"environment"`
	DefaultKeyspace string        `koanf:"default_keyspace"`
	Logging         LoggingConfig `koanf:"logging"`
	HTTP            HTTPConfig    `koanf:"http"`
}

// DefaultConfig returns the baseline configuration before any environment
// overlay is applied.
func DefaultConfig() Config {
	return Config{
		Environment:     EnvironmentProduction,
		DefaultKeyspace: "default_keyspace",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		HTTP: HTTPConfig{
			ForceHTTP1:     false,
			RequestTimeout: 10 * time.Second,
			PollInterval:   10 * time.Second,
		},
	}
}

const envPrefix = "ASTRA_"

// envTransformFunc converts ASTRA_LOGGING_LEVEL into the koanf path
// "logging.level", mirroring the teacher's flattened-env-to-nested-struct
// convention.
func envTransformFunc(key string) string {
	trimmed := strings.TrimPrefix(key, envPrefix)
	return strings.ToLower(strings.ReplaceAll(trimmed, "_", "."))
}

// LoadWithKoanf loads the ambient process configuration: code defaults
// overlaid by ASTRA_-prefixed environment variables.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment overlay: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration for internally inconsistent values.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentTest:
	default:
		return fmt.Errorf("config: invalid environment %q", c.Environment)
	}

	if c.DefaultKeyspace == "" {
		return fmt.Errorf("config: default_keyspace must not be empty")
	}

	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("config: http.request_timeout must be positive")
	}

	if c.HTTP.PollInterval <= 0 {
		return fmt.Errorf("config: http.poll_interval must be positive")
	}

	return nil
}

// IsTestEnvironment reports whether the process is configured for test mode.
func (c *Config) IsTestEnvironment() bool {
	return c.Environment == EnvironmentTest
}
