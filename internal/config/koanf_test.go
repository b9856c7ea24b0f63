// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Environment != EnvironmentProduction {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvironmentProduction)
	}
	if cfg.DefaultKeyspace == "" {
		t.Error("DefaultKeyspace should not be empty by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want \"info\"", cfg.Logging.Level)
	}
	if cfg.HTTP.ForceHTTP1 {
		t.Error("HTTP.ForceHTTP1 should default to false")
	}
	if cfg.HTTP.RequestTimeout != 10*time.Second {
		t.Errorf("HTTP.RequestTimeout = %v, want 10s", cfg.HTTP.RequestTimeout)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"ASTRA_ENVIRONMENT", "environment"},
		{"ASTRA_LOGGING_LEVEL", "logging.level"},
		{"ASTRA_HTTP_FORCE_HTTP1", "http.force.http1"},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	for _, key := range []string{"ASTRA_ENVIRONMENT", "ASTRA_LOGGING_LEVEL", "ASTRA_HTTP_FORCE_HTTP1"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Environment != EnvironmentProduction {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvironmentProduction)
	}
}

func TestLoadWithKoanf_EnvironmentOverlay(t *testing.T) {
	t.Setenv("ASTRA_ENVIRONMENT", "test")
	t.Setenv("ASTRA_LOGGING_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Environment != EnvironmentTest {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvironmentTest)
	}
	if !cfg.IsTestEnvironment() {
		t.Error("IsTestEnvironment() = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want \"debug\"", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"invalid environment", func(c *Config) { c.Environment = "staging" }, true},
		{"empty keyspace", func(c *Config) { c.DefaultKeyspace = "" }, true},
		{"zero request timeout", func(c *Config) { c.HTTP.RequestTimeout = 0 }, true},
		{"negative poll interval", func(c *Config) { c.HTTP.PollInterval = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
