// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads process-wide ambient configuration for the client: the
environment toggle (§6's "is this a test environment" check), default
logging level/format, and the default HTTP transport mode.

This is distinct from the per-call Options Algebra (see internal/options):
koanf governs process bootstrap, read once at client construction; the
Options Algebra governs per-call/per-client/per-database/per-collection
option merging for every individual command.

# Layering

Two layers, later wins:

  1. code defaults (DefaultConfig)
  2. environment variables, prefixed ASTRA_ and flattened with "_"
     (e.g. ASTRA_LOGGING_LEVEL maps to Logging.Level)

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("failed to load config")
	}
*/
package config
