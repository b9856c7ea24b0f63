// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logging provides centralized zerolog-based structured logging for
// the client.
//
// This package implements a unified logging layer using zerolog, providing
// zero-allocation structured JSON logging for production and human-readable
// console output for development.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format for production (machine-parseable)
//   - Console output format for development (human-readable)
//   - Global logger configuration via Init(Config)
//   - Context-aware logging with request-id/command-id propagation
//
// # Quick Start
//
//	import "github.com/datastax/astra-db-go/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("client initialized")
//	logging.Error().Err(err).Msg("command failed")
//
//	logging.Ctx(ctx).Info().Str("command", "insertOne").Msg("executing")
//
// # Log Levels
//
// Supported log levels (from most to least verbose):
//
//	trace  - Very detailed diagnostic information
//	debug  - Detailed diagnostic information
//	info   - General operational information (default)
//	warn   - Warning conditions that should be addressed
//	error  - Error conditions requiring attention
//	fatal  - Fatal errors that terminate the program
//	panic  - Panic conditions that crash the program
//
// # Structured Logging Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # Context-Aware Logging
//
// internal/httpcore's Core.Execute generates a request id for a command when
// an event listener is attached (see internal/eventing) and stores it with
// ContextWithRequestID; Ctx(ctx) picks up that id from context and attaches
// it to the log lines emitted for that command. Without a listener no id is
// generated and no request_id field is added.
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"command executed","command":"insertOne"}
//
// Console Format (Development):
//
//	10:30:00 INF command executed command=insertOne
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger is
// protected by sync.RWMutex for configuration changes.
//
// # Testing
//
// Create test loggers that capture output:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test message")
//
// # See Also
//
//   - github.com/rs/zerolog: underlying logging library
//   - internal/eventing: hierarchical event emitter; internal/httpcore's
//     DefaultEventLoggingListener writes its events to this package's logger
package logging
