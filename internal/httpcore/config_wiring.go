// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"time"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/config"
)

// NewTimeoutManagerFromConfig builds a TimeoutManager whose general budget
// comes from cfg.HTTP.RequestTimeout rather than a caller-supplied literal,
// the same "code default, overridable per call" precedence the Options
// Algebra (§4.4) applies one layer up.
func NewTimeoutManagerFromConfig(cfg *config.Config, now time.Time, request *time.Duration, category apierrors.TimeoutCategory) *TimeoutManager {
	return NewTimeoutManager(now, cfg.HTTP.RequestTimeout, request, category)
}

// DefaultPollOptions builds the poll loop options a long-running DevOps
// operation uses absent a per-call override: cfg.HTTP.PollInterval as the
// interval, blocking by default.
func DefaultPollOptions(cfg *config.Config, legalStates []string, operationName string) PollOptions {
	return PollOptions{
		Interval:      cfg.HTTP.PollInterval,
		LegalStates:   legalStates,
		Blocking:      true,
		OperationName: operationName,
	}
}

// ForceHTTP1Default reports whether the ambient configuration defaults the
// fetch transport to HTTP/1.x. The DevOps target always forces HTTP/1.x
// regardless of this value (§4.1's "Special HTTP/1 coercion" is unconditional
// for that target); this only governs the Data API target's default.
func ForceHTTP1Default(cfg *config.Config) bool {
	return cfg.HTTP.ForceHTTP1
}
