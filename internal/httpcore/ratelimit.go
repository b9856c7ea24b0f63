// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"context"

	"golang.org/x/time/rate"
)

// NewDevOpsLimiter returns a token-bucket limiter sized for the DevOps
// control plane's documented request budget: ratePerSecond steady-state,
// burst allowing a short spike (e.g. a batch of keyspace/table DDL calls
// issued back-to-back at client startup).
func NewDevOpsLimiter(ratePerSecond float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(ratePerSecond), burst)
}

// awaitRateLimit blocks until limiter grants a token, or ctx is done. A nil
// limiter means no limiting is configured (the Data API target, which has no
// client-side budget of its own).
func awaitRateLimit(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}
