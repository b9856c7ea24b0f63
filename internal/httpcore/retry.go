// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"errors"
	"math/rand"
	"time"

	"github.com/datastax/astra-db-go/internal/apierrors"
)

// RetryDecision is what a RetryPolicy returns after an attempt fails.
type RetryDecision struct {
	Retry bool
	Delay time.Duration
}

// RetryPolicy decides whether attempt (1-indexed, the attempt that just
// failed) should be retried, and after how long.
type RetryPolicy interface {
	Decide(attempt int, remaining time.Duration, err error) RetryDecision
}

// DataAPIRetryPolicy is the bounded policy for Data API commands: a single
// extra attempt, and only when Idempotent is true and the failure looks
// transient (a TransportError or UnreachableError, never a ResponseError —
// retrying a command the server already executed and reported errors[] for
// would risk duplicating its side effect).
type DataAPIRetryPolicy struct {
	Idempotent bool
	MaxRetries int // 0 disables retries entirely
	BaseDelay  time.Duration
}

// NewDataAPIRetryPolicy returns the default bounded policy: one retry after
// 100ms for idempotent commands, none otherwise.
func NewDataAPIRetryPolicy(idempotent bool) *DataAPIRetryPolicy {
	maxRetries := 0
	if idempotent {
		maxRetries = 1
	}
	return &DataAPIRetryPolicy{Idempotent: idempotent, MaxRetries: maxRetries, BaseDelay: 100 * time.Millisecond}
}

func (p *DataAPIRetryPolicy) Decide(attempt int, remaining time.Duration, err error) RetryDecision {
	if !p.Idempotent || !isTransientFailure(err) || attempt > p.MaxRetries {
		return RetryDecision{Retry: false}
	}
	if p.BaseDelay >= remaining {
		return RetryDecision{Retry: false}
	}
	return RetryDecision{Retry: true, Delay: p.BaseDelay}
}

// DevOpsRetryPolicy is the capped-exponential-backoff-with-jitter policy for
// the DevOps control plane, where commands are long-running and a caller can
// tolerate a few seconds of extra latency in exchange for resilience against
// a gateway blip.
type DevOpsRetryPolicy struct {
	MaxRetries  int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	BackoffMult float64
}

// NewDevOpsRetryPolicy returns the default policy: up to 5 retries, starting
// at 250ms, doubling each time, capped at 10s, with +/-20% jitter.
func NewDevOpsRetryPolicy() *DevOpsRetryPolicy {
	return &DevOpsRetryPolicy{
		MaxRetries:  5,
		BaseDelay:   250 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		BackoffMult: 2.0,
	}
}

func (p *DevOpsRetryPolicy) Decide(attempt int, remaining time.Duration, err error) RetryDecision {
	if attempt > p.MaxRetries || !isTransientFailure(err) {
		return RetryDecision{Retry: false}
	}

	delay := time.Duration(float64(p.BaseDelay) * pow(p.BackoffMult, attempt-1))
	if delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	delay = jitter(delay, 0.2)

	// Stop once the next backoff interval would itself exceed the
	// remaining budget: there would be no time left to attempt, let alone
	// retry again after.
	if delay >= remaining {
		return RetryDecision{Retry: false}
	}
	return RetryDecision{Retry: true, Delay: delay}
}

func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// jitter returns delay scaled by a random factor in [1-frac, 1+frac], to
// avoid many clients retrying in lockstep after a shared outage.
func jitter(delay time.Duration, frac float64) time.Duration {
	if frac <= 0 {
		return delay
	}
	scale := 1 - frac + rand.Float64()*2*frac
	return time.Duration(float64(delay) * scale)
}

// isTransientFailure reports whether err is the kind of failure a retry
// might plausibly resolve: a transport-level failure or an UnreachableError,
// except a circuit-breaker rejection (see Rejected), which is never treated
// as transient even when wrapped. A response the server answered with
// (even an error response) is never transient: the server already did its
// work.
func isTransientFailure(err error) bool {
	if err == nil {
		return false
	}
	if Rejected(err) {
		return false
	}
	var transportErr *apierrors.TransportError
	var unreachableErr *apierrors.UnreachableError
	return errors.As(err, &transportErr) || errors.As(err, &unreachableErr)
}
