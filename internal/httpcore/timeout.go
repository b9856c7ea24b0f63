// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"time"

	"github.com/datastax/astra-db-go/internal/apierrors"
)

// RequestInfo describes the attempt about to be issued, for TimeoutManager's
// per-attempt budget calculation.
type RequestInfo struct {
	Attempt  int
	Category apierrors.TimeoutCategory
}

// TimeoutManager tracks the overall deadline for one logical operation
// (an execute/request/requestLongRunning call) and hands out the remaining
// budget, in milliseconds, to each attempt. A single general timeout with no
// finer per-request carve-out is the single-phase case; supplying a request
// timeout narrower than general turns on the multi-phase case, where each
// individual HTTP attempt is bounded by min(remaining general budget,
// request timeout) instead of the full remaining budget.
type TimeoutManager struct {
	start    time.Time
	general  time.Duration
	request  *time.Duration
	category apierrors.TimeoutCategory
}

// NewTimeoutManager constructs a manager with now as the operation's start
// instant. general must be positive; request, if non-nil, narrows each
// individual attempt's budget (the multi-phase case).
func NewTimeoutManager(now time.Time, general time.Duration, request *time.Duration, category apierrors.TimeoutCategory) *TimeoutManager {
	return &TimeoutManager{start: now, general: general, request: request, category: category}
}

// Advance returns the millisecond budget available to the attempt described
// by info, and a constructor for the TimeoutError that should be raised if
// that budget is exhausted. A zero or negative return means the general
// deadline has already passed; callers must not issue the attempt and
// should instead call mkTimeoutError() directly.
func (m *TimeoutManager) Advance(now time.Time, info RequestInfo) (msRemaining int64, mkTimeoutError func() error) {
	deadline := m.start.Add(m.general)
	remaining := deadline.Sub(now)

	category := m.category
	mkErr := func() error {
		return &apierrors.TimeoutError{
			Category: category,
			Elapsed:  now.Sub(m.start),
			Deadline: deadline,
		}
	}

	if remaining <= 0 {
		return 0, mkErr
	}

	budget := remaining
	if m.request != nil && *m.request < budget {
		budget = *m.request
		requestCategory := category
		mkErr = func() error {
			return &apierrors.TimeoutError{
				Category: requestCategory,
				Elapsed:  now.Sub(m.start),
				Deadline: now.Add(budget),
			}
		}
	}

	return budget.Milliseconds(), mkErr
}

// Elapsed reports how much wall-clock time has passed since construction.
func (m *TimeoutManager) Elapsed(now time.Time) time.Duration {
	return now.Sub(m.start)
}

// Exhausted reports whether the general deadline has already passed as of now.
func (m *TimeoutManager) Exhausted(now time.Time) bool {
	return !now.Before(m.start.Add(m.general))
}
