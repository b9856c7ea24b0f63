// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"testing"
	"time"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/stretchr/testify/assert"
)

func TestDataAPIRetryPolicyRejectsNonIdempotent(t *testing.T) {
	p := NewDataAPIRetryPolicy(false)
	decision := p.Decide(1, time.Second, &apierrors.TransportError{URL: "x"})
	assert.False(t, decision.Retry)
}

func TestDataAPIRetryPolicyRejectsResponseError(t *testing.T) {
	p := NewDataAPIRetryPolicy(true)
	decision := p.Decide(1, time.Second, &apierrors.ResponseError{Errors: []apierrors.ErrorDescriptor{{ErrorCode: "X"}}})
	assert.False(t, decision.Retry, "a response the server already answered must never be retried")
}

func TestDataAPIRetryPolicyAllowsOneRetryForIdempotent(t *testing.T) {
	p := NewDataAPIRetryPolicy(true)
	decision := p.Decide(1, time.Second, &apierrors.TransportError{URL: "x"})
	assert.True(t, decision.Retry)

	decision2 := p.Decide(2, time.Second, &apierrors.TransportError{URL: "x"})
	assert.False(t, decision2.Retry, "bounded to a single retry")
}

func TestDataAPIRetryPolicyStopsWhenBudgetTooSmall(t *testing.T) {
	p := NewDataAPIRetryPolicy(true)
	decision := p.Decide(1, 10*time.Millisecond, &apierrors.TransportError{URL: "x"})
	assert.False(t, decision.Retry)
}

func TestDevOpsRetryPolicyBacksOffExponentially(t *testing.T) {
	p := NewDevOpsRetryPolicy()
	p.BaseDelay = 100 * time.Millisecond
	p.BackoffMult = 2.0

	d1 := p.Decide(1, time.Minute, &apierrors.TransportError{URL: "x"})
	d2 := p.Decide(2, time.Minute, &apierrors.TransportError{URL: "x"})
	assert.True(t, d1.Retry)
	assert.True(t, d2.Retry)
	assert.Greater(t, d2.Delay, d1.Delay, "second attempt should back off further even with jitter")
}

func TestDevOpsRetryPolicyCapsDelay(t *testing.T) {
	p := NewDevOpsRetryPolicy()
	p.MaxDelay = time.Second
	p.BaseDelay = 800 * time.Millisecond
	p.BackoffMult = 4.0

	decision := p.Decide(3, time.Minute, &apierrors.TransportError{URL: "x"})
	assert.LessOrEqual(t, decision.Delay, time.Duration(float64(p.MaxDelay)*1.2)+1)
}

func TestDevOpsRetryPolicyStopsAfterMaxRetries(t *testing.T) {
	p := NewDevOpsRetryPolicy()
	p.MaxRetries = 2
	decision := p.Decide(3, time.Minute, &apierrors.TransportError{URL: "x"})
	assert.False(t, decision.Retry)
}

func TestDevOpsRetryPolicyStopsWhenRemainingSmallerThanBackoff(t *testing.T) {
	p := NewDevOpsRetryPolicy()
	p.BaseDelay = time.Second
	decision := p.Decide(1, time.Millisecond, &apierrors.TransportError{URL: "x"})
	assert.False(t, decision.Retry)
}

func TestIsTransientFailureRejectsNonTransportErrors(t *testing.T) {
	assert.False(t, isTransientFailure(&apierrors.HTTPError{Status: 500}))
	assert.False(t, isTransientFailure(nil))
	assert.True(t, isTransientFailure(&apierrors.TransportError{URL: "x"}))
	assert.True(t, isTransientFailure(&apierrors.UnreachableError{}))
}
