// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"errors"
	"time"

	"github.com/datastax/astra-db-go/internal/logging"
	"github.com/datastax/astra-db-go/internal/metrics"
	"github.com/sony/gobreaker/v2"
)

// BreakerClient wraps a gobreaker circuit breaker around the fetch
// transport, tripping open on a sustained failure rate so a struggling
// DevOps gateway or Data API endpoint doesn't keep eating request budget on
// every retry.
type BreakerClient struct {
	cb   *gobreaker.CircuitBreaker[*FetchResponse]
	name string
}

// NewBreakerClient constructs a named breaker. name distinguishes the Data
// API breaker from the DevOps API breaker in metrics and logs.
func NewBreakerClient(name string) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.With().Str("component", "httpcore").Logger().Info().
				Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")
			metrics.RecordCircuitBreakerTransition(name, fromStr, toStr)
			metrics.SetCircuitBreakerState(name, toStr)
		},
	}
	return &BreakerClient{cb: gobreaker.NewCircuitBreaker[*FetchResponse](settings), name: name}
}

// Execute runs fn through the breaker. A breaker rejection (open state or
// too many half-open probes) is returned as gobreaker's own sentinel error,
// unchanged; callers detect it with Rejected and translate it themselves
// (Core wraps it in apierrors.UnreachableError).
func (b *BreakerClient) Execute(fn func() (*FetchResponse, error)) (*FetchResponse, error) {
	return b.cb.Execute(fn)
}

// Rejected reports whether err is the breaker's own rejection (as opposed to
// a failure returned by fn itself).
func Rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateToString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
