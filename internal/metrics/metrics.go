// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the HTTP execution core: command outcomes,
// retry attempts, circuit-breaker state, and DevOps poll iterations.

var (
	// CommandsTotal counts Data API / DevOps command executions by outcome.
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astra_commands_total",
			Help: "Total number of commands executed against the Data API or DevOps API",
		},
		[]string{"target", "command", "outcome"}, // target: "data"|"devops", outcome: "ok"|"error"|"timeout"
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astra_command_duration_seconds",
			Help:    "Duration of command execution in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target", "command"},
	)

	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astra_command_retries_total",
			Help: "Total number of command retry attempts",
		},
		[]string{"target", "command"},
	)

	// CircuitBreakerState exposes gobreaker state as a gauge (0=closed, 1=half-open, 2=open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "astra_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astra_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// PollIterationsTotal counts long-running-operation poll loop iterations.
	PollIterationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astra_poll_iterations_total",
			Help: "Total number of long-running-operation poll iterations",
		},
		[]string{"operation"},
	)

	PollDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astra_poll_duration_seconds",
			Help:    "Total wall-clock time spent polling a long-running operation",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"operation", "outcome"},
	)

	// CursorPagesFetchedTotal counts pages fetched by the cursor engine.
	CursorPagesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astra_cursor_pages_fetched_total",
			Help: "Total number of pages fetched by find cursors",
		},
		[]string{"source"}, // "collection"|"table"
	)

	EventsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astra_events_emitted_total",
			Help: "Total number of events emitted through the hierarchical event emitter",
		},
		[]string{"event"},
	)
)

// RecordCommand records a completed command execution.
func RecordCommand(target, command, outcome string, duration time.Duration) {
	CommandsTotal.WithLabelValues(target, command, outcome).Inc()
	CommandDuration.WithLabelValues(target, command).Observe(duration.Seconds())
}

// RecordRetry records a single retry attempt for a command.
func RecordRetry(target, command string) {
	RetriesTotal.WithLabelValues(target, command).Inc()
}

// circuitBreakerStateValue maps gobreaker's three states onto the gauge's
// 0/1/2 convention; callers pass the string form ("closed", "half-open", "open").
func circuitBreakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}

// SetCircuitBreakerState updates the state gauge for a named breaker.
func SetCircuitBreakerState(name, state string) {
	CircuitBreakerState.WithLabelValues(name).Set(circuitBreakerStateValue(state))
}

// RecordCircuitBreakerTransition records a state change for a named breaker.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordPollIteration records one iteration of a long-running poll loop.
func RecordPollIteration(operation string) {
	PollIterationsTotal.WithLabelValues(operation).Inc()
}

// RecordPollCompletion records the total duration of a poll loop once it settles.
func RecordPollCompletion(operation, outcome string, duration time.Duration) {
	PollDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// RecordCursorPageFetched records a single page fetch by a find cursor.
func RecordCursorPageFetched(source string) {
	CursorPagesFetchedTotal.WithLabelValues(source).Inc()
}

// RecordEventEmitted records a single event dispatched through the emitter tree.
func RecordEventEmitted(event string) {
	EventsEmittedTotal.WithLabelValues(event).Inc()
}
