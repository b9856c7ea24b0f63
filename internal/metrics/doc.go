// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package metrics provides Prometheus instrumentation for the HTTP execution
core: command outcomes, retries, circuit-breaker state, poll-loop iterations,
cursor page fetches, and event emission counts.

Metrics are registered against prometheus.DefaultRegisterer via promauto at
package init; embedding applications expose them with promhttp.Handler the
same way any Prometheus-instrumented Go service does.

# Available Metrics

  - astra_commands_total{target,command,outcome}: command executions
  - astra_command_duration_seconds{target,command}: command latency
  - astra_command_retries_total{target,command}: retry attempts
  - astra_circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - astra_circuit_breaker_transitions_total{name,from_state,to_state}
  - astra_poll_iterations_total{operation}: long-running poll iterations
  - astra_poll_duration_seconds{operation,outcome}: total poll wall-clock time
  - astra_cursor_pages_fetched_total{source}: pages fetched by find cursors
  - astra_events_emitted_total{event}: events dispatched through the emitter tree
*/
package metrics
