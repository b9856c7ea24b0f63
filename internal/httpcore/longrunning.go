// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"context"
	"strings"
	"time"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/metrics"
)

// DefaultPollInterval is how often requestLongRunning polls the status
// endpoint absent an explicit override.
const DefaultPollInterval = 10 * time.Second

// locationHeader is the header DevOps sets on the initial 202/201 response
// naming the status endpoint to poll.
const locationHeader = "Location"

// PollOptions configures requestLongRunning's poll loop.
type PollOptions struct {
	Interval     time.Duration // 0 means DefaultPollInterval
	LegalStates  []string
	Blocking     bool // false returns immediately after the initial request
	OperationName string
}

// LongRunningResult is what requestLongRunning returns once the operation
// settles (or immediately, if Blocking is false).
type LongRunningResult struct {
	Initial    *Response
	Final      *Response
	FinalState string
	Polled     bool
}

// RequestLongRunning issues cmd, then — unless opts.Blocking is false —
// polls the Location URL the initial response names until the reported
// status leaves opts.LegalStates' transient members and settles into a
// terminal one. Each iteration emits an adminCommandPolling event carrying
// elapsed time and iteration index.
func (c *Core) RequestLongRunning(ctx context.Context, cmd Command, timeouts *TimeoutManager, policy RetryPolicy, headers HeaderSet, opts PollOptions) (*LongRunningResult, error) {
	initial, err := c.Execute(ctx, cmd, timeouts, policy, headers)
	if err != nil {
		return nil, err
	}

	if !opts.Blocking {
		return &LongRunningResult{Initial: initial, Polled: false}, nil
	}

	location := headerValue(initial.HTTP.Headers, locationHeader)
	if location == "" {
		return nil, &apierrors.HTTPError{
			Status:     initial.HTTP.Status,
			StatusText: "missing Location header on long-running operation response",
			URL:        cmd.URL,
		}
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	pollCmd := Command{
		Name:       cmd.Name + ".poll",
		Target:     cmd.Target,
		Method:     "GET",
		URL:        location,
		ForceHTTP1: cmd.ForceHTTP1,
		Idempotent: true,
		Category:   apierrors.TimeoutCategoryAdmin,
	}

	start := time.Now()
	iteration := 0
	for {
		resp, err := c.Execute(ctx, pollCmd, timeouts, policy, headers)
		if err != nil {
			metrics.RecordPollCompletion(opts.OperationName, "error", time.Since(start))
			return nil, err
		}

		status, _ := resp.Status["status"].(string)
		iteration++
		metrics.RecordPollIteration(opts.OperationName)
		c.emit("adminCommandPolling", "", map[string]any{
			"operation": opts.OperationName,
			"elapsed":   time.Since(start).String(),
			"iteration": iteration,
			"status":    status,
		})

		if !contains(opts.LegalStates, status) {
			metrics.RecordPollCompletion(opts.OperationName, "error", time.Since(start))
			return nil, &apierrors.OperationNotAllowedError{Status: status, LegalStates: opts.LegalStates}
		}

		if isTerminalState(status) {
			metrics.RecordPollCompletion(opts.OperationName, "ok", time.Since(start))
			return &LongRunningResult{Initial: initial, Final: resp, FinalState: status, Polled: true}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// DevOps database status states, per the control-plane status machine.
const (
	StatusInitializing = "INITIALIZING"
	StatusPending       = "PENDING"
	StatusAssociating   = "ASSOCIATING"
	StatusActive        = "ACTIVE"
	StatusMaintenance   = "MAINTENANCE"
	StatusTerminating   = "TERMINATING"
	StatusTerminated    = "TERMINATED"
)

func isTerminalState(status string) bool {
	switch status {
	case StatusActive, StatusTerminated:
		return true
	default:
		return false
	}
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
