// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/eventing"
	"github.com/datastax/astra-db-go/internal/logging"
	"github.com/datastax/astra-db-go/internal/metrics"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// commandLogger returns a component-scoped logger carrying the correlation
// and request ids stashed in ctx (see internal/logging's context-correlation
// helpers), so retry/failure log lines for one logical command all share the
// same request_id field regardless of which attempt emitted them.
func commandLogger(ctx context.Context) zerolog.Logger {
	return logging.Ctx(ctx).With().Str("component", "httpcore").Logger()
}

const authSentinel = "UNAUTHENTICATED: Invalid token"

// Command describes one logical operation dispatched through Core.Execute:
// a single JSON-over-HTTP call against either the Data API or the DevOps
// API, named for metrics/events and flagged idempotent where a retry is
// safe to attempt.
type Command struct {
	Name       string // e.g. "insertOne", "createCollection"
	Target     string // "data" | "devops"
	Method     string
	URL        string
	Body       map[string]any
	ForceHTTP1 bool
	Idempotent bool
	Category   apierrors.TimeoutCategory
}

// Core ties a fetch transport, circuit breaker, and event emitter together
// into the execute/request/requestLongRunning contract.
type Core struct {
	Transport    FetchTransport
	Breaker      *BreakerClient
	Emitter      *eventing.Emitter
	DevOpsLimiter *rate.Limiter
}

// NewCore constructs a Core. breaker may be nil to run without circuit
// breaking (used in tests and for transports that already wrap their own).
func NewCore(transport FetchTransport, breaker *BreakerClient, emitter *eventing.Emitter) *Core {
	return &Core{Transport: transport, Breaker: breaker, Emitter: emitter}
}

// WithDevOpsLimiter attaches a client-side rate limiter applied to every
// DevOps-target command before it is attempted, client-level protection
// against the control plane's own throttling.
func (c *Core) WithDevOpsLimiter(limiter *rate.Limiter) *Core {
	c.DevOpsLimiter = limiter
	return c
}

func (c *Core) emit(name, requestID string, extra map[string]any) {
	if c.Emitter == nil || !c.Emitter.HasListener(name) {
		return
	}
	metrics.RecordEventEmitted(name)
	c.Emitter.Emit(eventing.NewEvent(name, requestID, extra))
}

func startedEventName(cmd Command) string {
	if cmd.Target == "devops" {
		return "adminCommandStarted"
	}
	return "commandStarted"
}

func succeededEventName(cmd Command) string {
	if cmd.Target == "devops" {
		return "adminCommandSucceeded"
	}
	return "commandSucceeded"
}

func failedEventName(cmd Command) string {
	if cmd.Target == "devops" {
		return "adminCommandFailed"
	}
	return "commandFailed"
}

func warningsEventName(cmd Command) string {
	if cmd.Target == "devops" {
		return "adminCommandWarnings"
	}
	return "commandWarnings"
}

// Execute runs cmd to completion: a single attempt plus whatever retries the
// supplied policy grants, honoring timeouts.Advance for each attempt's
// budget and emitting the started/warnings*/succeeded|failed event sequence.
func (c *Core) Execute(ctx context.Context, cmd Command, timeouts *TimeoutManager, policy RetryPolicy, headers HeaderSet) (*Response, error) {
	requestID := ""
	startedName := startedEventName(cmd)
	if c.Emitter != nil && c.Emitter.HasListener(startedName) {
		requestID = eventing.GenerateRequestID()
	}
	if requestID != "" {
		ctx = logging.ContextWithRequestID(ctx, requestID)
	}
	c.emit(startedName, requestID, map[string]any{"command": cmd.Name, "url": cmd.URL})

	start := time.Now()
	var lastErr error
	attempt := 1
	for {
		resp, err := c.attempt(ctx, cmd, timeouts, headers, attempt)
		if err == nil {
			metrics.RecordCommand(cmd.Target, cmd.Name, "ok", time.Since(start))
			c.emit(succeededEventName(cmd), requestID, map[string]any{"command": cmd.Name, "attempt": attempt})
			return resp, nil
		}
		lastErr = err

		now := time.Now()
		remaining := timeouts.start.Add(timeouts.general).Sub(now)
		decision := policy.Decide(attempt, remaining, err)
		if !decision.Retry {
			break
		}

		commandLogger(ctx).Warn().
			Err(err).
			Str("command", cmd.Name).
			Int("attempt", attempt).
			Dur("delay", decision.Delay).
			Msg("command failed, retrying")
		metrics.RecordRetry(cmd.Target, cmd.Name)
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			goto failed
		case <-time.After(decision.Delay):
		}
		attempt++
	}

failed:
	outcome := "error"
	if isTimeout(lastErr) {
		outcome = "timeout"
	}
	metrics.RecordCommand(cmd.Target, cmd.Name, outcome, time.Since(start))
	commandLogger(ctx).Error().Err(lastErr).Str("command", cmd.Name).Str("outcome", outcome).Msg("command failed")
	c.emit(failedEventName(cmd), requestID, map[string]any{"command": cmd.Name, "error": lastErr.Error()})
	return nil, lastErr
}

func isTimeout(err error) bool {
	_, ok := err.(*apierrors.TimeoutError)
	return ok
}

func (c *Core) attempt(ctx context.Context, cmd Command, timeouts *TimeoutManager, headers HeaderSet, attemptNum int) (*Response, error) {
	if cmd.Target == "devops" {
		if err := awaitRateLimit(ctx, c.DevOpsLimiter); err != nil {
			return nil, &apierrors.UnreachableError{Err: err}
		}
	}

	msRemaining, mkTimeoutErr := timeouts.Advance(time.Now(), RequestInfo{Attempt: attemptNum, Category: cmd.Category})
	if msRemaining <= 0 {
		return nil, mkTimeoutErr()
	}

	var bodyBytes []byte
	if cmd.Body != nil {
		encoded, err := json.Marshal(cmd.Body)
		if err != nil {
			return nil, &apierrors.SerializationError{Path: "$", Message: err.Error()}
		}
		bodyBytes = encoded
	}

	req := FetchRequest{
		URL:            cmd.URL,
		Body:           bodyBytes,
		Method:         cmd.Method,
		Headers:        headers,
		ForceHTTP1:     cmd.ForceHTTP1,
		Timeout:        msRemaining,
		MkTimeoutError: mkTimeoutErr,
	}

	fetch := func() (*FetchResponse, error) {
		return c.Transport.Fetch(ctx, req)
	}

	var resp *FetchResponse
	var err error
	if c.Breaker != nil {
		resp, err = c.Breaker.Execute(fetch)
	} else {
		resp, err = fetch()
	}
	if err != nil {
		if Rejected(err) {
			return nil, &apierrors.UnreachableError{Err: err}
		}
		return nil, &apierrors.TransportError{URL: cmd.URL, Err: err}
	}

	if resp.Status == 401 || bytes.Contains(resp.Body, []byte(authSentinel)) {
		return nil, &apierrors.AuthenticationFailedError{Status: resp.Status, URL: cmd.URL}
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, &apierrors.HTTPError{Status: resp.Status, StatusText: resp.StatusText, Body: resp.Body, URL: cmd.URL}
	}

	env, err := parseEnvelope(resp.Body)
	if err != nil {
		return nil, &apierrors.SerializationError{Path: "$", Message: fmt.Sprintf("decoding response body: %v", err)}
	}
	if len(env.Errors) > 0 {
		descriptors := make([]apierrors.ErrorDescriptor, len(env.Errors))
		for i, e := range env.Errors {
			descriptors[i] = apierrors.ErrorDescriptor{ErrorCode: e.ErrorCode, Message: e.Message, Attributes: e.Attributes}
		}
		if descriptors[0].ErrorCode == "COLLECTION_NOT_EXIST" {
			return nil, &apierrors.CollectionNotFoundError{
				Keyspace:   fmt.Sprint(descriptors[0].Attributes["keyspace"]),
				Collection: fmt.Sprint(descriptors[0].Attributes["collection"]),
			}
		}
		return nil, &apierrors.ResponseError{Errors: descriptors, PartialResult: env.Data}
	}

	return &Response{HTTP: resp, Status: env.Status, Data: env.Data}, nil
}
