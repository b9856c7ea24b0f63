// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package eventing

import "fmt"

// Formatter renders an Event with an operation-specific message into a
// single log line. A user-installed Formatter replaces DefaultFormatter.
type Formatter func(evt *Event, message string) string

// DefaultFormatter renders `YYYY-MM-DD HH:MM:SS TZ [reqId8] [eventName]: message`.
// The request id is truncated to its first 8 characters to keep log lines
// scannable; the full id remains available on the Event for correlation.
func DefaultFormatter(evt *Event, message string) string {
	reqID8 := evt.RequestID
	if len(reqID8) > 8 {
		reqID8 = reqID8[:8]
	}
	return fmt.Sprintf("%s [%s] [%s]: %s",
		evt.Timestamp.Format("2006-01-02 15:04:05 MST"),
		reqID8,
		evt.Name,
		message,
	)
}

// NewLoggingListener adapts a Formatter + sink function into a Listener that
// can be attached directly via Emitter.On.
func NewLoggingListener(formatter Formatter, messageFor func(*Event) string, sink func(string)) Listener {
	if formatter == nil {
		formatter = DefaultFormatter
	}
	return func(evt *Event) {
		sink(formatter(evt, messageFor(evt)))
	}
}
