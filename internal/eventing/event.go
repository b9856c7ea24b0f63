// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package eventing implements the hierarchical event emitter: a tree of
// nodes (client -> database -> collection/table) where listener invocation
// bubbles from the origin node up to the root unless a listener stops
// propagation.
package eventing

import "time"

// PropagationState tracks whether an Event's bubbling should continue.
type PropagationState int

const (
	PropagationContinue PropagationState = iota
	PropagationStop
	PropagationStopImmediate
)

// Event is the payload delivered to every listener. Name identifies one of
// the command*/adminCommand* families; RequestID is only populated when a
// listener is attached for this event's family, to avoid paying UUID-
// generation cost when nobody is listening.
type Event struct {
	Timestamp    time.Time
	RequestID    string
	Name         string
	ExtraLogInfo map[string]any

	propagation PropagationState
}

// NewEvent constructs an Event stamped with the current time.
func NewEvent(name, requestID string, extraLogInfo map[string]any) *Event {
	return &Event{
		Timestamp:    time.Now(),
		RequestID:    requestID,
		Name:         name,
		ExtraLogInfo: extraLogInfo,
	}
}

// StopPropagation halts bubbling to the parent node after the current node's
// remaining listeners have run.
func (e *Event) StopPropagation() {
	if e.propagation == PropagationContinue {
		e.propagation = PropagationStop
	}
}

// StopImmediatePropagation halts bubbling and skips any remaining listeners
// at the current node too.
func (e *Event) StopImmediatePropagation() {
	e.propagation = PropagationStopImmediate
}

func (e *Event) shouldBubble() bool { return e.propagation == PropagationContinue }
func (e *Event) shouldStopImmediately() bool { return e.propagation == PropagationStopImmediate }
