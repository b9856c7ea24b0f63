// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package eventing

import (
	"sync"

	"github.com/google/uuid"
)

// Listener receives an Event. It must not block the emitting goroutine for
// long; slow work should be handed off.
type Listener func(*Event)

// Emitter is one node in the client -> database -> collection/table tree.
// Listener lists are guarded by a mutex so concurrent Emit calls and
// concurrent On/Off registration are both safe.
type Emitter struct {
	mu        sync.RWMutex
	parent    *Emitter
	listeners map[string][]Listener
}

// NewRootEmitter constructs a parentless emitter, typically owned by the
// client.
func NewRootEmitter() *Emitter {
	return &Emitter{listeners: make(map[string][]Listener)}
}

// Child constructs a new emitter bubbling into this one, e.g. a database
// emitter bubbling into the client emitter.
func (e *Emitter) Child() *Emitter {
	return &Emitter{parent: e, listeners: make(map[string][]Listener)}
}

// On registers a listener for the named event family.
func (e *Emitter) On(name string, l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[name] = append(e.listeners[name], l)
}

// HasListener reports whether this node or any ancestor has a listener
// registered for name — the check the HTTP execution core uses to decide
// whether it is worth generating a request id and building an Event at all.
func (e *Emitter) HasListener(name string) bool {
	for node := e; node != nil; node = node.parent {
		node.mu.RLock()
		n := len(node.listeners[name])
		node.mu.RUnlock()
		if n > 0 {
			return true
		}
	}
	return false
}

// Emit walks the listeners registered at this node for evt.Name, then
// bubbles to the parent unless propagation was stopped.
func (e *Emitter) Emit(evt *Event) {
	node := e
	for node != nil {
		node.mu.RLock()
		listeners := make([]Listener, len(node.listeners[evt.Name]))
		copy(listeners, node.listeners[evt.Name])
		node.mu.RUnlock()

		for _, l := range listeners {
			l(evt)
			if evt.shouldStopImmediately() {
				return
			}
		}
		if !evt.shouldBubble() {
			return
		}
		node = node.parent
	}
}

// GenerateRequestID produces a fresh request id. Callers should only invoke
// this when HasListener reports true for the event family about to fire.
func GenerateRequestID() string {
	return uuid.New().String()
}
