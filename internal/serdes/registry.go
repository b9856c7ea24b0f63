// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package serdes

import "reflect"

// SelfSerializer lets a value opt into handling its own serialization,
// the Go-idiomatic replacement for prototype-attached delegate methods.
type SelfSerializer interface {
	SerializeForWire(ctx *NodeContext) (Result, MapAfterHook, error)
}

// SelfDeserializer lets a target type opt into handling its own
// deserialization given the raw wire value.
type SelfDeserializer interface {
	DeserializeFromWire(wire any, ctx *NodeContext) (Result, MapAfterHook, error)
}

type pathSerializeEntry struct {
	path []string
	fn   SerializeFunc
}

type pathDeserializeEntry struct {
	path []string
	fn   DeserializeFunc
}

type guardEntry struct {
	guard func(any) bool
	fn    SerializeFunc
}

type classEntry struct {
	class reflect.Type
	fn    SerializeFunc
}

// Registry holds every codec registered for one SerDes pipeline instance.
// A Registry is immutable once construction (registration) finishes; the
// HTTP execution core and cursor engine only ever call its read paths
// concurrently, so no lock is needed after that point.
type Registry struct {
	forPathSerialize   []pathSerializeEntry
	forPathDeserialize []pathDeserializeEntry

	forNameSerialize   map[string][]SerializeFunc
	forNameDeserialize map[string][]DeserializeFunc

	forTypeDeserialize map[string][]DeserializeFunc

	forGuard []guardEntry
	forClass []classEntry

	BigNumberPolicies *BigNumberPolicyTable
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		forNameSerialize:   make(map[string][]SerializeFunc),
		forNameDeserialize: make(map[string][]DeserializeFunc),
		forTypeDeserialize: make(map[string][]DeserializeFunc),
		BigNumberPolicies:  NewBigNumberPolicyTable(BigNumberPolicyNever),
	}
}

// ForPath registers a codec keyed to an exact path (with `*` wildcards).
func (r *Registry) ForPath(path []string, serialize SerializeFunc, deserialize DeserializeFunc) {
	if serialize != nil {
		r.forPathSerialize = append(r.forPathSerialize, pathSerializeEntry{path: path, fn: serialize})
	}
	if deserialize != nil {
		r.forPathDeserialize = append(r.forPathDeserialize, pathDeserializeEntry{path: path, fn: deserialize})
	}
}

// ForName registers a codec keyed to the node's last path segment.
func (r *Registry) ForName(name string, serialize SerializeFunc, deserialize DeserializeFunc) {
	if serialize != nil {
		r.forNameSerialize[name] = append(r.forNameSerialize[name], serialize)
	}
	if deserialize != nil {
		r.forNameDeserialize[name] = append(r.forNameDeserialize[name], deserialize)
	}
}

// ForType registers a deserialize-only codec keyed to a wire type tag (e.g.
// "$date", "$uuid") or a table-mode column type name.
func (r *Registry) ForType(typeTag string, deserialize DeserializeFunc) {
	r.forTypeDeserialize[typeTag] = append(r.forTypeDeserialize[typeTag], deserialize)
}

// ForGuard registers a serialize-only codec that handles any value for which
// guard returns true. Guards are tried in registration order; first match
// wins.
func (r *Registry) ForGuard(guard func(any) bool, serialize SerializeFunc) {
	r.forGuard = append(r.forGuard, guardEntry{guard: guard, fn: serialize})
}

// ForClass registers a serialize-only codec keyed to a concrete Go type.
func (r *Registry) ForClass(sample any, serialize SerializeFunc) {
	r.forClass = append(r.forClass, classEntry{class: reflect.TypeOf(sample), fn: serialize})
}

// dispatchSerialize runs the forPath -> forName -> self -> forGuard/forClass
// chain for one node, in the order §4.2 specifies (steps a-e, d omitted on
// the serialize side since forType is deserialize-only).
func (r *Registry) dispatchSerialize(value any, ctx *NodeContext) (Result, MapAfterHook, error) {
	for _, entry := range r.forPathSerialize {
		if pathMatches(entry.path, ctx.Path) {
			res, hook, err := entry.fn(value, ctx)
			if err != nil || res.Kind != KindNevermind {
				return res, hook, err
			}
		}
	}
	for _, fn := range r.forNameSerialize[ctx.LastSegment()] {
		res, hook, err := fn(value, ctx)
		if err != nil || res.Kind != KindNevermind {
			return res, hook, err
		}
	}
	if self, ok := value.(SelfSerializer); ok {
		res, hook, err := self.SerializeForWire(ctx)
		if err != nil || res.Kind != KindNevermind {
			return res, hook, err
		}
	}
	for _, entry := range r.forGuard {
		if entry.guard(value) {
			res, hook, err := entry.fn(value, ctx)
			if err != nil || res.Kind != KindNevermind {
				return res, hook, err
			}
		}
	}
	if value != nil {
		vt := reflect.TypeOf(value)
		for _, entry := range r.forClass {
			if entry.class == vt {
				res, hook, err := entry.fn(value, ctx)
				if err != nil || res.Kind != KindNevermind {
					return res, hook, err
				}
			}
		}
	}
	return Continue(), nil, nil
}

// dispatchDeserialize runs the forPath -> forName -> forType chain for one
// node. Unlike dispatchSerialize it has no self step: SelfDeserializer is not
// consulted.
func (r *Registry) dispatchDeserialize(wire any, ctx *NodeContext, targetType string) (Result, MapAfterHook, error) {
	for _, entry := range r.forPathDeserialize {
		if pathMatches(entry.path, ctx.Path) {
			res, hook, err := entry.fn(wire, ctx)
			if err != nil || res.Kind != KindNevermind {
				return res, hook, err
			}
		}
	}
	for _, fn := range r.forNameDeserialize[ctx.LastSegment()] {
		res, hook, err := fn(wire, ctx)
		if err != nil || res.Kind != KindNevermind {
			return res, hook, err
		}
	}
	if targetType != "" {
		for _, fn := range r.forTypeDeserialize[targetType] {
			res, hook, err := fn(wire, ctx)
			if err != nil || res.Kind != KindNevermind {
				return res, hook, err
			}
		}
	}
	return Continue(), nil, nil
}
