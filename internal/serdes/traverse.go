// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package serdes

import (
	"math/big"
	"sort"

	"github.com/datastax/astra-db-go/internal/values"
)

// MaxDepth is the recursion cap (§4.2): beyond this many nesting levels a
// node is silently treated as a leaf rather than recursed into, protecting
// against pathological cyclic or absurdly deep trees.
const MaxDepth = 250

// Serialize converts an in-memory record into its JSON-ready wire form. The
// second return value is true when the tree contained any BigNumber whose
// resolved policy requires a big-number-aware encoder downstream.
func (r *Registry) Serialize(record any, tableMode bool) (any, bool, error) {
	bigNumberSeen := false
	ctx := &NodeContext{TableMode: tableMode}
	result, err := r.serializeNode(record, ctx, &bigNumberSeen)
	return result, bigNumberSeen, err
}

func (r *Registry) serializeNode(value any, ctx *NodeContext, bigNumberSeen *bool) (any, error) {
	ctx.BigNumberPolicy = r.BigNumberPolicies.Resolve(ctx.Path)

	if ctx.Depth >= MaxDepth {
		return value, nil
	}

	if bn, ok := value.(values.BigNumber); ok {
		switch bn.ResolveWireForm(ctx.BigNumberPolicy).(type) {
		case values.BigNumber, *big.Int:
			*bigNumberSeen = true
		}
	}

	res, hook, err := r.dispatchSerialize(value, ctx)
	if err != nil {
		return nil, err
	}

	var out any
	switch res.Kind {
	case KindDone:
		out = res.Value
	case KindReplace:
		out = res.Value
	case KindRecurse:
		out, err = r.recurseDefault(res.Value, ctx, bigNumberSeen, true)
		if err != nil {
			return nil, err
		}
	case KindContinue, KindNevermind:
		out, err = r.recurseDefault(value, ctx, bigNumberSeen, true)
		if err != nil {
			return nil, err
		}
	}

	if res.Kind != KindDone && hook != nil {
		out, err = hook(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Deserialize rehydrates domain values from the JSON wire form. tableMode
// marks the traversal as a table row (NodeContext.TableMode); no response
// envelope is passed in, so codecs see only the wire value and its position.
func (r *Registry) Deserialize(wire any, tableMode bool) (any, error) {
	ctx := &NodeContext{TableMode: tableMode}
	return r.deserializeNode(wire, ctx)
}

func (r *Registry) deserializeNode(wire any, ctx *NodeContext) (any, error) {
	ctx.BigNumberPolicy = r.BigNumberPolicies.Resolve(ctx.Path)

	if ctx.Depth >= MaxDepth {
		return wire, nil
	}

	targetType := ctx.ColumnType
	if targetType == "" {
		targetType = wireTypeTag(wire)
	}

	res, hook, err := r.dispatchDeserialize(wire, ctx, targetType)
	if err != nil {
		return nil, err
	}

	var out any
	switch res.Kind {
	case KindDone:
		out = res.Value
	case KindReplace:
		out = res.Value
	case KindRecurse:
		out, err = r.recurseDefaultDeserialize(res.Value, ctx)
		if err != nil {
			return nil, err
		}
	case KindContinue, KindNevermind:
		out, err = r.recurseDefaultDeserialize(wire, ctx)
		if err != nil {
			return nil, err
		}
	}

	if res.Kind != KindDone && hook != nil {
		out, err = hook(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// wireTypeTag extracts a single-key wire-tag map's key (e.g. "$date" from
// {"$date": 123}), the collection-mode signal for forType dispatch.
func wireTypeTag(wire any) string {
	m, ok := wire.(map[string]any)
	if !ok || len(m) != 1 {
		return ""
	}
	for k := range m {
		if len(k) > 0 && k[0] == '$' {
			return k
		}
	}
	return ""
}

// recurseDefault walks a plain container's entries in key-reverse order for
// maps (stable O(1)-deletion-safe iteration) or sequence order for arrays.
func (r *Registry) recurseDefault(value any, ctx *NodeContext, bigNumberSeen *bool, serializing bool) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		out := make(map[string]any, len(v))
		for _, k := range keys {
			childCtx := &NodeContext{
				Path:      append(append([]string{}, ctx.Path...), k),
				TableMode: ctx.TableMode,
				Depth:     ctx.Depth + 1,
			}
			child, err := r.serializeNode(v[k], childCtx, bigNumberSeen)
			if err != nil {
				return nil, err
			}
			out[k] = child
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i := 0; i < len(v); i++ {
			childCtx := &NodeContext{
				Path:      append(append([]string{}, ctx.Path...), indexSegment(i)),
				TableMode: ctx.TableMode,
				Depth:     ctx.Depth + 1,
			}
			child, err := r.serializeNode(v[i], childCtx, bigNumberSeen)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	default:
		return value, nil
	}
}

func (r *Registry) recurseDefaultDeserialize(wire any, ctx *NodeContext) (any, error) {
	switch v := wire.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		out := make(map[string]any, len(v))
		for _, k := range keys {
			childCtx := &NodeContext{
				Path:      append(append([]string{}, ctx.Path...), k),
				TableMode: ctx.TableMode,
				Depth:     ctx.Depth + 1,
			}
			child, err := r.deserializeNode(v[k], childCtx)
			if err != nil {
				return nil, err
			}
			out[k] = child
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i := len(v) - 1; i >= 0; i-- {
			childCtx := &NodeContext{
				Path:      append(append([]string{}, ctx.Path...), indexSegment(i)),
				TableMode: ctx.TableMode,
				Depth:     ctx.Depth + 1,
			}
			child, err := r.deserializeNode(v[i], childCtx)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	default:
		return wire, nil
	}
}

func indexSegment(i int) string {
	digits := []byte{}
	if i == 0 {
		return "0"
	}
	n := i
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
