// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package serdes

import (
	"fmt"

	"github.com/datastax/astra-db-go/internal/values"
)

// RegisterValueCodecs wires every internal/values type into a Registry
// using the collection-mode MongoDB-shaped wire tags named in §4.2.
func RegisterValueCodecs(r *Registry) {
	r.ForGuard(isVector, serializeVector)
	r.ForType("$vector", deserializeVector)

	r.ForGuard(isBlob, serializeBlob)
	r.ForType("$binary", deserializeBlob)

	r.ForGuard(isUUID, serializeUUID)
	r.ForType("$uuid", deserializeUUID)

	r.ForGuard(isObjectID, serializeObjectID)
	r.ForType("$objectId", deserializeObjectID)

	r.ForGuard(isDate, serializeDate)
	r.ForGuard(isTimestamp, serializeTimestamp)
	r.ForType("$date", deserializeTimestamp)

	r.ForGuard(isBigNumber, serializeBigNumber)
}

func isVector(v any) bool      { _, ok := v.(values.Vector); return ok }
func isBlob(v any) bool        { _, ok := v.(values.Blob); return ok }
func isUUID(v any) bool        { _, ok := v.(values.UUID); return ok }
func isObjectID(v any) bool    { _, ok := v.(values.ObjectID); return ok }
func isDate(v any) bool        { _, ok := v.(values.Date); return ok }
func isTimestamp(v any) bool   { _, ok := v.(values.Timestamp); return ok }
func isBigNumber(v any) bool   { _, ok := v.(values.BigNumber); return ok }

func serializeVector(value any, _ *NodeContext) (Result, MapAfterHook, error) {
	v := value.(values.Vector)
	return Done(map[string]any{"$vector": v.AsBase64()}), nil, nil
}

func deserializeVector(wire any, _ *NodeContext) (Result, MapAfterHook, error) {
	m, ok := wire.(map[string]any)
	if !ok {
		return Nevermind(), nil, nil
	}
	raw, ok := m["$vector"].(string)
	if !ok {
		return Nevermind(), nil, nil
	}
	v, err := values.NewVectorFromBase64(raw)
	if err != nil {
		return Result{}, nil, fmt.Errorf("serdes: decoding $vector: %w", err)
	}
	return Done(v), nil, nil
}

func serializeBlob(value any, _ *NodeContext) (Result, MapAfterHook, error) {
	v := value.(values.Blob)
	return Done(map[string]any{"$binary": v.AsBase64()}), nil, nil
}

func deserializeBlob(wire any, _ *NodeContext) (Result, MapAfterHook, error) {
	m, ok := wire.(map[string]any)
	if !ok {
		return Nevermind(), nil, nil
	}
	raw, ok := m["$binary"].(string)
	if !ok {
		return Nevermind(), nil, nil
	}
	v, err := values.NewBlobFromBase64(raw)
	if err != nil {
		return Result{}, nil, fmt.Errorf("serdes: decoding $binary: %w", err)
	}
	return Done(v), nil, nil
}

func serializeUUID(value any, _ *NodeContext) (Result, MapAfterHook, error) {
	v := value.(values.UUID)
	return Done(map[string]any{"$uuid": v.String()}), nil, nil
}

func deserializeUUID(wire any, _ *NodeContext) (Result, MapAfterHook, error) {
	m, ok := wire.(map[string]any)
	if !ok {
		return Nevermind(), nil, nil
	}
	raw, ok := m["$uuid"].(string)
	if !ok {
		return Nevermind(), nil, nil
	}
	v, err := values.ParseUUID(raw)
	if err != nil {
		return Result{}, nil, fmt.Errorf("serdes: decoding $uuid: %w", err)
	}
	return Done(v), nil, nil
}

func serializeObjectID(value any, _ *NodeContext) (Result, MapAfterHook, error) {
	v := value.(values.ObjectID)
	return Done(map[string]any{"$objectId": v.String()}), nil, nil
}

func deserializeObjectID(wire any, _ *NodeContext) (Result, MapAfterHook, error) {
	m, ok := wire.(map[string]any)
	if !ok {
		return Nevermind(), nil, nil
	}
	raw, ok := m["$objectId"].(string)
	if !ok {
		return Nevermind(), nil, nil
	}
	v, err := values.ParseObjectID(raw)
	if err != nil {
		return Result{}, nil, fmt.Errorf("serdes: decoding $objectId: %w", err)
	}
	return Done(v), nil, nil
}

func serializeDate(value any, _ *NodeContext) (Result, MapAfterHook, error) {
	v := value.(values.Date)
	return Done(map[string]any{"$date": v.EpochMillis()}), nil, nil
}

func serializeTimestamp(value any, _ *NodeContext) (Result, MapAfterHook, error) {
	v := value.(values.Timestamp)
	return Done(map[string]any{"$date": v.EpochMillis()}), nil, nil
}

func deserializeTimestamp(wire any, _ *NodeContext) (Result, MapAfterHook, error) {
	m, ok := wire.(map[string]any)
	if !ok {
		return Nevermind(), nil, nil
	}
	ms, ok := asInt64(m["$date"])
	if !ok {
		return Nevermind(), nil, nil
	}
	return Done(values.TimestampFromEpochMillis(ms)), nil, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func serializeBigNumber(value any, ctx *NodeContext) (Result, MapAfterHook, error) {
	v := value.(values.BigNumber)
	return Done(v.ResolveWireForm(ctx.BigNumberPolicy)), nil, nil
}
