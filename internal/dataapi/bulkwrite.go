// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package dataapi

import "github.com/datastax/astra-db-go/internal/httpcore"

// NewInsertManyCommand builds an `insertMany` command. ordered=true makes
// the server process documents sequentially and stop at the first failure,
// reporting insertedIds in input order in its partial result; ordered=false
// lets the server parallelize, at the cost of an unspecified insertedIds
// order in a partial failure — this client never reorders what the server
// returns, so callers relying on correspondence between input position and
// insertedIds position must pass ordered:true.
func NewInsertManyCommand(target Target, documents []map[string]any, ordered bool) httpcore.Command {
	return NewCommand(target, "insertMany", map[string]any{
		"documents": documents,
		"options":   map[string]any{"ordered": ordered},
	}, false)
}

// BulkWriteOperation is one heterogeneous entry of a bulkWrite request: one
// of insertOne/updateOne/updateMany/deleteOne/deleteMany/replaceOne, named
// by Kind with an operation-shaped Body (same body a single-operation
// command of that kind would carry).
type BulkWriteOperation struct {
	Kind string
	Body map[string]any
}

// NewBulkWriteCommand builds a `bulkWrite` command batching heterogeneous
// operations into one envelope, each tagged by its own operation name so the
// server can report a per-operation result list back in the same order.
// Ordered semantics mirror insertMany: ordered=true stops at first failure
// and preserves input-sequence correspondence in the per-operation result
// list; ordered=false allows the server to execute concurrently, and the
// per-operation result list's order is then unspecified by this client.
func NewBulkWriteCommand(target Target, ops []BulkWriteOperation, ordered bool) httpcore.Command {
	wireOps := make([]map[string]any, len(ops))
	for i, op := range ops {
		wireOps[i] = map[string]any{op.Kind: op.Body}
	}
	return NewCommand(target, "bulkWrite", map[string]any{
		"operations": wireOps,
		"options":    map[string]any{"ordered": ordered},
	}, false)
}
