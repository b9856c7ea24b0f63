// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package dataapi

import (
	"github.com/datastax/astra-db-go/internal/cursor"
	"github.com/datastax/astra-db-go/internal/httpcore"
)

func findOptionsBody(opts cursor.FindOptions, pageState string) map[string]any {
	body := map[string]any{}
	if opts.IncludeSimilarity {
		body["includeSimilarity"] = true
	}
	if opts.IncludeSortVector {
		body["includeSortVector"] = true
	}
	if opts.Limit > 0 {
		body["limit"] = opts.Limit
	}
	if opts.Skip > 0 {
		body["skip"] = opts.Skip
	}
	if pageState != "" {
		body["pageState"] = pageState
	}
	return body
}

// NewFindCommand builds a `find` command. find has no side effects, so the
// command is marked idempotent and a retry policy may retry it on transient
// failure.
func NewFindCommand(target Target, filter cursor.Filter, sort cursor.Sort, projection cursor.Projection, opts cursor.FindOptions, pageState string) httpcore.Command {
	body := map[string]any{
		"filter": map[string]any(filter),
	}
	if len(sort) > 0 {
		body["sort"] = map[string]any(sort)
	}
	if len(projection) > 0 {
		body["projection"] = map[string]any(projection)
	}
	body["options"] = findOptionsBody(opts, pageState)
	return NewCommand(target, "find", body, true)
}

// NewInsertOneCommand builds an `insertOne` command. Never idempotent: a
// retried insert would duplicate the document.
func NewInsertOneCommand(target Target, document map[string]any) httpcore.Command {
	return NewCommand(target, "insertOne", map[string]any{"document": document}, false)
}

// NewUpdateOneCommand builds an `updateOne` command.
func NewUpdateOneCommand(target Target, filter cursor.Filter, update map[string]any, upsert bool) httpcore.Command {
	body := map[string]any{
		"filter": map[string]any(filter),
		"update": update,
	}
	if upsert {
		body["options"] = map[string]any{"upsert": true}
	}
	return NewCommand(target, "updateOne", body, false)
}

// NewUpdateManyCommand builds an `updateMany` command.
func NewUpdateManyCommand(target Target, filter cursor.Filter, update map[string]any, upsert bool) httpcore.Command {
	body := map[string]any{
		"filter": map[string]any(filter),
		"update": update,
	}
	if upsert {
		body["options"] = map[string]any{"upsert": true}
	}
	return NewCommand(target, "updateMany", body, false)
}

// NewDeleteOneCommand builds a `deleteOne` command.
func NewDeleteOneCommand(target Target, filter cursor.Filter) httpcore.Command {
	return NewCommand(target, "deleteOne", map[string]any{"filter": map[string]any(filter)}, false)
}

// NewDeleteManyCommand builds a `deleteMany` command.
func NewDeleteManyCommand(target Target, filter cursor.Filter) httpcore.Command {
	return NewCommand(target, "deleteMany", map[string]any{"filter": map[string]any(filter)}, false)
}

// NewCountDocumentsCommand builds a `countDocuments` command. Idempotent:
// counting has no side effects.
func NewCountDocumentsCommand(target Target, filter cursor.Filter, upperBound int) httpcore.Command {
	return NewCommand(target, "countDocuments", map[string]any{
		"filter": map[string]any(filter),
		"options": map[string]any{
			"upperBound": upperBound,
		},
	}, true)
}

// FindOneAndModifyOptions configures the atomic find-and-modify variants'
// shared options (identical wire shape across update/replace/delete).
type FindOneAndModifyOptions struct {
	ReturnDocument string // "before" | "after"
	Upsert         bool
	Sort           cursor.Sort
	Projection     cursor.Projection
}

func (o FindOneAndModifyOptions) body() map[string]any {
	opts := map[string]any{}
	if o.ReturnDocument != "" {
		opts["returnDocument"] = o.ReturnDocument
	}
	if o.Upsert {
		opts["upsert"] = true
	}
	return opts
}

// NewFindOneAndUpdateCommand builds a `findOneAndUpdate` command.
func NewFindOneAndUpdateCommand(target Target, filter cursor.Filter, update map[string]any, opts FindOneAndModifyOptions) httpcore.Command {
	body := map[string]any{
		"filter": map[string]any(filter),
		"update": update,
		"options": opts.body(),
	}
	if len(opts.Sort) > 0 {
		body["sort"] = map[string]any(opts.Sort)
	}
	if len(opts.Projection) > 0 {
		body["projection"] = map[string]any(opts.Projection)
	}
	return NewCommand(target, "findOneAndUpdate", body, false)
}

// NewFindOneAndReplaceCommand builds a `findOneAndReplace` command — same
// wire shape as findOneAndUpdate, with a full replacement document instead
// of an update-operators object.
func NewFindOneAndReplaceCommand(target Target, filter cursor.Filter, replacement map[string]any, opts FindOneAndModifyOptions) httpcore.Command {
	body := map[string]any{
		"filter":      map[string]any(filter),
		"replacement": replacement,
		"options":     opts.body(),
	}
	if len(opts.Sort) > 0 {
		body["sort"] = map[string]any(opts.Sort)
	}
	if len(opts.Projection) > 0 {
		body["projection"] = map[string]any(opts.Projection)
	}
	return NewCommand(target, "findOneAndReplace", body, false)
}

// NewFindOneAndDeleteCommand builds a `findOneAndDelete` command.
func NewFindOneAndDeleteCommand(target Target, filter cursor.Filter, opts FindOneAndModifyOptions) httpcore.Command {
	body := map[string]any{
		"filter":  map[string]any(filter),
		"options": opts.body(),
	}
	if len(opts.Sort) > 0 {
		body["sort"] = map[string]any(opts.Sort)
	}
	if len(opts.Projection) > 0 {
		body["projection"] = map[string]any(opts.Projection)
	}
	return NewCommand(target, "findOneAndDelete", body, false)
}
