// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package serdes implements the SerDes pipeline: a codec registry plus a
// single recursive traversal, driving both collection mode (MongoDB-shaped
// wire tags) and table mode (schema-informed column types) off the same
// engine.
package serdes

// ResultKind tags what a codec decided to do with the node it was handed.
type ResultKind int

const (
	// KindContinue means no codec committed to a decision; the traversal
	// falls back to treating the node as a plain container and recursing
	// into its entries in default order.
	KindContinue ResultKind = iota
	// KindReplace means the codec produced a final value for this node;
	// traversal does not recurse into it further.
	KindReplace
	// KindRecurse means the codec produced a replacement container that
	// the traversal should still recurse into.
	KindRecurse
	// KindDone means processing of this node (and its descendants) is
	// complete exactly as the codec left it; no further codecs run and no
	// default recursion happens.
	KindDone
	// KindNevermind means this codec declined to handle the node; the
	// dispatcher tries the next codec in order.
	KindNevermind
)

// Result is the tagged variant a Codec returns for one node.
type Result struct {
	Kind  ResultKind
	Value any
}

func Continue() Result             { return Result{Kind: KindContinue} }
func Replace(value any) Result      { return Result{Kind: KindReplace, Value: value} }
func Recurse(container any) Result  { return Result{Kind: KindRecurse, Value: container} }
func Done(value any) Result         { return Result{Kind: KindDone, Value: value} }
func Nevermind() Result             { return Result{Kind: KindNevermind} }

// MapAfterHook runs once a node's subtree has been fully processed,
// receiving the already-processed value and returning its final form. Hooks
// fire deepest-first by construction: the traversal calls a node's hook only
// after all of its children have returned.
type MapAfterHook func(value any) (any, error)

// SerializeFunc attempts to handle one node during serialization. ctx
// describes the node's position in the tree.
type SerializeFunc func(value any, ctx *NodeContext) (Result, MapAfterHook, error)

// DeserializeFunc attempts to handle one node during deserialization.
type DeserializeFunc func(wire any, ctx *NodeContext) (Result, MapAfterHook, error)

// NodeContext describes where a node sits during traversal.
type NodeContext struct {
	// Path is the sequence of field names / array-index-as-string segments
	// from the document root to this node.
	Path []string
	// TableMode is true when traversing a table row rather than a
	// schemaless document.
	TableMode bool
	// ColumnType is the server-declared type for this node's column, only
	// populated in table mode.
	ColumnType string
	// BigNumberPolicy is the resolved policy for this node's path.
	BigNumberPolicy BigNumberPolicy
	// Depth is the current recursion depth, used for the 250-level cap.
	Depth int
}

// LastSegment returns the last path segment, or "" at the root.
func (c *NodeContext) LastSegment() string {
	if len(c.Path) == 0 {
		return ""
	}
	return c.Path[len(c.Path)-1]
}
