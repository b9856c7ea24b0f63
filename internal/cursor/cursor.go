// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cursor implements the lazy, resumable FindCursor state machine:
// immutable builder methods legal only in the idle state, strictly
// sequential page fetches (bounded in-flight count of one), and a
// single-fetch-then-cache contract for vector-search sort-vector retrieval.
package cursor

import (
	"context"
	"fmt"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/values"
)

// State is the cursor's lifecycle stage.
type State int

const (
	StateIdle State = iota
	StateStarted
	StateClosed
)

// SortVectorState tracks whether a single-fetch probe for the sort vector
// has happened yet, and what it found.
type SortVectorState int

const (
	SortVectorUnattempted SortVectorState = iota
	SortVectorPresent
	SortVectorAbsent
)

// Filter, Sort and Projection are opaque JSON-shaped command fragments.
type Filter map[string]any
type Sort map[string]any
type Projection map[string]any

// FindOptions mirrors the `find` command's per-request options block.
type FindOptions struct {
	IncludeSimilarity bool
	IncludeSortVector bool
	Limit             int
	Skip              int
}

// Page is one server response page.
type Page struct {
	Documents     []any
	NextPageState string
	SortVector    *values.Vector
}

// PageFetcher executes one `find` page request. Implementations must not
// retain the returned Page's slices beyond the call.
type PageFetcher interface {
	FetchPage(ctx context.Context, filter Filter, sort Sort, projection Projection, opts FindOptions, pageState string) (*Page, error)
}

// MapFunc transforms one raw document into a consumer-facing value.
type MapFunc func(any) (any, error)

// Cursor is a lazy paginated iterator. The zero value is not usable; build
// one with New.
type Cursor struct {
	fetcher    PageFetcher
	filter     Filter
	sort       Sort
	projection Projection
	opts       FindOptions
	mapping    MapFunc

	sortVectorRequested bool

	state           State
	buffer          []any
	nextPageState   string
	exhausted       bool
	sortVectorState SortVectorState
	sortVector      *values.Vector
}

// New constructs an idle cursor over fetcher with no filter, sort,
// projection, or mapping configured.
func New(fetcher PageFetcher) *Cursor {
	return &Cursor{fetcher: fetcher, state: StateIdle}
}

func (c *Cursor) shallowCopy() *Cursor {
	return &Cursor{
		fetcher:             c.fetcher,
		filter:              c.filter,
		sort:                c.sort,
		projection:          c.projection,
		opts:                c.opts,
		mapping:             c.mapping,
		sortVectorRequested: c.sortVectorRequested,
		state:               StateIdle,
	}
}

func (c *Cursor) requireIdle() error {
	if c.state != StateIdle {
		return &apierrors.CursorStateError{
			Operation: "mutate",
			State:     stateName(c.state),
		}
	}
	return nil
}

func stateName(s State) string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarted:
		return "started"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// WithFilter returns a new idle cursor with filter replaced.
func (c *Cursor) WithFilter(filter Filter) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	next := c.shallowCopy()
	next.filter = filter
	return next, nil
}

// WithSort returns a new idle cursor with sort replaced.
func (c *Cursor) WithSort(sort Sort) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	next := c.shallowCopy()
	next.sort = sort
	return next, nil
}

// WithProjection returns a new idle cursor with projection replaced.
// Rejected once a mapping has been set, since a projection changes the
// document shape the mapping function was written against.
func (c *Cursor) WithProjection(projection Projection) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	if c.mapping != nil {
		return nil, &apierrors.CursorStateError{
			Operation: "project-after-map",
			State:     stateName(c.state),
		}
	}
	next := c.shallowCopy()
	next.projection = projection
	return next, nil
}

// WithLimit returns a new idle cursor with limit replaced. limit=0 means
// unbounded; the server enforces its own ceiling.
func (c *Cursor) WithLimit(limit int) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	next := c.shallowCopy()
	next.opts.Limit = limit
	return next, nil
}

// WithSkip returns a new idle cursor with skip replaced. skip must be
// combined with a sort to be deterministic; enforced here.
func (c *Cursor) WithSkip(skip int) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	if skip > 0 && len(c.sort) == 0 {
		return nil, &apierrors.CursorStateError{
			Operation: "skip-without-sort",
			State:     stateName(c.state),
		}
	}
	next := c.shallowCopy()
	next.opts.Skip = skip
	return next, nil
}

// WithIncludeSimilarity returns a new idle cursor with includeSimilarity set.
func (c *Cursor) WithIncludeSimilarity(include bool) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	next := c.shallowCopy()
	next.opts.IncludeSimilarity = include
	return next, nil
}

// WithIncludeSortVector returns a new idle cursor with includeSortVector set.
func (c *Cursor) WithIncludeSortVector(include bool) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	next := c.shallowCopy()
	next.opts.IncludeSortVector = include
	next.sortVectorRequested = next.sortVectorRequested || include
	return next, nil
}

// WithMap returns a new idle cursor whose mapping is f composed after any
// previous mapping g, i.e. f∘g: g (the earlier transform) runs first, then f.
func (c *Cursor) WithMap(f MapFunc) (*Cursor, error) {
	if err := c.requireIdle(); err != nil {
		return nil, err
	}
	next := c.shallowCopy()
	next.mapping = compose(f, c.mapping)
	return next, nil
}

func compose(f, g MapFunc) MapFunc {
	if g == nil {
		return f
	}
	return func(v any) (any, error) {
		gv, err := g(v)
		if err != nil {
			return nil, err
		}
		return f(gv)
	}
}

// Clone yields a new idle cursor with the same filter/sort/projection/
// options/mapping, independent consumption state (empty buffer, no page
// state, unattempted sort-vector probe).
func (c *Cursor) Clone() *Cursor {
	return c.shallowCopy()
}

// Rewind transitions this same cursor object back to idle, clearing its
// buffer and page state while keeping its mapping and builder configuration.
func (c *Cursor) Rewind() {
	c.state = StateIdle
	c.buffer = nil
	c.nextPageState = ""
	c.exhausted = false
	c.sortVectorState = SortVectorUnattempted
	c.sortVector = nil
}

// State returns the cursor's current lifecycle stage.
func (c *Cursor) State() State { return c.state }

func (c *Cursor) effectiveOptions() FindOptions {
	opts := c.opts
	if c.sortVectorState != SortVectorUnattempted {
		opts.IncludeSortVector = false
	}
	return opts
}

// ensureBuffer fetches the next page if the buffer is empty and more pages
// may exist. Page fetches are strictly sequential: this cursor never has
// more than one fetch in flight at a time.
func (c *Cursor) ensureBuffer(ctx context.Context) error {
	if len(c.buffer) > 0 || c.exhausted {
		return nil
	}
	if c.state == StateClosed {
		return nil
	}

	firstPage := c.state == StateIdle
	c.state = StateStarted

	page, err := c.fetcher.FetchPage(ctx, c.filter, c.sort, c.projection, c.effectiveOptions(), c.nextPageState)
	if err != nil {
		c.state = StateClosed
		return err
	}

	c.buffer = append(c.buffer, page.Documents...)
	c.nextPageState = page.NextPageState
	if c.nextPageState == "" {
		c.exhausted = true
	}

	if firstPage && c.sortVectorRequested && c.sortVectorState == SortVectorUnattempted {
		if page.SortVector != nil {
			c.sortVector = page.SortVector
			c.sortVectorState = SortVectorPresent
		} else {
			c.sortVectorState = SortVectorAbsent
		}
	}
	// After the first successful page, includeSortVector is cleared to
	// avoid redundant work on subsequent pages.
	c.opts.IncludeSortVector = false

	return nil
}

// Next returns the next mapped element, or ok=false at end of stream.
func (c *Cursor) Next(ctx context.Context) (value any, ok bool, err error) {
	if c.state == StateClosed && len(c.buffer) == 0 {
		return nil, false, nil
	}
	if err := c.ensureBuffer(ctx); err != nil {
		return nil, false, err
	}
	if len(c.buffer) == 0 {
		c.state = StateClosed
		return nil, false, nil
	}

	item := c.buffer[0]
	c.buffer = c.buffer[1:]
	if len(c.buffer) == 0 && c.exhausted {
		c.state = StateClosed
	}

	if c.mapping == nil {
		return item, true, nil
	}
	mapped, mapErr := c.mapping(item)
	if mapErr != nil {
		c.state = StateClosed
		return nil, false, fmt.Errorf("cursor: mapping function failed: %w", mapErr)
	}
	return mapped, true, nil
}

// HasNext reports whether a subsequent Next call would yield a value,
// fetching a page if necessary without advancing the consumer position.
func (c *Cursor) HasNext(ctx context.Context) (bool, error) {
	if c.state == StateClosed && len(c.buffer) == 0 {
		return false, nil
	}
	if err := c.ensureBuffer(ctx); err != nil {
		return false, err
	}
	return len(c.buffer) > 0, nil
}

// ToArray drains the cursor to completion. Re-invocation on an
// already-closed cursor is rejected.
func (c *Cursor) ToArray(ctx context.Context) ([]any, error) {
	if c.state == StateClosed && len(c.buffer) == 0 {
		return nil, &apierrors.CursorStateError{
			Operation: "toArray-on-closed",
			State:     stateName(c.state),
		}
	}
	var out []any
	for {
		v, ok, err := c.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// ConsumeBuffer returns up to n raw, un-mapped buffered items without
// invoking the mapping function, for back-pressure-aware consumers. n<=0
// means drain the entire current buffer.
func (c *Cursor) ConsumeBuffer(n int) []any {
	if n <= 0 || n > len(c.buffer) {
		n = len(c.buffer)
	}
	out := c.buffer[:n]
	c.buffer = c.buffer[n:]
	return out
}

// GetSortVector returns the vector used for a vector-search sort, or nil if
// includeSortVector(true) was never set. If the cursor has not yet been
// executed, this triggers a single fetch; if the cursor was idle before the
// call, it is rewound to idle afterward.
func (c *Cursor) GetSortVector(ctx context.Context) (*values.Vector, error) {
	if !c.sortVectorRequested {
		return nil, nil
	}
	if c.sortVectorState == SortVectorUnattempted {
		wasIdle := c.state == StateIdle
		if err := c.ensureBuffer(ctx); err != nil {
			return nil, err
		}
		if wasIdle {
			probedState, probedVector := c.sortVectorState, c.sortVector
			c.Rewind()
			c.sortVectorState, c.sortVector = probedState, probedVector
		}
	}
	if c.sortVectorState == SortVectorPresent {
		return c.sortVector, nil
	}
	return nil, nil
}

// Close transitions the cursor directly to closed, discarding any buffered
// items.
func (c *Cursor) Close() {
	c.state = StateClosed
	c.buffer = nil
}
