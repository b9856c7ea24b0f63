// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package dataapi

import (
	"context"
	"testing"
	"time"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/cursor"
	"github.com/datastax/astra-db-go/internal/eventing"
	"github.com/datastax/astra-db-go/internal/httpcore"
	"github.com/datastax/astra-db-go/internal/serdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedFetchTransport struct {
	bodies []string
	calls  int
}

func (f *scriptedFetchTransport) Fetch(_ context.Context, _ httpcore.FetchRequest) (*httpcore.FetchResponse, error) {
	body := f.bodies[f.calls]
	f.calls++
	return &httpcore.FetchResponse{Status: 200, Body: []byte(body)}, nil
}

func (f *scriptedFetchTransport) Close() error { return nil }

func newTestRegistry() *serdes.Registry {
	r := serdes.NewRegistry()
	serdes.RegisterValueCodecs(r)
	return r
}

func TestPageFetcherDeserializesDocumentsAcrossTwoPages(t *testing.T) {
	transport := &scriptedFetchTransport{bodies: []string{
		`{"data":{"documents":[{"name":"a"}],"nextPageState":"p2"},"status":{}}`,
		`{"data":{"documents":[{"name":"b"}],"nextPageState":""},"status":{}}`,
	}}
	core := httpcore.NewCore(transport, nil, eventing.NewRootEmitter())
	fetcher := &PageFetcher{
		Core:     core,
		Target:   testTarget(),
		Registry: newTestRegistry(),
		Headers:  func() (httpcore.HeaderSet, error) { return nil, nil },
		Timeouts: func() *httpcore.TimeoutManager {
			return httpcore.NewTimeoutManager(time.Now(), 5*time.Second, nil, apierrors.TimeoutCategoryRequest)
		},
		Retry: httpcore.NewDataAPIRetryPolicy(true),
	}

	c := cursor.New(fetcher)
	items, err := c.ToArray(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].(map[string]any)["name"])
	assert.Equal(t, "b", items[1].(map[string]any)["name"])
}

func TestPageFetcherExtractsSortVectorFromStatus(t *testing.T) {
	transport := &scriptedFetchTransport{bodies: []string{
		`{"data":{"documents":[],"nextPageState":""},"status":{"sortVector":{"$vector":"AACAPwAAAEA="}}}`,
	}}
	core := httpcore.NewCore(transport, nil, eventing.NewRootEmitter())
	fetcher := &PageFetcher{
		Core:     core,
		Target:   testTarget(),
		Registry: newTestRegistry(),
		Headers:  func() (httpcore.HeaderSet, error) { return nil, nil },
		Timeouts: func() *httpcore.TimeoutManager {
			return httpcore.NewTimeoutManager(time.Now(), 5*time.Second, nil, apierrors.TimeoutCategoryRequest)
		},
		Retry: httpcore.NewDataAPIRetryPolicy(true),
	}

	page, err := fetcher.FetchPage(context.Background(), nil, nil, nil, cursor.FindOptions{IncludeSortVector: true}, "")
	require.NoError(t, err)
	require.NotNil(t, page.SortVector)
	assert.Equal(t, 2, page.SortVector.Dimension())
}

func TestPageFetcherSourceKindReflectsTableMode(t *testing.T) {
	collFetcher := &PageFetcher{}
	assert.Equal(t, "collection", collFetcher.sourceKind())

	tableFetcher := &PageFetcher{TableMode: true}
	assert.Equal(t, "table", tableFetcher.sourceKind())
}
