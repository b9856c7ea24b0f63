// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package dataapi

import (
	"context"
	"fmt"

	"github.com/datastax/astra-db-go/internal/cursor"
	"github.com/datastax/astra-db-go/internal/httpcore"
	"github.com/datastax/astra-db-go/internal/metrics"
	"github.com/datastax/astra-db-go/internal/serdes"
	"github.com/datastax/astra-db-go/internal/values"
)

// PageFetcher adapts internal/cursor's PageFetcher interface to a `find`
// command executed through internal/httpcore, deserializing each returned
// document through the codec registry.
type PageFetcher struct {
	Core      *httpcore.Core
	Target    Target
	Registry  *serdes.Registry
	TableMode bool
	Headers   func() (httpcore.HeaderSet, error)
	Timeouts  func() *httpcore.TimeoutManager
	Retry     httpcore.RetryPolicy
}

func (f *PageFetcher) sourceKind() string {
	if f.TableMode {
		return "table"
	}
	return "collection"
}

func (f *PageFetcher) FetchPage(ctx context.Context, filter cursor.Filter, sort cursor.Sort, projection cursor.Projection, opts cursor.FindOptions, pageState string) (*cursor.Page, error) {
	cmd := NewFindCommand(f.Target, filter, sort, projection, opts, pageState)

	headers, err := f.Headers()
	if err != nil {
		return nil, fmt.Errorf("dataapi: resolving headers: %w", err)
	}

	resp, err := f.Core.Execute(ctx, cmd, f.Timeouts(), f.Retry, headers)
	if err != nil {
		return nil, err
	}
	metrics.RecordCursorPageFetched(f.sourceKind())

	rawDocuments, _ := resp.Data["documents"].([]any)
	documents := make([]any, 0, len(rawDocuments))
	for _, raw := range rawDocuments {
		doc, err := f.Registry.Deserialize(raw, f.TableMode)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	nextPageState, _ := resp.Data["nextPageState"].(string)

	page := &cursor.Page{Documents: documents, NextPageState: nextPageState}
	if rawVector, ok := resp.Status["sortVector"]; ok && rawVector != nil {
		vec, err := deserializeSortVector(rawVector)
		if err != nil {
			return nil, err
		}
		page.SortVector = vec
	}
	return page, nil
}

func deserializeSortVector(raw any) (*values.Vector, error) {
	tagged, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("dataapi: sortVector has unexpected shape %T", raw)
	}
	b64, ok := tagged["$vector"].(string)
	if !ok {
		return nil, fmt.Errorf("dataapi: sortVector missing $vector field")
	}
	vec, err := values.NewVectorFromBase64(b64)
	if err != nil {
		return nil, fmt.Errorf("dataapi: decoding sortVector: %w", err)
	}
	return &vec, nil
}
