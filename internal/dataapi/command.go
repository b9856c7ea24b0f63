// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package dataapi implements the Data API's command/response envelope:
// one-operation-per-request POST bodies shaped `<baseUrl>/<keyspace>/
// <collection-or-table>`, find/insert/update/delete/findOneAndModify
// operation constructors, bulkWrite, schema DDL helpers, and a cursor
// page-fetcher adapter wiring internal/cursor to internal/httpcore.
package dataapi

import (
	"fmt"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/httpcore"
)

// Target identifies the path segment this client operates against: a
// document collection or a schema-typed table. Both share the same wire
// contract; only the path segment and certain option semantics differ.
type Target struct {
	BaseURL    string
	Keyspace   string
	Collection string
}

func (t Target) url() string {
	return fmt.Sprintf("%s/%s/%s", t.BaseURL, t.Keyspace, t.Collection)
}

// NewCommand builds a single-operation Data API command: a POST whose body
// is exactly one key (operationName -> operationBody), per the Data API's
// one-entry-object wire contract.
func NewCommand(target Target, operationName string, operationBody map[string]any, idempotent bool) httpcore.Command {
	if operationBody == nil {
		operationBody = map[string]any{}
	}
	return httpcore.Command{
		Name:       operationName,
		Target:     "data",
		Method:     "POST",
		URL:        target.url(),
		Idempotent: idempotent,
		Category:   apierrors.TimeoutCategoryRequest,
		Body: map[string]any{
			operationName: operationBody,
		},
	}
}
