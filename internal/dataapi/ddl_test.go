// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package dataapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchemaTarget() SchemaTarget {
	return SchemaTarget{BaseURL: "https://db-1.apps.astra.datastax.com", Keyspace: "default_keyspace"}
}

func TestNewCreateCollectionCommandOmitsOptionsWhenEmpty(t *testing.T) {
	cmd := NewCreateCollectionCommand(testSchemaTarget(), "widgets", nil)
	body := cmd.Body["createCollection"].(map[string]any)
	assert.Equal(t, "widgets", body["name"])
	_, hasOptions := body["options"]
	assert.False(t, hasOptions)
}

func TestNewCreateTableCommandCarriesDefinitionAndIfNotExists(t *testing.T) {
	cmd := NewCreateTableCommand(testSchemaTarget(), "rows", map[string]any{"columns": map[string]any{"id": "uuid"}}, true)
	body := cmd.Body["createTable"].(map[string]any)
	require.Contains(t, body, "definition")
	assert.Equal(t, true, body["options"].(map[string]any)["ifNotExists"])
}

func TestNewDropTableCommandIfExists(t *testing.T) {
	cmd := NewDropTableCommand(testSchemaTarget(), "rows", true)
	body := cmd.Body["dropTable"].(map[string]any)
	assert.Equal(t, true, body["options"].(map[string]any)["ifExists"])
	assert.False(t, cmd.Idempotent)
}

func TestNewListCollectionsCommandIsIdempotent(t *testing.T) {
	cmd := NewListCollectionsCommand(testSchemaTarget(), true)
	assert.True(t, cmd.Idempotent)
	body := cmd.Body["listCollections"].(map[string]any)
	assert.Equal(t, true, body["options"].(map[string]any)["explain"])
}

func TestNewCreateIndexCommandUsesCollectionTarget(t *testing.T) {
	cmd := NewCreateIndexCommand(testTarget(), "by_name", map[string]any{"column": "name"})
	assert.Equal(t, "https://db-1.apps.astra.datastax.com/default_keyspace/widgets", cmd.URL)
}
