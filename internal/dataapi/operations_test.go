// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package dataapi

import (
	"testing"

	"github.com/datastax/astra-db-go/internal/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTarget() Target {
	return Target{BaseURL: "https://db-1.apps.astra.datastax.com", Keyspace: "default_keyspace", Collection: "widgets"}
}

func TestNewFindCommandShapeAndIdempotency(t *testing.T) {
	cmd := NewFindCommand(testTarget(), cursor.Filter{"name": "a"}, cursor.Sort{"name": 1}, nil, cursor.FindOptions{Limit: 50}, "ps1")
	assert.True(t, cmd.Idempotent)
	assert.Equal(t, "https://db-1.apps.astra.datastax.com/default_keyspace/widgets", cmd.URL)

	find := cmd.Body["find"].(map[string]any)
	assert.Equal(t, map[string]any{"name": "a"}, find["filter"])
	options := find["options"].(map[string]any)
	assert.Equal(t, 50, options["limit"])
	assert.Equal(t, "ps1", options["pageState"])
}

func TestNewInsertOneCommandIsNotIdempotent(t *testing.T) {
	cmd := NewInsertOneCommand(testTarget(), map[string]any{"name": "a"})
	assert.False(t, cmd.Idempotent)
	insertOne := cmd.Body["insertOne"].(map[string]any)
	assert.Equal(t, map[string]any{"name": "a"}, insertOne["document"])
}

func TestNewUpdateOneCommandCarriesUpsertOption(t *testing.T) {
	cmd := NewUpdateOneCommand(testTarget(), cursor.Filter{"_id": "x"}, map[string]any{"$set": map[string]any{"a": 1}}, true)
	body := cmd.Body["updateOne"].(map[string]any)
	require.Contains(t, body, "options")
	assert.Equal(t, true, body["options"].(map[string]any)["upsert"])
}

func TestNewDeleteManyCommandShape(t *testing.T) {
	cmd := NewDeleteManyCommand(testTarget(), cursor.Filter{"status": "old"})
	body := cmd.Body["deleteMany"].(map[string]any)
	assert.Equal(t, map[string]any{"status": "old"}, body["filter"])
}

func TestNewFindOneAndUpdateCommandSharesOptionsShape(t *testing.T) {
	cmd := NewFindOneAndUpdateCommand(testTarget(), cursor.Filter{"_id": "x"}, map[string]any{"$set": map[string]any{"a": 1}}, FindOneAndModifyOptions{ReturnDocument: "after"})
	body := cmd.Body["findOneAndUpdate"].(map[string]any)
	assert.Equal(t, "after", body["options"].(map[string]any)["returnDocument"])
}

func TestNewCountDocumentsCommandIsIdempotent(t *testing.T) {
	cmd := NewCountDocumentsCommand(testTarget(), cursor.Filter{}, 1000)
	assert.True(t, cmd.Idempotent)
}
