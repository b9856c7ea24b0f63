// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package dataapi

import "github.com/datastax/astra-db-go/internal/httpcore"

// SchemaTarget names a keyspace without a fixed collection/table, for the
// keyspace-scoped DDL commands (createCollection, listCollections, ...).
type SchemaTarget struct {
	BaseURL  string
	Keyspace string
}

func (t SchemaTarget) target() Target {
	return Target{BaseURL: t.BaseURL, Keyspace: t.Keyspace, Collection: ""}
}

// NewCreateCollectionCommand builds a `createCollection` command. The core
// shuttles options opaquely — vector dimension, similarity metric, indexing
// allow/deny lists — without interpreting them.
func NewCreateCollectionCommand(t SchemaTarget, name string, options map[string]any) httpcore.Command {
	body := map[string]any{"name": name}
	if len(options) > 0 {
		body["options"] = options
	}
	return NewCommand(t.target(), "createCollection", body, false)
}

// NewCreateTableCommand builds a `createTable` command; definition carries
// the column/primary-key schema opaquely.
func NewCreateTableCommand(t SchemaTarget, name string, definition map[string]any, ifNotExists bool) httpcore.Command {
	body := map[string]any{"name": name, "definition": definition}
	if ifNotExists {
		body["options"] = map[string]any{"ifNotExists": true}
	}
	return NewCommand(t.target(), "createTable", body, false)
}

// NewListCollectionsCommand builds a `listCollections` command.
func NewListCollectionsCommand(t SchemaTarget, explain bool) httpcore.Command {
	body := map[string]any{}
	if explain {
		body["options"] = map[string]any{"explain": true}
	}
	return NewCommand(t.target(), "listCollections", body, true)
}

// NewListTablesCommand builds a `listTables` command.
func NewListTablesCommand(t SchemaTarget, explain bool) httpcore.Command {
	body := map[string]any{}
	if explain {
		body["options"] = map[string]any{"explain": true}
	}
	return NewCommand(t.target(), "listTables", body, true)
}

// NewDropCollectionCommand builds a `dropCollection` command.
func NewDropCollectionCommand(t SchemaTarget, name string) httpcore.Command {
	return NewCommand(t.target(), "dropCollection", map[string]any{"name": name}, false)
}

// NewDropTableCommand builds a `dropTable` command.
func NewDropTableCommand(t SchemaTarget, name string, ifExists bool) httpcore.Command {
	body := map[string]any{"name": name}
	if ifExists {
		body["options"] = map[string]any{"ifExists": true}
	}
	return NewCommand(t.target(), "dropTable", body, false)
}

// NewCreateIndexCommand builds a `createIndex` command against a table.
func NewCreateIndexCommand(target Target, name string, definition map[string]any) httpcore.Command {
	body := map[string]any{"name": name, "definition": definition}
	return NewCommand(target, "createIndex", body, false)
}

// NewDropIndexCommand builds a `dropIndex` command.
func NewDropIndexCommand(t SchemaTarget, name string, ifExists bool) httpcore.Command {
	body := map[string]any{"name": name}
	if ifExists {
		body["options"] = map[string]any{"ifExists": true}
	}
	return NewCommand(t.target(), "dropIndex", body, false)
}
