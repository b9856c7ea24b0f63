// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package devops

import (
	"fmt"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/httpcore"
)

// CreateDatabaseRequest is the body of a POST /databases call.
type CreateDatabaseRequest struct {
	Name          string `json:"name"`
	CloudProvider string `json:"cloudProvider"`
	Region        string `json:"region"`
	Keyspace      string `json:"keyspace,omitempty"`
	Tier          string `json:"tier,omitempty"`
	CapacityUnits int    `json:"capacityUnits,omitempty"`
}

func baseURL(devopsURL string) string {
	return devopsURL + "/v2/databases"
}

// NewCreateDatabaseCommand builds the async create-database command. The
// response is a long-running operation: a 200/201/202 carrying a `Location`
// header naming the new database's status endpoint.
func NewCreateDatabaseCommand(devopsURL string, req CreateDatabaseRequest) httpcore.Command {
	return httpcore.Command{
		Name:       "createDatabase",
		Target:     "devops",
		Method:     "POST",
		URL:        baseURL(devopsURL),
		ForceHTTP1: true,
		Idempotent: false,
		Category:   apierrors.TimeoutCategoryProvisioning,
		Body: map[string]any{
			"name":          req.Name,
			"cloudProvider": req.CloudProvider,
			"region":        req.Region,
			"keyspace":      req.Keyspace,
			"tier":          req.Tier,
			"capacityUnits": req.CapacityUnits,
		},
	}
}

// NewListDatabasesCommand builds the GET /databases command.
func NewListDatabasesCommand(devopsURL string) httpcore.Command {
	return httpcore.Command{
		Name:       "listDatabases",
		Target:     "devops",
		Method:     "GET",
		URL:        baseURL(devopsURL),
		ForceHTTP1: true,
		Idempotent: true,
		Category:   apierrors.TimeoutCategoryGeneral,
	}
}

// NewGetDatabaseCommand builds the GET /databases/{id} command.
func NewGetDatabaseCommand(devopsURL, databaseID string) httpcore.Command {
	return httpcore.Command{
		Name:       "getDatabase",
		Target:     "devops",
		Method:     "GET",
		URL:        fmt.Sprintf("%s/%s", baseURL(devopsURL), databaseID),
		ForceHTTP1: true,
		Idempotent: true,
		Category:   apierrors.TimeoutCategoryGeneral,
	}
}

// NewTerminateDatabaseCommand builds the POST /databases/{id}/terminate
// long-running command.
func NewTerminateDatabaseCommand(devopsURL, databaseID string) httpcore.Command {
	return httpcore.Command{
		Name:       "terminateDatabase",
		Target:     "devops",
		Method:     "POST",
		URL:        fmt.Sprintf("%s/%s/terminate", baseURL(devopsURL), databaseID),
		ForceHTTP1: true,
		Idempotent: false,
		Category:   apierrors.TimeoutCategoryProvisioning,
	}
}

// CreateDatabaseLegalStates is the status set legal during database
// provisioning, used as PollOptions.LegalStates for createDatabase.
var CreateDatabaseLegalStates = []string{
	httpcore.StatusInitializing,
	httpcore.StatusPending,
	httpcore.StatusAssociating,
	httpcore.StatusActive,
}

// TerminateDatabaseLegalStates is the status set legal while a database is
// being torn down.
var TerminateDatabaseLegalStates = []string{
	httpcore.StatusTerminating,
	httpcore.StatusTerminated,
}
