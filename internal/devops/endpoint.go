// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package devops implements the DevOps API control-plane surface: database
// lifecycle commands (create/list/get/terminate), region discovery, and the
// Astra endpoint-derivation rule the Data API client needs once a database
// is active.
package devops

import "fmt"

// Environment selects the Astra endpoint's domain suffix.
type Environment int

const (
	EnvironmentProd Environment = iota
	EnvironmentDev
	EnvironmentTest
)

func (e Environment) suffix() string {
	switch e {
	case EnvironmentDev:
		return "-dev"
	case EnvironmentTest:
		return "-test"
	default:
		return ""
	}
}

// DeriveEndpoint builds the Data API base URL for an active database, per
// the fixed naming scheme `{id}-{region}.apps{suffix}.astra.datastax.com`.
func DeriveEndpoint(databaseID, region string, env Environment) string {
	return fmt.Sprintf("https://%s-%s.apps%s.astra.datastax.com", databaseID, region, env.suffix())
}
