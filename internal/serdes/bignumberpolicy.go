// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package serdes

import "github.com/datastax/astra-db-go/internal/values"

// BigNumberPolicy controls how a BigNumber-valued node is rendered on the
// wire; re-exported from internal/values so serdes callers need only import
// this package.
type BigNumberPolicy = values.BigNumberPolicy

const (
	BigNumberPolicyNever           = values.BigNumberPolicyNever
	BigNumberPolicyAlwaysBigInt    = values.BigNumberPolicyAlwaysBigInt
	BigNumberPolicyAlwaysBigNumber = values.BigNumberPolicyAlwaysBigNumber
	BigNumberPolicyOnlyWhenLossy   = values.BigNumberPolicyOnlyWhenLossy
)

// BigNumberPolicyTable resolves a BigNumberPolicy per path, falling back to
// a registry-wide default when no path-specific entry matches. Paths follow
// the same exact-match-with-`*`-wildcard rules as forPath codec lookup.
type BigNumberPolicyTable struct {
	Default  BigNumberPolicy
	ByPath   map[string]BigNumberPolicy
}

// NewBigNumberPolicyTable constructs a table with the given default,
// applied when no per-path override matches.
func NewBigNumberPolicyTable(defaultPolicy BigNumberPolicy) *BigNumberPolicyTable {
	return &BigNumberPolicyTable{Default: defaultPolicy, ByPath: make(map[string]BigNumberPolicy)}
}

// SetForPath registers a per-path override. Path segments may use "*" as a
// single-segment wildcard.
func (t *BigNumberPolicyTable) SetForPath(path []string, policy BigNumberPolicy) {
	t.ByPath[joinPath(path)] = policy
}

// Resolve returns the policy that applies at path.
func (t *BigNumberPolicyTable) Resolve(path []string) BigNumberPolicy {
	for key, policy := range t.ByPath {
		if pathMatches(splitPath(key), path) {
			return policy
		}
	}
	return t.Default
}
