// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package serdes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultConstructors(t *testing.T) {
	assert.Equal(t, KindContinue, Continue().Kind)
	assert.Equal(t, KindNevermind, Nevermind().Kind)

	replaced := Replace("x")
	assert.Equal(t, KindReplace, replaced.Kind)
	assert.Equal(t, "x", replaced.Value)

	recursed := Recurse(map[string]any{"a": 1})
	assert.Equal(t, KindRecurse, recursed.Kind)

	done := Done(42)
	assert.Equal(t, KindDone, done.Kind)
	assert.Equal(t, 42, done.Value)
}

func TestNodeContextLastSegment(t *testing.T) {
	root := &NodeContext{}
	assert.Equal(t, "", root.LastSegment())

	nested := &NodeContext{Path: []string{"a", "b"}}
	assert.Equal(t, "b", nested.LastSegment())
}
