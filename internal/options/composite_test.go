// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConcatTokensRightmostWins(t *testing.T) {
	clientToken := &TokenLayer{Static: "client-token"}
	perCallToken := &TokenLayer{Static: "per-call-token"}
	result := ConcatTokens([]*TokenLayer{clientToken, perCallToken})
	assert.Equal(t, "per-call-token", result.Static)
}

func TestConcatHeaderProvidersAppendsInOrder(t *testing.T) {
	p1 := func() (map[string]string, error) { return map[string]string{"a": "1"}, nil }
	p2 := func() (map[string]string, error) { return map[string]string{"b": "2"}, nil }
	result := ConcatHeaderProviders([][]HeaderProvider{{p1}, {p2}})
	assert.Len(t, result, 2)
}

func TestConcatTimeoutsPerFieldRightmostWins(t *testing.T) {
	general := 30 * time.Second
	request := 5 * time.Second
	overrideRequest := 10 * time.Second

	base := Timeouts{General: &general, Request: &request}
	override := Timeouts{Request: &overrideRequest}

	result := ConcatTimeouts([]Timeouts{base, override})
	assert.Equal(t, general, *result.General)
	assert.Equal(t, overrideRequest, *result.Request)
}

func TestConcatTimeoutsIdentity(t *testing.T) {
	general := 30 * time.Second
	base := Timeouts{General: &general}
	result := ConcatTimeouts([]Timeouts{timeoutsMonoid.Empty(), base})
	assert.Equal(t, general, *result.General)
}

func TestConcatLoggingConfigsRightToLeft(t *testing.T) {
	client := LoggingConfig{Events: []string{"commandStarted"}}
	collection := LoggingConfig{Events: []string{"commandSucceeded"}}
	result := ConcatLoggingConfigs([]LoggingConfig{client, collection})
	assert.Equal(t, []string{"commandSucceeded", "commandStarted"}, result.Events)
}

func TestConcatLoggingConfigsUseDefaultPropagates(t *testing.T) {
	client := LoggingConfig{UseDefaultAttach: true}
	collection := LoggingConfig{}
	result := ConcatLoggingConfigs([]LoggingConfig{client, collection})
	assert.True(t, result.UseDefaultAttach)
}

func TestConcatEndpointOverridesPerFieldRightmostWins(t *testing.T) {
	clientURL := "https://client.example.com"
	perCallKeyspace := "my_keyspace"

	base := EndpointOverride{BaseURL: &clientURL}
	override := EndpointOverride{Keyspace: &perCallKeyspace}

	result := ConcatEndpointOverrides([]EndpointOverride{base, override})
	assert.Equal(t, clientURL, *result.BaseURL)
	assert.Equal(t, perCallKeyspace, *result.Keyspace)
}

func TestObjectAssociativity(t *testing.T) {
	a := Timeouts{General: durPtr(1 * time.Second)}
	b := Timeouts{Request: durPtr(2 * time.Second)}
	c := Timeouts{General: durPtr(3 * time.Second)}

	left := timeoutsMonoid.Concat([]Timeouts{timeoutsMonoid.Concat([]Timeouts{a, b}), c})
	right := timeoutsMonoid.Concat([]Timeouts{a, timeoutsMonoid.Concat([]Timeouts{b, c})})
	assert.Equal(t, *left.General, *right.General)
	assert.Equal(t, left.Request, right.Request)
}

func durPtr(d time.Duration) *time.Duration { return &d }
