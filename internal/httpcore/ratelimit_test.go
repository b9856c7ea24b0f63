// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"context"
	"testing"

	"github.com/datastax/astra-db-go/internal/eventing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilLimiterDoesNotBlock(t *testing.T) {
	err := awaitRateLimit(context.Background(), nil)
	require.NoError(t, err)
}

func TestDevOpsLimiterAppliesOnlyToDevOpsTarget(t *testing.T) {
	transport := &fakeTransport{script: []scriptedStep{
		{resp: jsonResponse(200, `{"status":{"ok":1}}`)},
		{resp: jsonResponse(200, `{"status":{"ok":1}}`)},
	}}
	limiter := NewDevOpsLimiter(1000, 1)
	core := NewCore(transport, nil, eventing.NewRootEmitter()).WithDevOpsLimiter(limiter)

	dataCmd := Command{Name: "find", Target: "data", Method: "POST", URL: "https://x/find"}
	_, err := core.Execute(context.Background(), dataCmd, newTestTimeouts(), NewDataAPIRetryPolicy(false), nil)
	require.NoError(t, err)

	devopsCmd := Command{Name: "listDatabases", Target: "devops", Method: "GET", URL: "https://x/v2/databases"}
	_, err = core.Execute(context.Background(), devopsCmd, newTestTimeouts(), NewDevOpsRetryPolicy(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, transport.calls)
}
