// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"bytes"
	"testing"

	"github.com/datastax/astra-db-go/internal/eventing"
	"github.com/datastax/astra-db-go/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestDefaultEventLoggingListenerRendersThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	prior := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.SetLogger(prior)

	emitter := eventing.NewRootEmitter()
	emitter.On("commandSucceeded", DefaultEventLoggingListener(func(e *eventing.Event) string {
		return "command finished"
	}))

	emitter.Emit(eventing.NewEvent("commandSucceeded", "req-1", nil))

	assert.Contains(t, buf.String(), "command finished")
}
