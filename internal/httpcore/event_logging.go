// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"github.com/datastax/astra-db-go/internal/eventing"
	"github.com/datastax/astra-db-go/internal/logging"
)

// DefaultEventLoggingListener adapts eventing.DefaultFormatter onto the
// global zerolog sink, so a caller that never installs its own formatter or
// listener still sees command/admin-command events rendered through the
// same logging pipeline as the rest of the module (§4.1a).
func DefaultEventLoggingListener(messageFor func(*eventing.Event) string) eventing.Listener {
	return eventing.NewLoggingListener(eventing.DefaultFormatter, messageFor, func(line string) {
		logging.Info().Msg(line)
	})
}
