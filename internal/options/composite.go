// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package options

import (
	"fmt"
	"time"
)

// TokenLayer is one layer of the bearer-token option: a static token string
// or a provider function resolved lazily by the HTTP execution core.
type TokenLayer struct {
	Static   string
	Provider func() (string, error)
}

var tokenMonoid = Optional[TokenLayer]{}

// ConcatTokens merges token layers, rightmost-non-nil wins: a per-call token
// always overrides a client-level default.
func ConcatTokens(layers []*TokenLayer) *TokenLayer {
	return tokenMonoid.Concat(layers)
}

// HeaderProvider resolves a set of HTTP headers, possibly asynchronously
// (embedding-API-key and reranking-API-key providers are of this shape).
type HeaderProvider func() (map[string]string, error)

var headerProvidersMonoid = Array[HeaderProvider]{}

// ConcatHeaderProviders appends header-provider layers left-to-right; all
// providers run and their headers are merged by the HTTP core, later
// providers overriding earlier ones on key collision.
func ConcatHeaderProviders(layers [][]HeaderProvider) []HeaderProvider {
	return headerProvidersMonoid.Concat(layers)
}

// Timeouts is the per-phase timeout option record: general covers the whole
// operation, request covers a single HTTP round trip.
type Timeouts struct {
	General *time.Duration
	Request *time.Duration
}

func mergeTimeouts(base, override Timeouts) Timeouts {
	result := base
	if override.General != nil {
		result.General = override.General
	}
	if override.Request != nil {
		result.Request = override.Request
	}
	return result
}

var timeoutsMonoid = Object[Timeouts]{
	ZeroValue: Timeouts{},
	MergeFunc: mergeTimeouts,
	ParseFunc: func(input any, fieldName string) (Timeouts, error) {
		v, ok := input.(Timeouts)
		if !ok {
			return Timeouts{}, &ParseError{FieldName: fieldName, Cause: fmt.Errorf("expected Timeouts, got %T", input)}
		}
		return v, nil
	},
}

// ConcatTimeouts merges layered timeout overrides, per-field rightmost wins.
func ConcatTimeouts(layers []Timeouts) Timeouts {
	return timeoutsMonoid.Concat(layers)
}

// LoggingConfig is the per-layer logging-emitter option: which event names to
// attach a listener for, plus whether to use the default formatter.
type LoggingConfig struct {
	Events          []string
	UseDefaultAttach bool
}

var loggingEventsMonoid = PrependingArray[string]{}

// ConcatLoggingConfigs merges logging-config layers' event lists
// right-to-left, so a collection-level attach runs before an inherited
// client-level attach — inner overrides propagate inward to the listener
// invocation order.
func ConcatLoggingConfigs(layers []LoggingConfig) LoggingConfig {
	eventLayers := make([][]string, len(layers))
	useDefault := false
	for i, layer := range layers {
		eventLayers[i] = layer.Events
		if layer.UseDefaultAttach {
			useDefault = true
		}
	}
	return LoggingConfig{
		Events:           loggingEventsMonoid.Concat(eventLayers),
		UseDefaultAttach: useDefault,
	}
}

// EndpointOverride is the per-layer API-endpoint/keyspace override option.
type EndpointOverride struct {
	BaseURL  *string
	Keyspace *string
}

func mergeEndpointOverrides(base, override EndpointOverride) EndpointOverride {
	result := base
	if override.BaseURL != nil {
		result.BaseURL = override.BaseURL
	}
	if override.Keyspace != nil {
		result.Keyspace = override.Keyspace
	}
	return result
}

var endpointOverrideMonoid = Object[EndpointOverride]{
	ZeroValue: EndpointOverride{},
	MergeFunc: mergeEndpointOverrides,
	ParseFunc: func(input any, fieldName string) (EndpointOverride, error) {
		v, ok := input.(EndpointOverride)
		if !ok {
			return EndpointOverride{}, &ParseError{FieldName: fieldName, Cause: fmt.Errorf("expected EndpointOverride, got %T", input)}
		}
		return v, nil
	},
}

// ConcatEndpointOverrides merges layered endpoint/keyspace overrides,
// per-field rightmost wins.
func ConcatEndpointOverrides(layers []EndpointOverride) EndpointOverride {
	return endpointOverrideMonoid.Concat(layers)
}
