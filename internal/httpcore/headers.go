// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"fmt"

	"github.com/datastax/astra-db-go/internal/options"
)

const (
	headerToken          = "Token"
	headerEmbeddingAPIKey = "Embedding-Api-Key"
	headerRerankingAPIKey = "Reranking-Api-Key"
)

// HeaderSet is the resolved set of request headers for one attempt, built
// once per request by ResolveHeaders: each provider, static or dynamic, is
// invoked exactly once even if the underlying attempt is retried, since a
// retried attempt reuses the same resolved set rather than re-invoking
// potentially-async providers.
type HeaderSet map[string]string

// ResolveHeaders runs the token layer and every header provider exactly
// once, merging static headers in first and letting provider output
// override on key collision (a later provider, e.g. a per-call override,
// wins over an earlier one).
func ResolveHeaders(token *options.TokenLayer, providers []options.HeaderProvider, static map[string]string) (HeaderSet, error) {
	out := make(HeaderSet, len(static)+2)
	for k, v := range static {
		out[k] = v
	}

	if token != nil {
		value := token.Static
		if token.Provider != nil {
			resolved, err := token.Provider()
			if err != nil {
				return nil, fmt.Errorf("httpcore: resolving token provider: %w", err)
			}
			value = resolved
		}
		if value != "" {
			out[headerToken] = value
		}
	}

	for _, provider := range providers {
		if provider == nil {
			continue
		}
		headers, err := provider()
		if err != nil {
			return nil, fmt.Errorf("httpcore: resolving header provider: %w", err)
		}
		for k, v := range headers {
			out[k] = v
		}
	}

	return out, nil
}

// EmbeddingAPIKeyProvider wraps a static embedding API key as a HeaderProvider.
func EmbeddingAPIKeyProvider(key string) options.HeaderProvider {
	return func() (map[string]string, error) {
		if key == "" {
			return nil, nil
		}
		return map[string]string{headerEmbeddingAPIKey: key}, nil
	}
}

// RerankingAPIKeyProvider wraps a static reranking API key as a HeaderProvider.
func RerankingAPIKeyProvider(key string) options.HeaderProvider {
	return func() (map[string]string, error) {
		if key == "" {
			return nil, nil
		}
		return map[string]string{headerRerankingAPIKey: key}, nil
	}
}
