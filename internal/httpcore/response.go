// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package httpcore

import (
	"github.com/goccy/go-json"
)

// wireErrorDescriptor mirrors one entry of a 2xx response's errors[] array.
type wireErrorDescriptor struct {
	ErrorCode  string         `json:"errorCode"`
	Message    string         `json:"message"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// wireEnvelope is the generic Data-API/DevOps-API JSON response shape: a
// free-form status/data payload plus an optional errors array.
type wireEnvelope struct {
	Status map[string]any        `json:"status,omitempty"`
	Data   map[string]any        `json:"data,omitempty"`
	Errors []wireErrorDescriptor `json:"errors,omitempty"`
}

// Response is the parsed result of one successful (2xx, no errors[]) command.
type Response struct {
	HTTP   *FetchResponse
	Status map[string]any
	Data   map[string]any
}

func parseEnvelope(body []byte) (*wireEnvelope, error) {
	if len(body) == 0 {
		return &wireEnvelope{}, nil
	}
	var env wireEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
