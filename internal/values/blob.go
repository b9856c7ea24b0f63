// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// Blob is an opaque byte sequence, the wire form `{$binary: base64}`.
type Blob struct {
	raw []byte
}

// NewBlobFromBytes constructs a Blob from a raw byte slice, copying it.
func NewBlobFromBytes(raw []byte) Blob {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Blob{raw: cp}
}

// NewBlobFromBase64 decodes the `{$binary: base64}` wire form.
func NewBlobFromBase64(encoded string) (Blob, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Blob{}, fmt.Errorf("values: invalid blob base64: %w", err)
	}
	return Blob{raw: raw}, nil
}

// AsByteArray returns a defensive copy of the blob's bytes.
func (b Blob) AsByteArray() []byte {
	cp := make([]byte, len(b.raw))
	copy(cp, b.raw)
	return cp
}

// AsBase64 encodes the blob's bytes as base64, the Data API's wire form.
func (b Blob) AsBase64() string {
	return base64.StdEncoding.EncodeToString(b.raw)
}

// Equal compares two blobs by byte content.
func (b Blob) Equal(other Blob) bool {
	return bytes.Equal(b.raw, other.raw)
}

// Len returns the number of bytes in the blob.
func (b Blob) Len() int { return len(b.raw) }
