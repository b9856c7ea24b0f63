// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUIDVersion identifies which RFC 4122 subtype a UUID was constructed as.
type UUIDVersion int

const (
	UUIDVersionV4 UUIDVersion = 4
	UUIDVersionV7 UUIDVersion = 7
)

// UUID is a 128-bit identifier. Equality is case-insensitive on hex form,
// matching the wire codec's `$uuid` tag comparison semantics.
type UUID struct {
	inner   uuid.UUID
	version UUIDVersion
}

// NewUUIDV4 generates a random v4 UUID.
func NewUUIDV4() UUID {
	return UUID{inner: uuid.New(), version: UUIDVersionV4}
}

// NewUUIDV7 generates a time-ordered v7 UUID.
func NewUUIDV7() (UUID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return UUID{}, fmt.Errorf("values: generating uuid v7: %w", err)
	}
	return UUID{inner: u, version: UUIDVersionV7}, nil
}

// ParseUUID parses the `$uuid` wire tag's string form.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("values: invalid uuid %q: %w", s, err)
	}
	return UUID{inner: u, version: UUIDVersion(u.Version())}, nil
}

// Version reports which RFC 4122 subtype this UUID was constructed as.
func (u UUID) Version() UUIDVersion { return u.version }

// String returns the canonical lowercase hex-with-dashes representation.
func (u UUID) String() string { return u.inner.String() }

// Equal compares two UUIDs case-insensitively on hex form.
func (u UUID) Equal(other UUID) bool {
	return strings.EqualFold(u.inner.String(), other.inner.String())
}
