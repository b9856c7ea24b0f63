// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

// ObjectID is a 12-byte timestamped identifier: 4-byte seconds-since-epoch,
// 5-byte random machine/process value, 3-byte incrementing counter.
type ObjectID [12]byte

var objectIDCounter uint32

func init() {
	var seed [4]byte
	_, _ = rand.Read(seed[:])
	objectIDCounter = binary.BigEndian.Uint32(seed[:])
}

// NewObjectID constructs a fresh ObjectID stamped with the current time.
func NewObjectID() ObjectID {
	var id ObjectID
	binary.BigEndian.PutUint32(id[0:4], uint32(time.Now().Unix()))
	_, _ = rand.Read(id[4:9])
	count := atomic.AddUint32(&objectIDCounter, 1)
	id[9] = byte(count >> 16)
	id[10] = byte(count >> 8)
	id[11] = byte(count)
	return id
}

// ParseObjectID decodes the 24-character hex wire form.
func ParseObjectID(s string) (ObjectID, error) {
	var id ObjectID
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("values: invalid objectId %q: %w", s, err)
	}
	if len(raw) != 12 {
		return id, fmt.Errorf("values: objectId must decode to 12 bytes, got %d", len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// String returns the 24-character lowercase hex representation.
func (id ObjectID) String() string { return hex.EncodeToString(id[:]) }

// Timestamp extracts the embedded creation time.
func (id ObjectID) Timestamp() time.Time {
	seconds := binary.BigEndian.Uint32(id[0:4])
	return time.Unix(int64(seconds), 0).UTC()
}

// Equal compares two ObjectIDs byte-for-byte.
func (id ObjectID) Equal(other ObjectID) bool { return id == other }
