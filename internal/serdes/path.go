// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package serdes

import "strings"

const pathSegmentSeparator = "\x00"

func joinPath(path []string) string { return strings.Join(path, pathSegmentSeparator) }

func splitPath(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, pathSegmentSeparator)
}

// pathMatches reports whether candidate matches pattern, where a pattern
// segment of "*" matches any single candidate segment — including a
// candidate segment that is a numeric array index rendered as a string, per
// the resolved Open Question that forPath(['*']) matches numeric indices.
func pathMatches(pattern, candidate []string) bool {
	if len(pattern) != len(candidate) {
		return false
	}
	for i, seg := range pattern {
		if seg == "*" {
			continue
		}
		if seg != candidate[i] {
			return false
		}
	}
	return true
}
