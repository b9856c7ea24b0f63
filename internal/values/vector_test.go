// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorFromFloat32RoundTrip(t *testing.T) {
	v := NewVectorFromFloat32([]float32{0.1, -2.5, 3.0})
	assert.Equal(t, 3, v.Dimension())
	assert.Equal(t, []float32{0.1, -2.5, 3.0}, v.Components())
}

func TestVectorFromFloat64Narrows(t *testing.T) {
	v := NewVectorFromFloat64([]float64{1.5, 2.5})
	assert.Equal(t, 2, v.Dimension())
}

func TestVectorBase64RoundTrip(t *testing.T) {
	original := NewVectorFromFloat32([]float32{1.0, -1.0, 0.5, 100.25})
	encoded := original.AsBase64()

	decoded, err := NewVectorFromBase64(encoded)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}

func TestVectorFromBase64InvalidLength(t *testing.T) {
	_, err := NewVectorFromBase64("AAA=")
	require.Error(t, err)
}

func TestVectorFromBase64InvalidEncoding(t *testing.T) {
	_, err := NewVectorFromBase64("not valid base64!!")
	require.Error(t, err)
}

func TestVectorEqualDiffersOnDimension(t *testing.T) {
	a := NewVectorFromFloat32([]float32{1, 2})
	b := NewVectorFromFloat32([]float32{1, 2, 3})
	assert.False(t, a.Equal(b))
}

func TestVectorComponentsIsDefensiveCopy(t *testing.T) {
	v := NewVectorFromFloat32([]float32{1, 2, 3})
	cp := v.Components()
	cp[0] = 999
	assert.Equal(t, float32(1), v.Components()[0])
}
