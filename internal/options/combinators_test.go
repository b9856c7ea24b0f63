// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalConcatRightmostWins(t *testing.T) {
	o := Optional[int]{}
	a, b, c := 1, 2, 3
	result := o.Concat([]*int{&a, &b, &c})
	assert.Equal(t, &c, result)
}

func TestOptionalConcatSkipsNil(t *testing.T) {
	o := Optional[int]{}
	a := 1
	result := o.Concat([]*int{&a, nil})
	assert.Equal(t, &a, result)
}

func TestOptionalIdentityLaw(t *testing.T) {
	o := Optional[int]{}
	a := 5
	assert.Equal(t, &a, o.Concat([]*int{o.Empty(), &a}))
	assert.Equal(t, &a, o.Concat([]*int{&a, o.Empty()}))
}

func TestArrayConcatLeftToRight(t *testing.T) {
	a := Array[int]{}
	result := a.Concat([][]int{{1, 2}, {3}, {4, 5}})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, result)
}

func TestArrayIdentityLaw(t *testing.T) {
	a := Array[int]{}
	layer := []int{1, 2, 3}
	assert.Equal(t, layer, a.Concat([][]int{a.Empty(), layer}))
	assert.Equal(t, layer, a.Concat([][]int{layer, a.Empty()}))
}

func TestArrayAssociativity(t *testing.T) {
	a := Array[int]{}
	x, y, z := []int{1}, []int{2}, []int{3}
	left := a.Concat([][]int{a.Concat([][]int{x, y}), z})
	right := a.Concat([][]int{x, a.Concat([][]int{y, z})})
	assert.Equal(t, left, right)
}

func TestPrependingArrayConcatRightToLeft(t *testing.T) {
	p := PrependingArray[int]{}
	result := p.Concat([][]int{{1, 2}, {3}, {4, 5}})
	assert.Equal(t, []int{4, 5, 3, 1, 2}, result)
}

func TestPrependingArrayIdentityLaw(t *testing.T) {
	p := PrependingArray[int]{}
	layer := []int{1, 2, 3}
	assert.Equal(t, layer, p.Concat([][]int{p.Empty(), layer}))
	assert.Equal(t, layer, p.Concat([][]int{layer, p.Empty()}))
}
