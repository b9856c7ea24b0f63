// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// BigNumberPolicy controls how the SerDes pipeline coerces a BigNumber once
// it reaches the wire, per §4.2's big-number policy.
type BigNumberPolicy string

const (
	BigNumberPolicyNever           BigNumberPolicy = "never"
	BigNumberPolicyAlwaysBigInt    BigNumberPolicy = "always-bigint"
	BigNumberPolicyAlwaysBigNumber BigNumberPolicy = "always-bignumber"
	BigNumberPolicyOnlyWhenLossy   BigNumberPolicy = "only-when-lossy"
)

// BigNumber is an arbitrary-precision decimal, preserved end-to-end when the
// SerDes pipeline's big-number policy calls for it; otherwise coerced to a
// float64 or big.Int by that same policy.
type BigNumber struct {
	dec decimal.Decimal
}

// NewBigNumberFromString parses a decimal literal exactly, without any
// float64 round-trip.
func NewBigNumberFromString(s string) (BigNumber, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return BigNumber{}, fmt.Errorf("values: invalid big number %q: %w", s, err)
	}
	return BigNumber{dec: d}, nil
}

// NewBigNumberFromFloat64 constructs a BigNumber from a float64, accepting
// whatever precision loss that representation already carries.
func NewBigNumberFromFloat64(f float64) BigNumber {
	return BigNumber{dec: decimal.NewFromFloat(f)}
}

// NewBigNumberFromBigInt constructs a BigNumber from an arbitrary-precision
// integer with no fractional part.
func NewBigNumberFromBigInt(i *big.Int) BigNumber {
	return BigNumber{dec: decimal.NewFromBigInt(i, 0)}
}

// String returns the exact decimal literal.
func (b BigNumber) String() string { return b.dec.String() }

// IsLossy reports whether converting this value to a float64 and back would
// change it — the trigger condition for BigNumberPolicyOnlyWhenLossy.
func (b BigNumber) IsLossy() bool {
	f, _ := b.dec.Float64()
	roundTripped := decimal.NewFromFloat(f)
	return !b.dec.Equal(roundTripped)
}

// AsFloat64 coerces to a float64, potentially losing precision.
func (b BigNumber) AsFloat64() float64 {
	f, _ := b.dec.Float64()
	return f
}

// AsBigInt coerces to an arbitrary-precision integer, truncating any
// fractional component.
func (b BigNumber) AsBigInt() *big.Int {
	return b.dec.Truncate(0).BigInt()
}

// Equal compares two BigNumbers by exact decimal value.
func (b BigNumber) Equal(other BigNumber) bool { return b.dec.Equal(other.dec) }

// ResolveWireForm applies a BigNumberPolicy to decide what the SerDes
// pipeline should actually place on the wire for this value.
func (b BigNumber) ResolveWireForm(policy BigNumberPolicy) any {
	switch policy {
	case BigNumberPolicyAlwaysBigInt:
		return b.AsBigInt()
	case BigNumberPolicyAlwaysBigNumber:
		return b
	case BigNumberPolicyOnlyWhenLossy:
		if b.IsLossy() {
			return b
		}
		return b.AsFloat64()
	case BigNumberPolicyNever:
		fallthrough
	default:
		return b.AsFloat64()
	}
}
