// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/tokend/fault"
)

// Amount - arbitrary precision non-negative token quantity
//
// values are immutable: every operation returns a new Amount and the
// zero value is a valid zero
type Amount struct {
	value *big.Int
}

// Zero - the zero amount
var Zero = Amount{}

// New - amount from an unsigned integer
func New(n uint64) Amount {
	return Amount{value: new(big.Int).SetUint64(n)}
}

// FromBigInt - amount from a big integer, negatives are rejected
func FromBigInt(n *big.Int) (Amount, error) {
	if nil == n {
		return Zero, nil
	}
	if n.Sign() < 0 {
		return Zero, fault.InvalidAmount
	}
	return Amount{value: new(big.Int).Set(n)}, nil
}

// FromString - parse a base 10 amount
func FromString(s string) (Amount, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fault.InvalidAmount
	}
	return FromBigInt(n)
}

// FromBytes - amount from its big-endian magnitude
func FromBytes(buffer []byte) Amount {
	if 0 == len(buffer) {
		return Zero
	}
	return Amount{value: new(big.Int).SetBytes(buffer)}
}

func (a Amount) int() *big.Int {
	if nil == a.value {
		return new(big.Int)
	}
	return a.value
}

// BigInt - copy of the value
func (a Amount) BigInt() *big.Int {
	return new(big.Int).Set(a.int())
}

// Bytes - big-endian magnitude, empty for zero
func (a Amount) Bytes() []byte {
	return a.int().Bytes()
}

// IsZero - check for zero
func (a Amount) IsZero() bool {
	return 0 == a.int().Sign()
}

// Cmp - compare: -1 if a < b, 0 if equal, +1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.int().Cmp(b.int())
}

// Add - sum of two amounts, cannot overflow
func (a Amount) Add(b Amount) Amount {
	return Amount{value: new(big.Int).Add(a.int(), b.int())}
}

// Sub - difference, fails rather than going negative
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Cmp(b) < 0 {
		return Zero, fault.Underflow
	}
	return Amount{value: new(big.Int).Sub(a.int(), b.int())}, nil
}

// MulDiv - floor(a × numerator / denominator)
func (a Amount) MulDiv(numerator uint64, denominator uint64) (Amount, error) {
	if 0 == denominator {
		return Zero, fault.InvalidAmount
	}
	n := new(big.Int).Mul(a.int(), new(big.Int).SetUint64(numerator))
	n.Quo(n, new(big.Int).SetUint64(denominator))
	return Amount{value: n}, nil
}

// MulRatio - floor(a × ratio) for a ratio in [0, 1]
func (a Amount) MulRatio(ratio decimal.Decimal) (Amount, error) {
	if ratio.IsNegative() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		return Zero, fault.InvalidRatio
	}
	product := decimal.NewFromBigInt(a.int(), 0).Mul(ratio).Floor()
	return Amount{value: product.BigInt()}, nil
}

// Uint64 - value as uint64, fails with fault.Overflow if too large
func (a Amount) Uint64() (uint64, error) {
	if !a.int().IsUint64() {
		return 0, fault.Overflow
	}
	return a.int().Uint64(), nil
}

// String - base 10 text form
func (a Amount) String() string {
	return a.int().String()
}

// MarshalText - base 10 text
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - parse base 10 text
func (a *Amount) UnmarshalText(s []byte) error {
	n, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = n
	return nil
}

// Sum - total of a list of amounts
func Sum(amounts ...Amount) Amount {
	total := new(big.Int)
	for _, a := range amounts {
		total.Add(total, a.int())
	}
	return Amount{value: total}
}
