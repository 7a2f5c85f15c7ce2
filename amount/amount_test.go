// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
)

func TestSubUnderflow(t *testing.T) {
	a := amount.New(10)
	b := amount.New(11)

	_, err := a.Sub(b)
	assert.Equal(t, fault.Underflow, err, "wrong error")

	c, err := b.Sub(a)
	require.Nil(t, err, "sub")
	assert.Equal(t, "1", c.String(), "wrong difference")
}

func TestAddBeyondUint64(t *testing.T) {
	a := amount.New(^uint64(0))
	c := a.Add(amount.New(1))

	assert.Equal(t, "18446744073709551616", c.String(), "wrong sum")
	_, err := c.Uint64()
	assert.Equal(t, fault.Overflow, err, "wrong error")
}

func TestImmutable(t *testing.T) {
	a := amount.New(5)
	_ = a.Add(amount.New(7))
	_, _ = a.Sub(amount.New(2))
	assert.Equal(t, "5", a.String(), "value was modified")
}

func TestZeroValue(t *testing.T) {
	var a amount.Amount
	assert.True(t, a.IsZero(), "zero value")
	assert.Equal(t, 0, a.Cmp(amount.Zero), "compare zero")
	assert.Equal(t, 0, len(a.Bytes()), "zero bytes")
	assert.True(t, amount.FromBytes(nil).IsZero(), "from empty bytes")
}

func TestBytes(t *testing.T) {
	a, err := amount.FromString("123456789012345678901234567890")
	require.Nil(t, err, "parse")

	b := amount.FromBytes(a.Bytes())
	assert.Equal(t, 0, a.Cmp(b), "bytes round trip")
}

func TestNegativeRejected(t *testing.T) {
	_, err := amount.FromString("-1")
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")

	_, err = amount.FromBigInt(big.NewInt(-5))
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")

	_, err = amount.FromString("12x")
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")
}

func TestMulDiv(t *testing.T) {
	pool := amount.New(400)

	a, err := pool.MulDiv(1000000, 4000000)
	require.Nil(t, err, "muldiv")
	assert.Equal(t, "100", a.String(), "wrong share")

	b, err := amount.New(10).MulDiv(1, 3)
	require.Nil(t, err, "muldiv")
	assert.Equal(t, "3", b.String(), "share must round down")

	_, err = pool.MulDiv(1, 0)
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")
}

func TestMulRatio(t *testing.T) {
	fee := amount.New(10)

	a, err := fee.MulRatio(decimal.RequireFromString("0.25"))
	require.Nil(t, err, "ratio")
	assert.Equal(t, "2", a.String(), "share must round down")

	b, err := fee.MulRatio(decimal.NewFromInt(1))
	require.Nil(t, err, "ratio")
	assert.Equal(t, "10", b.String(), "full ratio")

	_, err = fee.MulRatio(decimal.RequireFromString("1.5"))
	assert.Equal(t, fault.InvalidRatio, err, "wrong error")
}

func TestJSON(t *testing.T) {
	a, _ := amount.FromString("99999999999999999999")
	buffer, err := json.Marshal(a)
	require.Nil(t, err, "marshal")
	assert.Equal(t, `"99999999999999999999"`, string(buffer), "wrong json")

	var b amount.Amount
	err = json.Unmarshal(buffer, &b)
	require.Nil(t, err, "unmarshal")
	assert.Equal(t, 0, a.Cmp(b), "wrong value")
}

func TestSum(t *testing.T) {
	s := amount.Sum(amount.New(1), amount.New(2), amount.Zero, amount.New(3))
	assert.Equal(t, "6", s.String(), "wrong sum")
}
