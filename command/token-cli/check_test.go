// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/account"
)

func TestCheckAccount(t *testing.T) {
	h := account.FromBytes([]byte("alice"))

	got, err := checkAccount("to", h.String())
	require.Nil(t, err, "valid account")
	assert.Equal(t, h, got, "account")

	_, err = checkAccount("to", "")
	assert.Contains(t, err.Error(), ErrRequiredAccount.Error(), "blank account")

	_, err = checkAccount("to", "0OIl")
	assert.NotNil(t, err, "bad base58 accepted")

	got, err = checkOptionalAccount("spender", "")
	require.Nil(t, err, "optional blank")
	assert.True(t, got.IsZero(), "optional blank is zero")
}

func TestCheckAmount(t *testing.T) {
	a, err := checkAmount("amount", "12345678901234567890")
	require.Nil(t, err, "valid amount")
	assert.Equal(t, "12345678901234567890", a.String(), "amount")

	_, err = checkAmount("amount", "")
	assert.Contains(t, err.Error(), ErrRequiredAmount.Error(), "blank amount")

	_, err = checkAmount("amount", "-5")
	assert.NotNil(t, err, "negative amount accepted")

	_, err = checkAmount("amount", "1.5")
	assert.NotNil(t, err, "fraction accepted")
}

func TestPrintJson(t *testing.T) {
	var out bytes.Buffer
	err := printJson(&out, map[string]int{"a": 1})
	require.Nil(t, err, "print")
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String(), "output")
}
