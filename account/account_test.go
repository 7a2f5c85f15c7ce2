// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
)

func TestBase58RoundTrip(t *testing.T) {
	h, err := account.New([]byte{0x01, 0x02, 0x03, 0xfe})
	require.Nil(t, err, "new holder")

	text := h.String()
	decoded, err := account.FromBase58(text)
	require.Nil(t, err, "decode holder")

	assert.Equal(t, h, decoded, "holder changed")
	assert.True(t, h == decoded, "holders must be comparable")
}

func TestInvalidBase58(t *testing.T) {
	_, err := account.FromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAccount, err, "wrong error")

	_, err = account.FromBase58("")
	assert.Equal(t, fault.CannotDecodeAccount, err, "wrong error")
}

func TestTooLong(t *testing.T) {
	_, err := account.New(make([]byte, account.MaximumLength+1))
	assert.Equal(t, fault.InvalidKeyLength, err, "wrong error")
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		Owner account.Holder `json:"owner"`
	}

	h := account.FromBytes([]byte("alice"))
	buffer, err := json.Marshal(wrapper{Owner: h})
	require.Nil(t, err, "marshal")

	var w wrapper
	err = json.Unmarshal(buffer, &w)
	require.Nil(t, err, "unmarshal")
	assert.Equal(t, h, w.Owner, "wrong holder")
}

func TestZero(t *testing.T) {
	var h account.Holder
	assert.True(t, h.IsZero(), "zero holder")
	assert.Equal(t, "", h.String(), "zero holder text")
}
