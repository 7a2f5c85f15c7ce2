// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/rpc"
	"github.com/bitmark-inc/tokend/rpc/listeners"
	rpctoken "github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/token"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestInitialiseFinalise(t *testing.T) {
	name := fixtures.DatabaseName(t.Name())
	s, err := storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "storage open")
	defer func() {
		s.Close()
		_ = os.RemoveAll(name)
	}()

	tk, err := token.New(s, fixtures.Principal, nil, nil)
	require.Nil(t, err, "token new")
	_, err = tk.Initialise(token.Metadata{
		Name:        "Test Token",
		Symbol:      "TT",
		TotalSupply: amount.New(500),
		Owner:       fixtures.Alice,
	}, auction.DefaultMinResources)
	require.Nil(t, err, "initialise token")

	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "finalise before initialise")

	conf := listeners.Configuration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
	}
	err = rpc.Initialise(&conf, "1.0", tk, nil)
	require.Nil(t, err, "initialise")

	assert.Equal(t, fault.AlreadyInitialised, rpc.Initialise(&conf, "1.0", tk, nil), "second initialise")

	addresses := rpc.Addresses()
	require.Equal(t, 1, len(addresses), "address count")

	client, err := jsonrpc.Dial("tcp", addresses[0].String())
	require.Nil(t, err, "dial")

	var reply rpctoken.InfoReply
	err = client.Call("Token.Info", &rpctoken.InfoArguments{}, &reply)
	assert.Nil(t, err, "Token.Info")
	assert.Equal(t, "TT", reply.Info.Metadata.Symbol, "wrong symbol")
	assert.Equal(t, "500", reply.Info.Metadata.TotalSupply.String(), "wrong supply")
	client.Close()

	assert.Nil(t, rpc.Finalise(), "finalise")
	assert.Nil(t, rpc.Addresses(), "addresses after finalise")
}
