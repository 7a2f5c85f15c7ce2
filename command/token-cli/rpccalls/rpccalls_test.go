// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/rpc/server"
	rpctoken "github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/rpc/transfer"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/token"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T, verbose *bytes.Buffer) (*Client, func()) {
	name := fixtures.DatabaseName(t.Name())
	_ = os.RemoveAll(name)

	s, err := storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "storage open")

	tk, err := token.New(s, fixtures.Principal, nil, nil)
	require.Nil(t, err, "token new")

	_, err = tk.Initialise(token.Metadata{
		Name:        "Test Token",
		Symbol:      "TT",
		TotalSupply: amount.New(1000),
		Owner:       fixtures.Alice,
		Fee:         amount.New(10),
		FeeTo:       fixtures.Collector,
	}, auction.DefaultMinResources)
	require.Nil(t, err, "initialise")

	var gauge counter.Gauge
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", &gauge, tk, nil)

	serverConn, clientConn := net.Pipe()
	go r.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	c := newClient(clientConn, nil != verbose, verbose)
	return c, func() {
		c.Close()
		s.Close()
		_ = os.RemoveAll(name)
	}
}

func TestSendAndBalance(t *testing.T) {
	c, done := setup(t, nil)
	defer done()

	reply, err := c.Send(&transfer.SendArguments{
		Caller: fixtures.Alice,
		To:     fixtures.Bob,
		Amount: amount.New(100),
	})
	require.Nil(t, err, "send")
	assert.Equal(t, uint64(1), reply.Id, "id")

	balance, err := c.Balance(&rpctoken.BalanceArguments{Holder: fixtures.Bob})
	require.Nil(t, err, "balance")
	assert.Equal(t, "100", balance.Balance.String(), "bob balance")

	history, err := c.Transactions(&rpctoken.TransactionsArguments{Count: 10})
	require.Nil(t, err, "transactions")
	assert.Equal(t, 2, len(history.Transactions), "records")
}

func TestVerboseEchoes(t *testing.T) {
	var out bytes.Buffer
	c, done := setup(t, &out)
	defer done()

	info, err := c.TokenInfo()
	require.Nil(t, err, "info")
	assert.Equal(t, "TT", info.Info.Metadata.Symbol, "symbol")

	assert.Contains(t, out.String(), "Token.Info Request", "request echo")
	assert.Contains(t, out.String(), "Token.Info Reply", "reply echo")
}

func TestServerError(t *testing.T) {
	c, done := setup(t, nil)
	defer done()

	_, err := c.Send(&transfer.SendArguments{
		Caller: fixtures.Bob,
		To:     fixtures.Alice,
		Amount: amount.New(100),
	})
	assert.NotNil(t, err, "overdraw accepted")
}
