// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/ledger"
	rpcauction "github.com/bitmark-inc/tokend/rpc/auction"
	"github.com/bitmark-inc/tokend/rpc/node"
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

// a token with 1000 held by Alice and fee 10 served over a pipe
func setup(t *testing.T) (*rpc.Client, func()) {
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
	client := jsonrpc.NewClient(clientConn)

	return client, func() {
		client.Close()
		s.Close()
		_ = os.RemoveAll(name)
	}
}

func TestNodeInfo(t *testing.T) {
	client, done := setup(t)
	defer done()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "Node.Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, fixtures.Principal, reply.Principal, "wrong principal")
}

func TestTransferOverRPC(t *testing.T) {
	client, done := setup(t)
	defer done()

	var idReply transfer.IdReply
	err := client.Call("Transfer.Send", &transfer.SendArguments{
		Caller: fixtures.Alice,
		To:     fixtures.Bob,
		Amount: amount.New(100),
	}, &idReply)
	require.Nil(t, err, "Transfer.Send")
	assert.Equal(t, uint64(1), idReply.Id, "wrong id")

	var balanceReply rpctoken.BalanceReply
	err = client.Call("Token.Balance", &rpctoken.BalanceArguments{Holder: fixtures.Alice}, &balanceReply)
	require.Nil(t, err, "Token.Balance")
	assert.Equal(t, "890", balanceReply.Balance.String(), "sender balance")

	err = client.Call("Token.Balance", &rpctoken.BalanceArguments{Holder: fixtures.Bob}, &balanceReply)
	require.Nil(t, err, "Token.Balance")
	assert.Equal(t, "100", balanceReply.Balance.String(), "recipient balance")

	var txReply rpctoken.TransactionReply
	err = client.Call("Token.Transaction", &rpctoken.TransactionArguments{Id: 1}, &txReply)
	require.Nil(t, err, "Token.Transaction")
	assert.Equal(t, ledger.TransferKind, txReply.Transaction.Kind, "wrong kind")
	assert.Equal(t, "10", txReply.Transaction.Fee.String(), "wrong fee")

	var txsReply rpctoken.TransactionsReply
	err = client.Call("Token.Transactions", &rpctoken.TransactionsArguments{Holder: fixtures.Bob, Count: 10}, &txsReply)
	require.Nil(t, err, "Token.Transactions")
	assert.Equal(t, 1, len(txsReply.Transactions), "wrong page")
	assert.Equal(t, uint64(1), txsReply.Total, "wrong total")

	// errors cross the wire as text
	err = client.Call("Transfer.Send", &transfer.SendArguments{
		Caller: fixtures.Bob,
		To:     fixtures.Carol,
		Amount: amount.New(100),
	}, &idReply)
	if assert.NotNil(t, err, "overdraft accepted") {
		assert.Equal(t, fault.InsufficientBalance.Error(), err.Error(), "wrong error")
	}
}

func TestAuctionOverRPC(t *testing.T) {
	client, done := setup(t)
	defer done()

	var bidReply rpcauction.BidReply
	err := client.Call("Auction.Bid", &rpcauction.BidArguments{Bidder: fixtures.Bob, Resources: 2000000}, &bidReply)
	require.Nil(t, err, "Auction.Bid")
	assert.Equal(t, uint64(2000000), bidReply.Resources, "wrong total")

	var infoReply rpcauction.InfoReply
	err = client.Call("Auction.Info", &rpcauction.InfoArguments{}, &infoReply)
	require.Nil(t, err, "Auction.Info")
	assert.Equal(t, 1, len(infoReply.State.Bids), "wrong bid count")

	var recordReply rpcauction.RecordReply
	err = client.Call("Auction.Run", &rpcauction.RunArguments{}, &recordReply)
	if assert.NotNil(t, err, "auction ran early") {
		assert.Equal(t, fault.TooEarly.Error(), err.Error(), "wrong error")
	}
}
