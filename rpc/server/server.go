// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register every RPC handler on one server
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/rpc/auction"
	"github.com/bitmark-inc/tokend/rpc/node"
	rpctoken "github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/rpc/transfer"
	"github.com/bitmark-inc/tokend/token"
)

// Create - server exposing Node, Token, Transfer and Auction
func Create(log *logger.L, version string, gauge *counter.Gauge, t *token.Token, publicKey ed25519.PublicKey) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, gauge, t.Principal(), publicKey))
	_ = server.Register(rpctoken.New(log, t))
	_ = server.Register(transfer.New(log, t))
	_ = server.Register(auction.New(log, t))

	return server
}
