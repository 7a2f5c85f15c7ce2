// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Principal account.Holder
	PublicKey ed25519.PublicKey
	gauge     *counter.Gauge
}

// New - create node RPC handler
//
// publicKey verifies notification signatures, it may be nil
func New(log *logger.L, start time.Time, version string, gauge *counter.Gauge, principal account.Holder, publicKey ed25519.PublicKey) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Principal: principal,
		PublicKey: publicKey,
		gauge:     gauge,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version         string         `json:"version"`
	Uptime          string         `json:"uptime"`
	Principal       account.Holder `json:"principal"`
	NotifyPublicKey string         `json:"notify_public_key"`
	RPCs            Connections    `json:"rpcs"`
}

// Connections - client RPC connection counts
type Connections struct {
	Current uint64 `json:"current"`
	Peak    uint64 `json:"peak"`
	Total   uint64 `json:"total"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Principal = node.Principal
	reply.NotifyPublicKey = hex.EncodeToString(node.PublicKey)
	if nil != node.gauge {
		reply.RPCs = Connections{
			Current: node.gauge.Current(),
			Peak:    node.gauge.Peak(),
			Total:   node.gauge.Total(),
		}
	}
	return nil
}
