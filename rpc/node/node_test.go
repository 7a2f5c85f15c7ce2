// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"encoding/hex"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/rpc/node"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestNodeInfo(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(nil)
	require.Nil(t, err, "generate key")

	var gauge counter.Gauge
	gauge.Acquire(0)
	gauge.Acquire(0)
	gauge.Release()

	start := time.Now().Add(-time.Minute)
	n := node.New(logger.New(fixtures.LogCategory), start, "1.2.3", &gauge, fixtures.Principal, publicKey)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.Equal(t, fixtures.Principal, reply.Principal, "wrong principal")
	assert.Equal(t, hex.EncodeToString(publicKey), reply.NotifyPublicKey, "wrong public key")
	assert.Equal(t, node.Connections{Current: 1, Peak: 2, Total: 2}, reply.RPCs, "wrong connections")

	uptime, err := time.ParseDuration(reply.Uptime)
	require.Nil(t, err, "uptime format")
	assert.True(t, uptime >= time.Minute, "uptime too short: %s", uptime)
}

func TestNodeInfoWithoutKey(t *testing.T) {
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "0", nil, fixtures.Principal, nil)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "", reply.NotifyPublicKey, "public key")
	assert.Equal(t, node.Connections{}, reply.RPCs, "connections")
}
