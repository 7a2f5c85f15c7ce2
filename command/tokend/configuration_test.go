// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/notify"
)

var (
	principal = account.FromBytes([]byte("token-service"))
	owner     = account.FromBytes([]byte("owner"))
	receiver  = account.FromBytes([]byte("receiver"))
)

const configTemplate = `
local M = {}
M.data_directory = "."
M.token = {
    principal = "%s",
    name = "Test Token",
    symbol = "TT",
    decimals = 6,
    total_supply = "1000000",
    owner = "%s",
    fee = "10",
}
M.notification = {
    timeout = "%s",
    receivers = {
        ["%s"] = "127.0.0.1:2150",
    },
}
M.publishing = {
    broadcast = { "127.0.0.1:2160" },
}
return M
`

func writeConfiguration(t *testing.T, timeout string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "tokend.conf")
	text := fmt.Sprintf(configTemplate, principal, owner, timeout, receiver)
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, "5s")
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "read configuration")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultTokenDatabase), c.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, defaultNotifyPrivateKeyFile), c.Notification.PrivateKey, "private key")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), c.ClientRPC.Certificate, "certificate")
	assert.Equal(t, "", c.PidFile, "pid file")
	assert.Equal(t, []string{"127.0.0.1:2160"}, c.Publishing.Broadcast, "broadcast")
	assert.Equal(t, auction.DefaultMinResources, c.Token.MinResources, "min resources")

	timeout, err := c.Notification.timeout()
	require.Nil(t, err, "timeout")
	assert.Equal(t, 5*time.Second, timeout, "timeout")

	receivers, err := c.Notification.receivers()
	require.Nil(t, err, "receivers")
	assert.Equal(t, "127.0.0.1:2150", receivers[receiver], "receiver address")

	p, err := c.Token.principal()
	require.Nil(t, err, "principal")
	assert.Equal(t, principal, p, "principal")

	m, err := c.Token.metadata()
	require.Nil(t, err, "metadata")
	assert.Equal(t, "TT", m.Symbol, "symbol")
	assert.Equal(t, uint8(6), m.Decimals, "decimals")
	assert.Equal(t, 0, amount.New(1000000).Cmp(m.TotalSupply), "total supply")
	assert.Equal(t, 0, amount.New(10).Cmp(m.Fee), "fee")
	assert.Equal(t, owner, m.Owner, "owner")
	assert.True(t, m.FeeTo.IsZero(), "fee_to unset")
}

func TestGetConfigurationBadTimeout(t *testing.T) {
	fileName := writeConfiguration(t, "soon")

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "bad timeout accepted")
}

func TestGetConfigurationLongTimeout(t *testing.T) {
	fileName := writeConfiguration(t, "10m")

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "timeout longer than the in-flight expiry accepted")

	fileName = writeConfiguration(t, notify.MaximumCallTimeout.String())
	_, err = getConfiguration(fileName)
	assert.Nil(t, err, "maximum timeout refused")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.NotNil(t, err, "missing file accepted")
}

func TestMetadataBadSupply(t *testing.T) {
	tt := TokenType{
		TotalSupply: "-1",
		Owner:       owner.String(),
	}
	_, err := tt.metadata()
	assert.NotNil(t, err, "negative supply accepted")
}

func TestGeneratedConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, configurationFilename)

	err := makeConfigurationFile(fileName, []string{owner.String(), "GEN", "5000"})
	require.Nil(t, err, "generate")

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "read generated configuration")
	assert.Equal(t, []string{defaultListen}, c.ClientRPC.Listen, "listen")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "connections")

	m, err := c.Token.metadata()
	require.Nil(t, err, "metadata")
	assert.Equal(t, "GEN", m.Symbol, "symbol")
	assert.Equal(t, owner, m.Owner, "owner")
	assert.Equal(t, 0, amount.New(5000).Cmp(m.TotalSupply), "supply")

	_, err = c.Token.principal()
	assert.Nil(t, err, "principal")

	err = makeConfigurationFile(fileName, []string{owner.String()})
	assert.NotNil(t, err, "overwrite allowed")
}
