// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/rpc/certificate"
	"github.com/bitmark-inc/tokend/rpc/listeners"
)

type Add struct{}

type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newServer(t *testing.T) *rpc.Server {
	s := rpc.NewServer()
	err := s.Register(Add{})
	require.Nil(t, err, "register")
	return s
}

func TestServePlain(t *testing.T) {
	var gauge counter.Gauge
	conf := listeners.Configuration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}

	l, err := listeners.NewRPC(&conf, logger.New(fixtures.LogCategory), &gauge, newServer(t), nil)
	require.Nil(t, err, "new")

	err = l.Serve()
	require.Nil(t, err, "serve")
	defer l.Close()

	addresses := l.Addresses()
	require.Equal(t, 1, len(addresses), "address count")

	client, err := jsonrpc.Dial("tcp", addresses[0].String())
	require.Nil(t, err, "dial")
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 2, B: 3}, &reply)
	assert.Nil(t, err, "call")
	assert.Equal(t, 5, reply, "wrong sum")
	assert.Equal(t, uint64(1), gauge.Current(), "connection not counted")
}

func TestServeTLS(t *testing.T) {
	dir, err := ioutil.TempDir("", "listeners")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")
	err = certificate.Generate("test", cer, key, nil)
	require.Nil(t, err, "generate")

	log := logger.New(fixtures.LogCategory)
	tlsConfig, _, err := certificate.Load(log, "test", cer, key)
	require.Nil(t, err, "load")

	var gauge counter.Gauge
	conf := listeners.Configuration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:0"},
	}
	l, err := listeners.NewRPC(&conf, log, &gauge, newServer(t), tlsConfig)
	require.Nil(t, err, "new")

	err = l.Serve()
	require.Nil(t, err, "serve")
	defer l.Close()

	conn, err := tls.Dial("tcp", l.Addresses()[0].String(), &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial")
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 40, B: 2}, &reply)
	assert.Nil(t, err, "call")
	assert.Equal(t, 42, reply, "wrong sum")

	// limit is one: a second client is dropped before its handshake
	conn2, err := tls.DialWithDialer(&net.Dialer{Timeout: 5 * time.Second}, "tcp", l.Addresses()[0].String(), &tls.Config{InsecureSkipVerify: true})
	if nil == err {
		conn2.Close()
	}
	assert.NotNil(t, err, "second connection accepted")
	assert.Equal(t, uint64(1), gauge.Current(), "gauge")
}

func TestNewRPCErrors(t *testing.T) {
	var gauge counter.Gauge
	log := logger.New(fixtures.LogCategory)

	_, err := listeners.NewRPC(&listeners.Configuration{Listen: []string{"127.0.0.1:0"}}, log, &gauge, nil, nil)
	assert.Equal(t, fault.MissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.Configuration{MaximumConnections: 1}, log, &gauge, nil, nil)
	assert.Equal(t, fault.MissingParameters, err, "no listen")

	_, err = listeners.NewRPC(&listeners.Configuration{MaximumConnections: 1, Listen: []string{"localhost"}}, log, &gauge, nil, nil)
	assert.Equal(t, fault.InvalidIpAddress, err, "bad address")
}

func TestParseListenAddresses(t *testing.T) {
	addresses, network, err := listeners.ParseListenAddresses([]string{"*:2130", "[::1]:2131", "127.0.0.1:2132"})
	require.Nil(t, err, "parse")
	assert.Equal(t, []string{"[::]:2130", "[::1]:2131", "127.0.0.1:2132"}, addresses, "addresses")
	assert.Equal(t, []string{"tcp", "tcp6", "tcp4"}, network, "networks")

	for _, bad := range []string{"", "2130", "host.example:2130", "127.0.0.1:", "[::1]"} {
		_, _, err := listeners.ParseListenAddresses([]string{bad})
		assert.Equal(t, fault.InvalidIpAddress, err, "accepted: %q", bad)
	}
}
