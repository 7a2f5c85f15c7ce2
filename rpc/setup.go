// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"sync"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/rpc/certificate"
	"github.com/bitmark-inc/tokend/rpc/listeners"
	"github.com/bitmark-inc/tokend/rpc/server"
	"github.com/bitmark-inc/tokend/token"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.Mutex

	log      *logger.L
	gauge    counter.Gauge
	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start serving client RPC for a token
//
// TLS is used when both certificate and private key are configured,
// otherwise the listener is plain TCP
func Initialise(configuration *listeners.Configuration, version string, t *token.Token, publicKey ed25519.PublicKey) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	var tlsConfig *tls.Config
	if "" != configuration.Certificate && "" != configuration.PrivateKey {
		c, _, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			return err
		}
		tlsConfig = c
	} else {
		log.Warn("no certificate: serving plain TCP")
	}

	l, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.gauge,
		server.Create(log, version, &globalData.gauge, t, publicKey),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = l.Serve()
	if nil != err {
		return err
	}

	globalData.listener = l
	globalData.initialised = true
	return nil
}

// Addresses - where client RPC is listening
func Addresses() []net.Addr {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil
	}
	return globalData.listener.Addresses()
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}
