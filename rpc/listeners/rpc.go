// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept client connections and serve JSON-RPC on
// each of them
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/fault"
)

// Configuration - client RPC section of the configuration file
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Listener - a running set of listening sockets
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Close()
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	gauge          *counter.Gauge
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	network        []string
	addresses      []string
	listeners      []net.Listener
	serving        sync.WaitGroup
}

// NewRPC - validate the configuration; nothing is opened until Serve
//
// a nil tlsConfig serves plain TCP
func NewRPC(configuration *Configuration, log *logger.L, gauge *counter.Gauge, server *rpc.Server, tlsConfig *tls.Config) (Listener, error) {
	if 0 == configuration.MaximumConnections {
		log.Errorf("invalid maximum connection limit: %d", configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Error("missing listen addresses")
		return nil, fault.MissingParameters
	}

	addresses, network, err := parseListenAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("listen error: %s", err)
		return nil, err
	}

	return &rpcListener{
		log:            log,
		gauge:          gauge,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		network:        network,
		addresses:      addresses,
	}, nil
}

// Serve - open every address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, address := range r.addresses {
		var l net.Listener
		var err error
		if nil == r.tlsConfig {
			l, err = net.Listen(r.network[i], address)
		} else {
			l, err = tls.Listen(r.network[i], address, r.tlsConfig)
		}
		if nil != err {
			r.log.Errorf("listen: %s  error: %s", address, err)
			r.closeAll()
			return err
		}
		r.log.Infof("serving RPC: %s", l.Addr())
		r.listeners = append(r.listeners, l)

		r.serving.Add(1)
		go r.accept(l)
	}
	return nil
}

// Addresses - the bound addresses, resolving any zero port
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	a := make([]net.Addr, 0, len(r.listeners))
	for _, l := range r.listeners {
		a = append(a, l.Addr())
	}
	return a
}

// Close - stop accepting; open connections finish on their own
func (r *rpcListener) Close() {
	r.Lock()
	r.closeAll()
	r.Unlock()
	r.serving.Wait()
}

func (r *rpcListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(l net.Listener) {
	defer r.serving.Done()

	for {
		conn, err := l.Accept()
		if nil != err {
			r.log.Infof("accept terminated: %s", err)
			return
		}
		if !r.gauge.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit: %d reached, rejecting: %s", r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			r.gauge.Release()
		}()
	}
}

// convert "*:PORT", "[IPv6]:PORT" and "IPv4:PORT" to listen arguments
func parseListenAddresses(listen []string) ([]string, []string, error) {
	addresses := make([]string, len(listen))
	network := make([]string, len(listen))

	for i, address := range listen {
		host, port, err := net.SplitHostPort(strings.TrimSpace(address))
		if nil != err || "" == port {
			return nil, nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			addresses[i] = net.JoinHostPort("::", port)
			network[i] = "tcp"
			continue
		case strings.Contains(host, ":"):
			network[i] = "tcp6"
		default:
			network[i] = "tcp4"
		}

		if nil == net.ParseIP(host) {
			return nil, nil, fault.InvalidIpAddress
		}
		addresses[i] = net.JoinHostPort(host, port)
	}
	return addresses, network, nil
}
