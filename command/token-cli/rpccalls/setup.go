// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const dialTimeout = 10 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a tokend
//
// the daemon normally uses a self signed certificate so it is not
// verified; plain TCP is used when useTLS is false
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.DialWithDialer(dialer, "tcp", connect, tlsConfig)
	} else {
		conn, err = dialer.Dial("tcp", connect)
	}
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the tokend connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call one method, echoing request and reply when verbose
func (c *Client) call(method string, args interface{}, reply interface{}) error {
	c.printJson(method+" Request", args)

	err := c.client.Call(method, args, reply)
	if nil != err {
		return err
	}

	c.printJson(method+" Reply", reply)
	return nil
}

func (c *Client) printJson(title string, message interface{}) {
	if !c.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
