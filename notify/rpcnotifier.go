// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"context"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
)

// ReceiverMethod - the JSON-RPC method called on a receiver
const ReceiverMethod = "Receiver.TransactionNotification"

// Reply - returned by a receiver
type Reply struct {
	Accepted bool `json:"accepted"`
}

// RPCNotifier - deliver over JSON-RPC to a fixed address per receiver
type RPCNotifier struct {
	sync.RWMutex

	log       *logger.L
	receivers map[account.Holder]string
	dialer    net.Dialer
}

// NewRPCNotifier - create a notifier with an initial receiver table
func NewRPCNotifier(receivers map[account.Holder]string) *RPCNotifier {
	n := &RPCNotifier{
		log: logger.New("rpc-notifier"),
	}
	n.SetReceivers(receivers)
	return n
}

// SetReceivers - replace the receiver table
func (n *RPCNotifier) SetReceivers(receivers map[account.Holder]string) {
	table := make(map[account.Holder]string, len(receivers))
	for holder, address := range receivers {
		table[holder] = address
	}

	n.Lock()
	n.receivers = table
	n.Unlock()

	n.log.Infof("receivers: %d", len(table))
}

// Notify - make one JSON-RPC call, abandoned when ctx is done
func (n *RPCNotifier) Notify(ctx context.Context, receiver account.Holder, tx *SignedTx) error {
	n.RLock()
	address, ok := n.receivers[receiver]
	n.RUnlock()

	if !ok {
		return fault.ReceiverNotFound
	}

	conn, err := n.dialer.DialContext(ctx, "tcp", address)
	if nil != err {
		return err
	}

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply Reply
	call := client.Go(ReceiverMethod, tx, &reply, make(chan *rpc.Call, 1))

	select {
	case <-ctx.Done():
		n.log.Warnf("notify: %s  address: %s  abandoned: %s", receiver, address, ctx.Err())
		return ctx.Err()
	case done := <-call.Done:
		if nil != done.Error {
			return done.Error
		}
	}

	if !reply.Accepted {
		return fault.NotificationFailed
	}
	return nil
}
