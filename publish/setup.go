// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed ledger records to subscribers
//
// records are queued by the token service and sent by a background
// process as two frame messages: topic then JSON record
package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
)

// TransactionTopic - first frame of every record message
const TransactionTopic = "tx"

// default depth of the outgoing queue
const defaultQueueSize = 1000

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
	QueueSize int      `gluamapper:"queue_size" json:"queue_size"`
}

// Sender - the outbound side of a publisher
type Sender interface {
	Send(topic string, data []byte) error
	Close() error
}

// Publisher - queue of records waiting to be broadcast
type Publisher struct {
	log     *logger.L
	sender  Sender
	queue   chan *ledger.Record
	dropped uint64
}

// New - publisher bound to every configured broadcast address
func New(configuration *Configuration) (*Publisher, error) {
	if nil == configuration || 0 == len(configuration.Broadcast) {
		return nil, fault.MissingParameters
	}
	sender, err := newBroadcaster(configuration.Broadcast)
	if nil != err {
		return nil, err
	}
	return NewWithSender(sender, configuration.QueueSize), nil
}

// NewWithSender - publisher over an existing sender
func NewWithSender(sender Sender, queueSize int) *Publisher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Publisher{
		log:    logger.New("publish"),
		sender: sender,
		queue:  make(chan *ledger.Record, queueSize),
	}
}

// Publish - queue a record, never blocks
//
// a full queue drops the record; subscribers can recover it from the
// transaction history
func (p *Publisher) Publish(r *ledger.Record) {
	select {
	case p.queue <- r:
	default:
		p.dropped += 1
		p.log.Warnf("queue full, dropped: %d  total dropped: %d", r.Id, p.dropped)
	}
}

// Run - send queued records until shutdown
//
// the sender is closed on return
func (p *Publisher) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case r := <-p.queue:
			p.send(r)
		}
	}

	err := p.sender.Close()
	if nil != err {
		log.Errorf("close error: %s", err)
	}
	log.Info("stopped")
	log.Flush()
}

func (p *Publisher) send(r *ledger.Record) {
	data, err := json.Marshal(r)
	logger.PanicIfError("publish marshal", err)

	p.log.Debugf("sending: %d  kind: %s", r.Id, r.Kind)
	err = p.sender.Send(TransactionTopic, data)
	if nil != err {
		p.log.Errorf("send: %d  error: %s", r.Id, err)
	}
}
