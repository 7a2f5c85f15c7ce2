// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/balance"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/notify"
	"github.com/bitmark-inc/tokend/storage"
)

// MaximumQueryLength - largest page of records returned by a query
const MaximumQueryLength = 1000

// Publisher - receives every record after it is committed
type Publisher interface {
	Publish(*ledger.Record)
}

// Token - the complete state of one token service
//
// every exported method runs to completion under the mutex, except
// Notify which releases it for the duration of the outbound call
type Token struct {
	sync.Mutex

	log       *logger.L
	store     *storage.Store
	principal account.Holder
	stats     *storage.CellHandle
	balances  *balance.Balances
	ledger    *ledger.Ledger
	auction   *auction.Engine
	notifier  *notify.Protocol
	publisher Publisher
	now       func() time.Time
}

// New - token service over an open store
//
// principal is the identity of the service itself: all of its data is
// kept under this identity and it holds the auction fee pool.
// notifier and publisher may be nil
func New(store *storage.Store, principal account.Holder, notifier *notify.Protocol, publisher Publisher) (*Token, error) {
	if nil == store {
		return nil, fault.DatabaseIsNotSet
	}

	cell, err := store.Cell(storage.RegionMetadata, nil)
	if nil != err {
		return nil, err
	}
	balances, err := balance.New(store, principal)
	if nil != err {
		return nil, err
	}
	l, err := ledger.New(store, principal)
	if nil != err {
		return nil, err
	}
	engine, err := auction.New(store, principal)
	if nil != err {
		return nil, err
	}

	return &Token{
		log:       logger.New("token"),
		store:     store,
		principal: principal,
		stats:     cell,
		balances:  balances,
		ledger:    l,
		auction:   engine,
		notifier:  notifier,
		publisher: publisher,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}, nil
}

// Initialise - mint the total supply to the owner
//
// appends the genesis Mint record and starts the auction with the
// default period
func (t *Token) Initialise(metadata Metadata, minResources uint64) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	if nil != t.stats.Get(t.principal.Bytes()) {
		return 0, fault.AlreadyInitialised
	}
	if metadata.Owner.IsZero() {
		return 0, fault.MissingParameters
	}

	now := t.now()
	var id uint64
	err := t.execute(func(trx storage.Transaction) error {
		s := &stats{
			Metadata:   metadata,
			deployTime: now,
		}
		trx.Set(t.stats, t.principal.Bytes(), s.pack())

		t.balances.Credit(trx, metadata.Owner, metadata.TotalSupply)
		id = t.ledger.Append(trx, ledger.Record{
			Kind:      ledger.MintKind,
			Caller:    metadata.Owner,
			From:      metadata.Owner,
			To:        metadata.Owner,
			Amount:    metadata.TotalSupply,
			Timestamp: now,
		})
		t.auction.Initialise(trx, minResources)
		return nil
	})
	if nil != err {
		return 0, err
	}

	t.log.Infof("initialised: %q  symbol: %q  supply: %s  owner: %s",
		metadata.Name, metadata.Symbol, metadata.TotalSupply, metadata.Owner)
	return id, nil
}

// Principal - identity of the service
func (t *Token) Principal() account.Holder {
	return t.principal
}

// run f in a storage transaction, commit on success and publish the
// records it appended
//
// caller must hold the lock
func (t *Token) execute(f func(trx storage.Transaction) error) error {
	trx := t.store.Begin()
	first := t.ledger.Len(trx)

	err := f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	last := t.ledger.Len(trx)
	err = trx.Commit()
	if nil != err {
		return err
	}

	if nil != t.publisher {
		committed := t.store.Committed()
		for id := first; id < last; id += 1 {
			if r, ok := t.ledger.Get(committed, id); ok {
				t.publisher.Publish(r)
			}
		}
	}
	return nil
}

// current settings, fails if Initialise was never run
func (t *Token) settings(access storage.Access) (*stats, error) {
	packed := access.Value(t.stats, t.principal.Bytes())
	if nil == packed {
		return nil, fault.NotInitialised
	}
	s, err := unpackStats(packed)
	logger.PanicIfError("token stats unpack", err)
	return s, nil
}

// settings for an owner only operation
func (t *Token) ownerSettings(access storage.Access, caller account.Holder) (*stats, error) {
	s, err := t.settings(access)
	if nil != err {
		return nil, err
	}
	if caller != s.Owner {
		t.log.Warnf("unauthorised: caller: %s  owner: %s", caller, s.Owner)
		return nil, fault.Unauthorised
	}
	return s, nil
}
