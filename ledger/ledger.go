// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

// Ledger - append only transaction history
//
// ids start at zero and are assigned in append order with no gaps
type Ledger struct {
	log     *logger.L
	store   *storage.Store
	owner   []byte
	records *storage.PoolHandle
	length  *storage.CellHandle
}

// New - ledger stored under the identity of the token service
func New(store *storage.Store, principal account.Holder) (*Ledger, error) {
	records, err := store.Pool(storage.RegionLedger)
	if nil != err {
		return nil, err
	}
	length, err := store.Cell(storage.RegionLedgerCount, idToKey(0))
	if nil != err {
		return nil, err
	}
	return &Ledger{
		log:     logger.New("ledger"),
		store:   store,
		owner:   principal.Bytes(),
		records: records,
		length:  length,
	}, nil
}

// Len - number of records
func (l *Ledger) Len(access storage.Access) uint64 {
	return binary.BigEndian.Uint64(access.Value(l.length, l.owner))
}

// Append - assign the next id and stage the record
func (l *Ledger) Append(trx storage.Transaction, r Record) uint64 {
	id := l.Len(trx)
	r.Id = id
	r.Notified = false

	l.log.Debugf("append: %d  kind: %s", id, r.Kind)
	trx.Insert(l.records, l.owner, idToKey(id), r.Pack())
	trx.Set(l.length, l.owner, idToKey(id+1))
	return id
}

// Get - fetch a record by id
func (l *Ledger) Get(access storage.Access, id uint64) (*Record, bool) {
	packed := access.Get(l.records, l.owner, idToKey(id))
	if nil == packed {
		return nil, false
	}
	r, err := Unpack(packed)
	logger.PanicIfError("ledger unpack", err)
	return r, true
}

// GetRange - committed records with ids in [start, start+limit)
//
// the range is clipped to existing ids, a start beyond the end gives
// an empty result
func (l *Ledger) GetRange(start uint64, limit uint64) []*Record {
	length := l.Len(l.store.Committed())
	if start >= length || 0 == limit {
		return []*Record{}
	}
	if limit > length-start {
		limit = length - start
	}

	elements := l.records.ListFrom(l.owner, idToKey(start), int(limit))
	results := make([]*Record, 0, len(elements))
	for _, e := range elements {
		r, err := Unpack(e.Value)
		logger.PanicIfError("ledger unpack", err)
		results = append(results, r)
	}
	return results
}

// MarkNotified - set the notified flag on an existing record
func (l *Ledger) MarkNotified(trx storage.Transaction, id uint64) error {
	r, ok := l.Get(trx, id)
	if !ok {
		return fault.TransactionNotFound
	}
	if r.Notified {
		return fault.AlreadyNotified
	}
	r.Notified = true
	trx.Insert(l.records, l.owner, idToKey(id), r.Pack())
	return nil
}

// Participant - cursor over committed records involving a holder
func (l *Ledger) Participant(holder account.Holder) *Cursor {
	return &Cursor{
		ledger: l,
		holder: holder,
		access: l.store.Committed(),
	}
}

// Count - number of committed records involving a holder
func (l *Ledger) Count(holder account.Holder) uint64 {
	n := uint64(0)
	c := l.Participant(holder)
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		n += 1
	}
	return n
}

func idToKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
