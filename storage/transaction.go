// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/tokend/fault"
)

// Access - read only view of the store
type Access interface {
	Get(*PoolHandle, []byte, []byte) []byte
	Value(*CellHandle, []byte) []byte
}

// Transaction - stages writes and applies them as one synced batch
//
// reads through a transaction see its own staged writes
type Transaction interface {
	Access
	Insert(*PoolHandle, []byte, []byte, []byte)
	Remove(*PoolHandle, []byte, []byte)
	Set(*CellHandle, []byte, []byte)
	Commit() error
	Abort()
}

// reads against the committed state
type committed struct {
	store *Store
}

// Committed - access to committed data only
func (s *Store) Committed() Access {
	return committed{store: s}
}

func (c committed) Get(p *PoolHandle, owner []byte, key []byte) []byte {
	return p.Get(owner, key)
}

func (c committed) Value(cell *CellHandle, owner []byte) []byte {
	return cell.Get(owner)
}

type transactionImpl struct {
	sync.Mutex

	store    *Store
	batch    *leveldb.Batch
	staged   *overlay
	regions  map[string]struct{}
	finished bool
}

// Begin - start a new transaction
func (s *Store) Begin() Transaction {
	return &transactionImpl{
		store:   s,
		batch:   new(leveldb.Batch),
		staged:  newOverlay(),
		regions: make(map[string]struct{}),
	}
}

func (t *transactionImpl) Get(p *PoolHandle, owner []byte, key []byte) []byte {
	t.Lock()
	defer t.Unlock()

	k := dataKey(p.region, owner, key)
	if value, staged := t.staged.lookup(k); staged {
		return value
	}
	return p.Get(owner, key)
}

func (t *transactionImpl) Value(c *CellHandle, owner []byte) []byte {
	t.Lock()
	defer t.Unlock()

	k := regionKey(c.region, owner)
	if value, staged := t.staged.lookup(k); staged {
		if nil == value {
			return c.fallback()
		}
		return value
	}
	return c.Get(owner)
}

func (t *transactionImpl) Insert(p *PoolHandle, owner []byte, key []byte, value []byte) {
	t.put(p.region, owner, dataKey(p.region, owner, key), value)
}

func (t *transactionImpl) Remove(p *PoolHandle, owner []byte, key []byte) {
	t.Lock()
	defer t.Unlock()

	t.checkActive()
	k := dataKey(p.region, owner, key)
	t.batch.Delete(k)
	t.staged.delete(k)
}

func (t *transactionImpl) Set(c *CellHandle, owner []byte, value []byte) {
	t.put(c.region, owner, regionKey(c.region, owner), value)
}

func (t *transactionImpl) put(region byte, owner []byte, k []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	t.checkActive()

	stored := make([]byte, len(value))
	copy(stored, value)

	t.materialise(region, owner)
	t.batch.Put(k, stored)
	t.staged.put(k, stored)
}

// stage a registry record the first time an owner writes to a region
func (t *transactionImpl) materialise(region byte, owner []byte) {
	r := string(regionKey(region, owner))
	if _, ok := t.regions[r]; ok {
		return
	}

	t.store.RLock()
	known := t.store.materialised(region, owner)
	t.store.RUnlock()

	if !known {
		t.batch.Put(registryKey(region, owner), registryValue())
	}
	t.regions[r] = struct{}{}
}

// Commit - write all staged data in one synced batch
func (t *transactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		return fault.TransactionInUse
	}
	t.finished = true

	if t.staged.size() > 0 {
		regions := make([]string, 0, len(t.regions))
		for r := range t.regions {
			regions = append(regions, r)
		}
		t.store.write(t.batch, regions)
	}
	t.release()
	return nil
}

// Abort - discard all staged data
func (t *transactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	t.finished = true
	t.release()
}

func (t *transactionImpl) release() {
	t.batch.Reset()
	t.staged.reset()
	t.regions = make(map[string]struct{})
}

func (t *transactionImpl) checkActive() {
	if t.finished {
		panic(fault.TransactionInUse)
	}
}
