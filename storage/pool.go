// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tokend/fault"
)

// PoolHandle - the structure for a pool access
//
// a pool is a keyed map inside a region, split by owner
type PoolHandle struct {
	store  *Store
	region byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Pool - handle for a keyed region
func (s *Store) Pool(region byte) (*PoolHandle, error) {
	if !validRegion(region) {
		return nil, fault.InvalidRegion
	}
	return &PoolHandle{
		store:  s,
		region: region,
	}, nil
}

// Region - the prefix byte of this pool
func (p *PoolHandle) Region() byte {
	return p.region
}

// Get - read a value for a given key
//
// returns nil if the key is absent
func (p *PoolHandle) Get(owner []byte, key []byte) []byte {
	return p.store.get(p.region, owner, key)
}

// Has - check if a key exists
func (p *PoolHandle) Has(owner []byte, key []byte) bool {
	return nil != p.Get(owner, key)
}

// Insert - store a key/value bytes pair to the database
//
// replaces any existing value
func (p *PoolHandle) Insert(owner []byte, key []byte, value []byte) {
	trx := p.store.Begin()
	trx.Insert(p, owner, key, value)
	err := trx.Commit()
	logger.PanicIfError("pool insert", err)
}

// Remove - remove a key from the database
//
// returns the previous value or nil if there was none
func (p *PoolHandle) Remove(owner []byte, key []byte) []byte {
	old := p.Get(owner, key)
	if nil == old {
		return nil
	}
	trx := p.store.Begin()
	trx.Remove(p, owner, key)
	err := trx.Commit()
	logger.PanicIfError("pool remove", err)
	return old
}

// List - fetch a slice of elements in ascending key order
//
// skips the first offset elements and returns at most limit
// elements, a non-positive limit means no limit
func (p *PoolHandle) List(owner []byte, offset int, limit int) []Element {
	results := make([]Element, 0, 16)
	if offset < 0 {
		offset = 0
	}
	p.iterate(owner, nil, func(key []byte, value []byte) bool {
		if offset > 0 {
			offset -= 1
			return true
		}
		results = append(results, Element{Key: key, Value: value})
		return limit <= 0 || len(results) < limit
	})
	return results
}

// ListFrom - fetch at most limit elements with keys at or after start
//
// seeks directly to start so paging costs nothing for the skipped
// keys, a non-positive limit means no limit
func (p *PoolHandle) ListFrom(owner []byte, start []byte, limit int) []Element {
	results := make([]Element, 0, 16)
	p.iterateFrom(owner, nil, start, func(key []byte, value []byte) bool {
		results = append(results, Element{Key: key, Value: value})
		return limit <= 0 || len(results) < limit
	})
	return results
}

// Map - visit every element whose key begins with prefix
//
// iteration stops early when f returns false
func (p *PoolHandle) Map(owner []byte, prefix []byte, f func(key []byte, value []byte) bool) {
	p.iterate(owner, prefix, f)
}

// Count - number of keys stored for an owner
func (p *PoolHandle) Count(owner []byte) int {
	n := 0
	p.iterate(owner, nil, func(key []byte, value []byte) bool {
		n += 1
		return true
	})
	return n
}

func (p *PoolHandle) iterate(owner []byte, prefix []byte, f func(key []byte, value []byte) bool) {
	p.iterateFrom(owner, prefix, nil, f)
}

// keys and values passed to f are copies; a non-empty start moves the
// lower bound of the range up to that key
func (p *PoolHandle) iterateFrom(owner []byte, prefix []byte, start []byte, f func(key []byte, value []byte) bool) {
	s := p.store
	s.RLock()
	defer s.RUnlock()

	if nil == s.db || !s.materialised(p.region, owner) {
		return
	}

	base := regionKey(p.region, owner)
	keyStart := len(base)

	var r *ldb_util.Range
	if 0 == len(prefix) {
		r = ldb_util.BytesPrefix(base)
	} else {
		r = ldb_util.BytesPrefix(append(base, prefix...))
	}
	if 0 != len(start) {
		lower := make([]byte, 0, len(base)+len(start))
		lower = append(append(lower, base...), start...)
		if bytes.Compare(lower, r.Start) > 0 {
			r.Start = lower
		}
	}

	iter := s.db.NewIterator(r, nil)
	defer iter.Release()

	for iter.Next() {
		dataKey := iter.Key()
		key := make([]byte, len(dataKey)-keyStart)
		copy(key, dataKey[keyStart:])

		dataValue := iter.Value()
		value := make([]byte, len(dataValue))
		copy(value, dataValue)

		if !f(key, value) {
			break
		}
	}
	err := iter.Error()
	if leveldb.ErrNotFound != err {
		logger.PanicIfError("pool iterate", err)
	}
}
