// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// the writes a transaction has staged, keyed by full database key
type overlay struct {
	staged *cache.Cache
}

type stagedValue struct {
	value   []byte
	deleted bool
}

// entries never expire, they live until commit or abort
func newOverlay() *overlay {
	return &overlay{
		staged: cache.New(cache.NoExpiration, 0),
	}
}

// the second result is true if the key was staged; a staged delete
// returns nil, true
func (o *overlay) lookup(key []byte) ([]byte, bool) {
	item, found := o.staged.Get(string(key))
	if !found {
		return nil, false
	}
	s := item.(stagedValue)
	if s.deleted {
		return nil, true
	}
	return s.value, true
}

func (o *overlay) put(key []byte, value []byte) {
	o.staged.Set(string(key), stagedValue{value: value}, cache.NoExpiration)
}

func (o *overlay) delete(key []byte) {
	o.staged.Set(string(key), stagedValue{deleted: true}, cache.NoExpiration)
}

// number of distinct keys touched
func (o *overlay) size() int {
	return o.staged.ItemCount()
}

func (o *overlay) reset() {
	o.staged.Flush()
}
