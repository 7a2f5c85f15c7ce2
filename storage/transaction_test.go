// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

func TestTransactionReadYourWrites(t *testing.T) {
	s, name := setup(t)
	defer teardown(s, name)

	p, err := s.Pool(storage.RegionTesting)
	require.Nil(t, err, "pool")
	c, err := s.Cell(storage.RegionLedgerCount, []byte{0})
	require.Nil(t, err, "cell")

	p.Insert(ownerOne, []byte("stay"), []byte("old"))

	trx := s.Begin()
	trx.Insert(p, ownerOne, []byte("key"), []byte("value"))
	trx.Remove(p, ownerOne, []byte("stay"))
	trx.Set(c, ownerOne, []byte{7})

	assert.Equal(t, []byte("value"), trx.Get(p, ownerOne, []byte("key")), "staged insert")
	assert.Nil(t, trx.Get(p, ownerOne, []byte("stay")), "staged remove")
	assert.Equal(t, []byte{7}, trx.Value(c, ownerOne), "staged cell")

	// nothing visible outside until commit
	assert.Nil(t, p.Get(ownerOne, []byte("key")), "leaked insert")
	assert.Equal(t, []byte("old"), p.Get(ownerOne, []byte("stay")), "leaked remove")
	assert.Equal(t, []byte{0}, c.Get(ownerOne), "leaked cell")

	err = trx.Commit()
	require.Nil(t, err, "commit")

	committed := s.Committed()
	assert.Equal(t, []byte("value"), committed.Get(p, ownerOne, []byte("key")), "committed insert")
	assert.Nil(t, committed.Get(p, ownerOne, []byte("stay")), "committed remove")
	assert.Equal(t, []byte{7}, committed.Value(c, ownerOne), "committed cell")

	assert.Equal(t, fault.TransactionInUse, trx.Commit(), "second commit")
}

func TestTransactionAbort(t *testing.T) {
	s, name := setup(t)
	defer teardown(s, name)

	p, err := s.Pool(storage.RegionTesting)
	require.Nil(t, err, "pool")

	trx := s.Begin()
	trx.Insert(p, ownerTwo, []byte("key"), []byte("value"))
	trx.Abort()

	assert.Nil(t, p.Get(ownerTwo, []byte("key")), "aborted insert visible")
	assert.Equal(t, 0, p.Count(ownerTwo), "aborted owner materialised")
	assert.Panics(t, func() {
		trx.Insert(p, ownerTwo, []byte("key"), []byte("value"))
	}, "write after abort")
}

func TestCellDefault(t *testing.T) {
	s, name := setup(t)
	defer teardown(s, name)

	c, err := s.Cell(storage.RegionMetadata, []byte("default"))
	require.Nil(t, err, "cell")

	assert.Equal(t, []byte("default"), c.Get(ownerOne), "default value")

	c.Set(ownerOne, []byte("set"))
	assert.Equal(t, []byte("set"), c.Get(ownerOne), "set value")
	assert.Equal(t, []byte("default"), c.Get(ownerTwo), "other owner")
}
