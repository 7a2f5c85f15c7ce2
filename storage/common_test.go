// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/storage"
)

var (
	ownerOne = []byte("owner-one")
	ownerTwo = []byte("owner-two")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// open a fresh database for one test
func setup(t *testing.T) (*storage.Store, string) {
	name := fixtures.DatabaseName(t.Name())
	_ = os.RemoveAll(name)
	s, err := storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "storage open")
	return s, name
}

func teardown(s *storage.Store, name string) {
	s.Close()
	_ = os.RemoveAll(name)
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// insert in a different order, with one overwrite
func populate(p *storage.PoolHandle, owner []byte) {
	p.Insert(owner, []byte("key-one"), []byte("data-one"))
	p.Insert(owner, []byte("key-two"), []byte("data-two"))
	p.Insert(owner, []byte("key-three"), []byte("data-three"))
	p.Insert(owner, []byte("key-four"), []byte("data-four"))
	p.Insert(owner, []byte("key-five"), []byte("data-five"))
	p.Insert(owner, []byte("key-six"), []byte("data-six"))
	p.Insert(owner, []byte("key-seven"), []byte("data-seven"))
	p.Insert(owner, []byte("key-one"), []byte("data-one(NEW)"))
}
