// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tokend/fault"
)

// CellHandle - a single value per owner inside a region
type CellHandle struct {
	store        *Store
	region       byte
	defaultValue []byte
}

// Cell - handle for a single value region
//
// the default value is returned for any owner that never set the cell
func (s *Store) Cell(region byte, defaultValue []byte) (*CellHandle, error) {
	if !validRegion(region) {
		return nil, fault.InvalidRegion
	}
	return &CellHandle{
		store:        s,
		region:       region,
		defaultValue: defaultValue,
	}, nil
}

// Region - the prefix byte of this cell
func (c *CellHandle) Region() byte {
	return c.region
}

// Get - current value, or the default
func (c *CellHandle) Get(owner []byte) []byte {
	value := c.store.get(c.region, owner, nil)
	if nil == value {
		return c.fallback()
	}
	return value
}

// Set - replace the value
func (c *CellHandle) Set(owner []byte, value []byte) {
	trx := c.store.Begin()
	trx.Set(c, owner, value)
	err := trx.Commit()
	logger.PanicIfError("cell set", err)
}

func (c *CellHandle) fallback() []byte {
	if nil == c.defaultValue {
		return nil
	}
	value := make([]byte, len(c.defaultValue))
	copy(value, c.defaultValue)
	return value
}
