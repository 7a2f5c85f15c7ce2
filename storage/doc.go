// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// A single LevelDB database is split into regions, each identified by
// a one byte prefix.  Every region is further split by the identity
// of the owning service so that several independent ledgers can share
// one database without seeing each other's data.
//
// A region is either a pool (small keys to values) or a cell (a
// single value per owner).  Storage for an owner inside a region is
// materialised on its first write: a registry record is written in
// the same batch as the data and the region is then known to be live
// for that owner.  Reads for an owner that never wrote return nothing
// without touching the database.
//
// Notes:
// 1. ++            = concatenation of byte data
// 2. region        = single byte, see regions.go
// 3. owner         = Varint64(length) ++ owner identity bytes
// 4. id            = big endian uint64 (8 bytes)
// 5. holder        = raw account identity bytes
//
// Registry:
//
//	0x00 ++ region ++ owner     - region materialised for owner
//	                              data: Varint64(creation time, unix nanoseconds)
//	0xff ++ "VERSION"           - database version
//	                              data: big endian uint32
//
// Token:
//
//	M ++ owner                  - token metadata (cell)
//	B ++ owner ++ holder        - balance, data: amount magnitude
//	A ++ owner ++ Varint64(len) ++ holder ++ spender
//	                            - allowance, data: amount magnitude
//	L ++ owner ++ id            - ledger record, data: packed record
//	N ++ owner                  - ledger length (cell)
//
// Auction:
//
//	G ++ owner                  - bidding state (cell)
//	D ++ owner ++ bidder        - open bid, data: Varint64(resources)
//	H ++ owner ++ id            - auction record, data: packed record
//	I ++ owner                  - auction history length (cell)
//
// Testing:
//
//	Z ++ owner ++ key           - testing data
package storage
