// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// region prefixes - keep in step with doc.go
const (
	RegionAllowances   byte = 'A'
	RegionBalances     byte = 'B'
	RegionBids         byte = 'D'
	RegionBidding      byte = 'G'
	RegionAuctions     byte = 'H'
	RegionAuctionCount byte = 'I'
	RegionLedger       byte = 'L'
	RegionMetadata     byte = 'M'
	RegionLedgerCount  byte = 'N'
	RegionTesting      byte = 'Z'
)

// reserved prefixes
const (
	registryPrefix byte = 0x00
	versionPrefix  byte = 0xff
)
