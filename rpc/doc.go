// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - setup and handle all of the incoming JSON-RPC requests
// from clients of the token service
//
// standard golang RPC clients can be used to access these services:
//
//	Node.Info            daemon version, uptime and connection counts
//	Token.Info           metadata and statistics
//	Token.Balance        balance, allowance and approvals of a holder
//	Token.Holders        page of holders
//	Token.Transaction    one ledger record
//	Token.Transactions   page of the ledger, optionally for one holder
//	Token.Update         owner only setting change
//	Transfer.Send        transfer, optionally fee inclusive or notified
//	Transfer.From        spend against an allowance
//	Transfer.Approve     set an allowance
//	Transfer.Mint        create tokens
//	Transfer.Burn        destroy tokens
//	Transfer.Notify      deliver a record to its recipient
//	Auction.Bid          pledge resources
//	Auction.Info         current round
//	Auction.Run          settle the current round
//	Auction.Get          a settled auction
//	Auction.Configure    owner only auction settings
package rpc
