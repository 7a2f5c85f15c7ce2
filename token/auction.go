// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/storage"
)

// BidCycles - pledge resources for the next auction
func (t *Token) BidCycles(bidder account.Holder, resources uint64) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	var accepted uint64
	err := t.execute(func(trx storage.Transaction) error {
		_, err := t.settings(trx)
		if nil != err {
			return err
		}
		accepted, err = t.auction.Bid(trx, bidder, resources)
		return err
	})
	return accepted, err
}

// BiddingInfo - current round of the auction
func (t *Token) BiddingInfo() (*auction.BiddingState, error) {
	t.Lock()
	defer t.Unlock()

	_, err := t.settings(t.store.Committed())
	if nil != err {
		return nil, err
	}
	return t.auction.BiddingInfo(), nil
}

// RunAuction - pay the fee pool out to the bidders
//
// the fee pool is the balance of the service principal; each payout
// is recorded as an AuctionSettlement
func (t *Token) RunAuction() (*auction.Record, error) {
	t.Lock()
	defer t.Unlock()

	var record *auction.Record
	err := t.execute(func(trx storage.Transaction) error {
		_, err := t.settings(trx)
		if nil != err {
			return err
		}

		now := t.now()
		pool := t.balances.BalanceOf(trx, t.principal)
		r, payouts, err := t.auction.Settle(trx, now, pool)
		if nil != err {
			return err
		}

		for _, p := range payouts {
			err := t.balances.Debit(trx, t.principal, p.Amount)
			if nil != err {
				return err
			}
			t.balances.Credit(trx, p.Bidder, p.Amount)
			t.ledger.Append(trx, ledger.Record{
				Kind:      ledger.AuctionSettlementKind,
				Caller:    t.principal,
				From:      t.principal,
				To:        p.Bidder,
				Amount:    p.Amount,
				Timestamp: now,
			})
		}
		record = r
		return nil
	})
	if nil != err {
		t.log.Debugf("run auction: error: %s", err)
		return nil, err
	}
	return record, nil
}

// AuctionInfo - a previously settled auction
func (t *Token) AuctionInfo(id uint64) (*auction.Record, error) {
	t.Lock()
	defer t.Unlock()
	return t.auction.AuctionInfo(id)
}

// AuctionHistorySize - number of settled auctions
func (t *Token) AuctionHistorySize() uint64 {
	t.Lock()
	defer t.Unlock()
	return t.auction.HistorySize()
}

// MinResources - threshold used by the fee ratio curve
func (t *Token) MinResources() (uint64, error) {
	info, err := t.BiddingInfo()
	if nil != err {
		return 0, err
	}
	return info.MinResources, nil
}

// SetMinResources - change the fee ratio threshold
func (t *Token) SetMinResources(caller account.Holder, minResources uint64) error {
	t.Lock()
	defer t.Unlock()

	return t.execute(func(trx storage.Transaction) error {
		_, err := t.ownerSettings(trx, caller)
		if nil != err {
			return err
		}
		t.auction.SetMinResources(trx, minResources)
		return nil
	})
}

// SetResourceBalance - report the resources available to the service
func (t *Token) SetResourceBalance(caller account.Holder, resources uint64) error {
	t.Lock()
	defer t.Unlock()

	return t.execute(func(trx storage.Transaction) error {
		_, err := t.ownerSettings(trx, caller)
		if nil != err {
			return err
		}
		t.auction.SetResourceBalance(trx, resources)
		return nil
	})
}

// SetAuctionPeriod - change the minimum time between auctions
func (t *Token) SetAuctionPeriod(caller account.Holder, period time.Duration) error {
	t.Lock()
	defer t.Unlock()

	return t.execute(func(trx storage.Transaction) error {
		_, err := t.ownerSettings(trx, caller)
		if nil != err {
			return err
		}
		return t.auction.SetPeriod(trx, period)
	})
}
