// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction_test

import (
	"math"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T, minResources uint64) (*storage.Store, *auction.Engine, func()) {
	name := fixtures.DatabaseName(t.Name())
	_ = os.RemoveAll(name)
	s, err := storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "storage open")

	e, err := auction.New(s, fixtures.Principal)
	require.Nil(t, err, "auction new")

	trx := s.Begin()
	e.Initialise(trx, minResources)
	require.Nil(t, trx.Commit(), "commit")

	return s, e, func() {
		s.Close()
		_ = os.RemoveAll(name)
	}
}

func bid(t *testing.T, s *storage.Store, e *auction.Engine, resources uint64) {
	trx := s.Begin()
	_, err := e.Bid(trx, fixtures.Alice, resources)
	require.Nil(t, err, "bid")
	require.Nil(t, trx.Commit(), "commit")
}

func TestFeeRatioCurve(t *testing.T) {
	one := decimal.NewFromInt(1)
	assert.True(t, one.Equal(auction.FeeRatio(0, 100)), "empty")
	assert.True(t, one.Equal(auction.FeeRatio(100, 100)), "at threshold")
	assert.Equal(t, "0.5", auction.FeeRatio(200, 100).String(), "double")
	assert.Equal(t, "0.3333333333333333", auction.FeeRatio(300, 100).String(), "truncated")
	assert.True(t, auction.FeeRatio(0, 0).Equal(one), "zero threshold no resources")
	assert.True(t, auction.FeeRatio(1, 0).IsZero(), "zero threshold")

	previous := one
	for r := uint64(100); r < 100000; r *= 3 {
		ratio := auction.FeeRatio(r, 100)
		assert.True(t, ratio.LessThanOrEqual(previous), "not monotonic")
		assert.True(t, ratio.IsPositive(), "not positive")
		previous = ratio
	}
}

func TestBidRules(t *testing.T) {
	s, e, done := setup(t, auction.DefaultMinResources)
	defer done()

	trx := s.Begin()
	_, err := e.Bid(trx, fixtures.Alice, auction.MinimumBid-1)
	assert.Equal(t, fault.BidTooSmall, err, "small bid")

	accepted, err := e.Bid(trx, fixtures.Alice, auction.MinimumBid)
	require.Nil(t, err, "first bid")
	assert.Equal(t, auction.MinimumBid, accepted, "accepted")
	_, err = e.Bid(trx, fixtures.Alice, 2*auction.MinimumBid)
	require.Nil(t, err, "second bid")
	require.Nil(t, trx.Commit(), "commit")

	info := e.BiddingInfo()
	require.Equal(t, 1, len(info.Bids), "cumulative bids")
	assert.Equal(t, 3*auction.MinimumBid, info.Bids[0].Resources, "bid total")
	assert.Equal(t, 3*auction.MinimumBid, info.ResourceBalance, "resource balance")
	assert.Equal(t, auction.DefaultPeriod, info.AuctionPeriod, "period")

	trx = s.Begin()
	_, err = e.Bid(trx, fixtures.Bob, math.MaxUint64-auction.MinimumBid)
	assert.Equal(t, fault.Overflow, err, "overflow")
	trx.Abort()
}

func TestSettleProportional(t *testing.T) {
	s, e, done := setup(t, auction.DefaultMinResources)
	defer done()

	trx := s.Begin()
	_, err := e.Bid(trx, fixtures.Alice, 1000000)
	require.Nil(t, err, "alice bid")
	_, err = e.Bid(trx, fixtures.Bob, 3000000)
	require.Nil(t, err, "bob bid")
	require.Nil(t, trx.Commit(), "commit")

	now := time.Unix(1600000000, 0).UTC()
	trx = s.Begin()
	r, payouts, err := e.Settle(trx, now, amount.New(400))
	require.Nil(t, err, "settle")
	require.Nil(t, trx.Commit(), "commit")

	require.Equal(t, 2, len(payouts), "payouts")
	got := map[string]string{}
	for _, p := range payouts {
		got[p.Bidder.String()] = p.Amount.String()
	}
	assert.Equal(t, "100", got[fixtures.Alice.String()], "alice share")
	assert.Equal(t, "300", got[fixtures.Bob.String()], "bob share")
	assert.Equal(t, "400", r.FeePoolDistributed.String(), "distributed")
	assert.Equal(t, uint64(0), r.Id, "first auction id")

	info := e.BiddingInfo()
	assert.Equal(t, 0, len(info.Bids), "bids cleared")
	assert.True(t, now.Equal(info.LastAuction), "last auction")

	stored, err := e.AuctionInfo(0)
	require.Nil(t, err, "auction info")
	assert.Equal(t, 2, len(stored.Bids), "stored bids")
	assert.Equal(t, "400", stored.FeePoolDistributed.String(), "stored pool")

	_, err = e.AuctionInfo(1)
	assert.Equal(t, fault.AuctionNotFound, err, "missing auction")
}

func TestSettleRemainderStays(t *testing.T) {
	s, e, done := setup(t, auction.DefaultMinResources)
	defer done()

	trx := s.Begin()
	for _, bidder := range []account.Holder{fixtures.Alice, fixtures.Bob, fixtures.Carol} {
		_, err := e.Bid(trx, bidder, auction.MinimumBid)
		require.Nil(t, err, "bid")
	}
	require.Nil(t, trx.Commit(), "commit")

	trx = s.Begin()
	r, payouts, err := e.Settle(trx, time.Now(), amount.New(10))
	require.Nil(t, err, "settle")
	require.Nil(t, trx.Commit(), "commit")

	require.Equal(t, 3, len(payouts), "payouts")
	for _, p := range payouts {
		assert.Equal(t, "3", p.Amount.String(), "equal share")
	}
	assert.Equal(t, "9", r.FeePoolDistributed.String(), "remainder kept")
}

func TestSettleTooEarly(t *testing.T) {
	s, e, done := setup(t, auction.DefaultMinResources)
	defer done()

	start := time.Unix(1600000000, 0).UTC()
	trx := s.Begin()
	_, payouts, err := e.Settle(trx, start, amount.New(100))
	require.Nil(t, err, "first auction")
	assert.Equal(t, 0, len(payouts), "no bids no payouts")
	require.Nil(t, trx.Commit(), "commit")

	trx = s.Begin()
	_, _, err = e.Settle(trx, start.Add(auction.DefaultPeriod-time.Second), amount.New(100))
	assert.Equal(t, fault.TooEarly, err, "too early")
	trx.Abort()

	trx = s.Begin()
	require.Nil(t, e.SetPeriod(trx, time.Hour), "set period")
	assert.Equal(t, fault.InvalidPeriod, e.SetPeriod(trx, 0), "zero period")
	_, _, err = e.Settle(trx, start.Add(time.Hour), amount.New(100))
	assert.Nil(t, err, "after shorter period")
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, uint64(2), e.HistorySize(), "history")
}

func TestSettleUpdatesRatio(t *testing.T) {
	s, e, done := setup(t, 2*auction.MinimumBid)
	defer done()

	bid(t, s, e, 4*auction.MinimumBid)

	trx := s.Begin()
	r, _, err := e.Settle(trx, time.Now(), amount.Zero)
	require.Nil(t, err, "settle")
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, "0.5", r.FeeRatioAfter.String(), "ratio in record")
	assert.Equal(t, "0.5", e.BiddingInfo().FeeRatio.String(), "ratio in state")
}
