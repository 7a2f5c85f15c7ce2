// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/util"
)

// BiddingState - the current round of the auction
type BiddingState struct {
	FeeRatio        decimal.Decimal `json:"fee_ratio"`
	AuctionPeriod   time.Duration   `json:"auction_period"`
	LastAuction     time.Time       `json:"last_auction"`
	ResourceBalance uint64          `json:"resource_balance"`
	MinResources    uint64          `json:"min_resources"`
	Bids            []Bid           `json:"bids"`
}

// Bid - resources pledged by one bidder in the current round
type Bid struct {
	Bidder    account.Holder `json:"bidder"`
	Resources uint64         `json:"resources"`
}

// Record - result of one settled auction
type Record struct {
	Id                 uint64          `json:"id"`
	Timestamp          time.Time       `json:"timestamp"`
	FeePoolDistributed amount.Amount   `json:"fee_pool_distributed"`
	FeeRatioAfter      decimal.Decimal `json:"fee_ratio_after"`
	Bids               []Bid           `json:"bids"`
}

// Payout - share of the fee pool owed to a bidder
type Payout struct {
	Bidder account.Holder
	Amount amount.Amount
}

// state cell: everything except the bids, which live in their own pool
func (s *BiddingState) pack() []byte {
	last := uint64(0)
	if !s.LastAuction.IsZero() {
		last = uint64(s.LastAuction.UnixNano())
	}
	message := util.Packer{}
	message = message.String(s.FeeRatio.String())
	message = message.Uint64(uint64(s.AuctionPeriod))
	message = message.Uint64(last)
	message = message.Uint64(s.ResourceBalance)
	message = message.Uint64(s.MinResources)
	return message
}

func unpackState(buffer []byte) (*BiddingState, error) {
	u := util.NewUnpacker(buffer)
	ratioText := u.String()
	period := u.Uint64()
	last := u.Uint64()
	resources := u.Uint64()
	minResources := u.Uint64()
	if err := u.Err(); nil != err {
		return nil, err
	}

	ratio, err := decimal.NewFromString(ratioText)
	if nil != err {
		return nil, fault.InvalidRatio
	}

	s := &BiddingState{
		FeeRatio:        ratio,
		AuctionPeriod:   time.Duration(period),
		ResourceBalance: resources,
		MinResources:    minResources,
	}
	if 0 != last {
		s.LastAuction = time.Unix(0, int64(last)).UTC()
	}
	return s, nil
}

// Pack - binary form of an auction record
func (r *Record) Pack() []byte {
	message := util.Packer{}
	message = message.Uint64(r.Id)
	message = message.Uint64(uint64(r.Timestamp.UnixNano()))
	message = message.Bytes(r.FeePoolDistributed.Bytes())
	message = message.String(r.FeeRatioAfter.String())
	message = message.Uint64(uint64(len(r.Bids)))
	for _, b := range r.Bids {
		message = message.Bytes(b.Bidder.Bytes())
		message = message.Uint64(b.Resources)
	}
	return message
}

// UnpackRecord - turn a byte slice back into an auction record
func UnpackRecord(buffer []byte) (*Record, error) {
	u := util.NewUnpacker(buffer)
	r := &Record{
		Id:                 u.Uint64(),
		Timestamp:          time.Unix(0, int64(u.Uint64())).UTC(),
		FeePoolDistributed: amount.FromBytes(u.Bytes()),
	}
	ratioText := u.String()
	n := u.Uint64()
	if err := u.Err(); nil != err {
		return nil, err
	}
	if n > uint64(u.Remaining()) {
		return nil, fault.RecordTruncated
	}

	r.Bids = make([]Bid, 0, n)
	for i := uint64(0); i < n; i += 1 {
		r.Bids = append(r.Bids, Bid{
			Bidder:    account.FromBytes(u.Bytes()),
			Resources: u.Uint64(),
		})
	}
	if err := u.Err(); nil != err {
		return nil, err
	}

	ratio, err := decimal.NewFromString(ratioText)
	if nil != err {
		return nil, fault.InvalidRatio
	}
	r.FeeRatioAfter = ratio
	return r, nil
}
