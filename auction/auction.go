// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/util"
)

// auction constants
const (
	MinimumBid          uint64 = 1000000
	DefaultPeriod              = 24 * time.Hour
	DefaultMinResources uint64 = 1000000000000
)

// Engine - bids, settlement and the fee ratio of one token
type Engine struct {
	log      *logger.L
	store    *storage.Store
	owner    []byte
	state    *storage.CellHandle
	bids     *storage.PoolHandle
	auctions *storage.PoolHandle
	length   *storage.CellHandle
}

// New - auction engine stored under the identity of the token service
func New(store *storage.Store, principal account.Holder) (*Engine, error) {
	state, err := store.Cell(storage.RegionBidding, nil)
	if nil != err {
		return nil, err
	}
	bids, err := store.Pool(storage.RegionBids)
	if nil != err {
		return nil, err
	}
	auctions, err := store.Pool(storage.RegionAuctions)
	if nil != err {
		return nil, err
	}
	length, err := store.Cell(storage.RegionAuctionCount, idToKey(0))
	if nil != err {
		return nil, err
	}
	return &Engine{
		log:      logger.New("auction"),
		store:    store,
		owner:    principal.Bytes(),
		state:    state,
		bids:     bids,
		auctions: auctions,
		length:   length,
	}, nil
}

// Initialise - first bidding state with the default period
func (e *Engine) Initialise(trx storage.Transaction, minResources uint64) {
	s := &BiddingState{
		FeeRatio:      FeeRatio(0, minResources),
		AuctionPeriod: DefaultPeriod,
		MinResources:  minResources,
	}
	trx.Set(e.state, e.owner, s.pack())
}

// Initialised - true once a bidding state exists
func (e *Engine) Initialised(access storage.Access) bool {
	return nil != access.Value(e.state, e.owner)
}

// State - bidding state without the bids
func (e *Engine) State(access storage.Access) *BiddingState {
	packed := access.Value(e.state, e.owner)
	if nil == packed {
		logger.Panic("auction: bidding state is not initialised")
	}
	s, err := unpackState(packed)
	logger.PanicIfError("auction state unpack", err)
	return s
}

// BiddingInfo - snapshot of the committed bidding state and open bids
func (e *Engine) BiddingInfo() *BiddingState {
	s := e.State(e.store.Committed())
	s.Bids = e.openBids()
	return s
}

// Bid - pledge resources for the next settlement
//
// bids are cumulative within a round and the accepted resources are
// added to the resource balance
func (e *Engine) Bid(trx storage.Transaction, bidder account.Holder, resources uint64) (uint64, error) {
	if resources < MinimumBid {
		return 0, fault.BidTooSmall
	}

	s := e.State(trx)
	if s.ResourceBalance > math.MaxUint64-resources {
		return 0, fault.Overflow
	}

	// a round total never exceeds the resource balance so this
	// cannot overflow once the balance check has passed
	current, _ := util.FromVarint64(trx.Get(e.bids, e.owner, bidder.Bytes()))
	total := current + resources

	s.ResourceBalance += resources
	trx.Set(e.state, e.owner, s.pack())
	trx.Insert(e.bids, e.owner, bidder.Bytes(), util.ToVarint64(total))

	e.log.Debugf("bid: %s  resources: %d  total: %d", bidder, resources, total)
	return resources, nil
}

// Settle - distribute the fee pool across the open bids
//
// each bidder receives floor(pool × bid / total bids) and any
// remainder stays with the pool; with no bids nothing is paid.  The
// fee ratio is recomputed from the resource balance, the bids are
// cleared and the auction record is staged
func (e *Engine) Settle(trx storage.Transaction, now time.Time, pool amount.Amount) (*Record, []Payout, error) {
	s := e.State(trx)
	if !s.LastAuction.IsZero() && now.Sub(s.LastAuction) < s.AuctionPeriod {
		return nil, nil, fault.TooEarly
	}

	bids := e.openBids()
	total := uint64(0)
	for _, b := range bids {
		total += b.Resources
	}

	payouts := make([]Payout, 0, len(bids))
	distributed := amount.Zero
	if total > 0 {
		for _, b := range bids {
			share, err := pool.MulDiv(b.Resources, total)
			if nil != err {
				return nil, nil, err
			}
			if share.IsZero() {
				continue
			}
			payouts = append(payouts, Payout{Bidder: b.Bidder, Amount: share})
			distributed = distributed.Add(share)
		}
	}

	for _, b := range bids {
		trx.Remove(e.bids, e.owner, b.Bidder.Bytes())
	}

	s.FeeRatio = FeeRatio(s.ResourceBalance, s.MinResources)
	s.LastAuction = now
	trx.Set(e.state, e.owner, s.pack())

	id := e.historySize(trx)
	r := &Record{
		Id:                 id,
		Timestamp:          now,
		FeePoolDistributed: distributed,
		FeeRatioAfter:      s.FeeRatio,
		Bids:               bids,
	}
	trx.Insert(e.auctions, e.owner, idToKey(id), r.Pack())
	trx.Set(e.length, e.owner, idToKey(id+1))

	e.log.Infof("settle: auction: %d  bids: %d  pool: %s  distributed: %s  ratio: %s",
		id, len(bids), pool, distributed, s.FeeRatio)
	return r, payouts, nil
}

// AuctionInfo - a previously settled auction
func (e *Engine) AuctionInfo(id uint64) (*Record, error) {
	packed := e.auctions.Get(e.owner, idToKey(id))
	if nil == packed {
		return nil, fault.AuctionNotFound
	}
	r, err := UnpackRecord(packed)
	logger.PanicIfError("auction record unpack", err)
	return r, nil
}

// HistorySize - number of settled auctions
func (e *Engine) HistorySize() uint64 {
	return e.historySize(e.store.Committed())
}

// SetPeriod - minimum time between settlements
func (e *Engine) SetPeriod(trx storage.Transaction, period time.Duration) error {
	if period <= 0 {
		return fault.InvalidPeriod
	}
	s := e.State(trx)
	s.AuctionPeriod = period
	trx.Set(e.state, e.owner, s.pack())
	return nil
}

// SetMinResources - threshold below which the whole fee is retained
//
// takes effect at the next settlement
func (e *Engine) SetMinResources(trx storage.Transaction, minResources uint64) {
	s := e.State(trx)
	s.MinResources = minResources
	trx.Set(e.state, e.owner, s.pack())
}

// SetResourceBalance - record the resources currently available
//
// resources are spent outside the ledger so the host reports the live
// balance; takes effect at the next settlement
func (e *Engine) SetResourceBalance(trx storage.Transaction, resources uint64) {
	s := e.State(trx)
	e.log.Infof("resource balance: %d  previous: %d", resources, s.ResourceBalance)
	s.ResourceBalance = resources
	trx.Set(e.state, e.owner, s.pack())
}

func (e *Engine) historySize(access storage.Access) uint64 {
	return binary.BigEndian.Uint64(access.Value(e.length, e.owner))
}

// committed open bids in bidder byte order
func (e *Engine) openBids() []Bid {
	bids := make([]Bid, 0, 8)
	e.bids.Map(e.owner, nil, func(key []byte, value []byte) bool {
		resources, _ := util.FromVarint64(value)
		bids = append(bids, Bid{
			Bidder:    account.FromBytes(key),
			Resources: resources,
		})
		return true
	})
	return bids
}

func idToKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
