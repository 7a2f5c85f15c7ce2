// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=../mocks/engine.go -package=mocks github.com/bitmark-inc/tokend/rpc/auction Engine

package auction

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

const (
	rateLimitAuction = 100
	rateBurstAuction = 50
)

// Engine - the auction operations of the token service
type Engine interface {
	BidCycles(bidder account.Holder, resources uint64) (uint64, error)
	BiddingInfo() (*auction.BiddingState, error)
	RunAuction() (*auction.Record, error)
	AuctionInfo(id uint64) (*auction.Record, error)
	AuctionHistorySize() uint64
	SetMinResources(caller account.Holder, minResources uint64) error
	SetResourceBalance(caller account.Holder, resources uint64) error
	SetAuctionPeriod(caller account.Holder, period time.Duration) error
}

// Auction - type for RPC calls
type Auction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  Engine
}

// New - create auction RPC handler
func New(log *logger.L, engine Engine) *Auction {
	return &Auction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAuction, rateBurstAuction),
		Engine:  engine,
	}
}

// ---

// BidArguments - resources pledged for the next auction
type BidArguments struct {
	Bidder    account.Holder `json:"bidder"`
	Resources uint64         `json:"resources,string"`
}

// BidReply - resources accepted
type BidReply struct {
	Resources uint64 `json:"resources,string"`
}

// Bid - pledge resources
func (a *Auction) Bid(arguments *BidArguments, reply *BidReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Bidder.IsZero() {
		return fault.MissingParameters
	}

	accepted, err := a.Engine.BidCycles(arguments.Bidder, arguments.Resources)
	if nil != err {
		return err
	}
	reply.Resources = accepted
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - the current round
type InfoReply struct {
	State       *auction.BiddingState `json:"state"`
	HistorySize uint64                `json:"history_size,string"`
	NextAuction time.Time             `json:"next_auction"`
}

// Info - the round in progress and when it may be settled
func (a *Auction) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	state, err := a.Engine.BiddingInfo()
	if nil != err {
		return err
	}
	reply.State = state
	reply.HistorySize = a.Engine.AuctionHistorySize()
	reply.NextAuction = state.LastAuction.Add(state.AuctionPeriod)
	return nil
}

// ---

// RunArguments - empty arguments for settlement
type RunArguments struct{}

// RecordReply - a settled auction
type RecordReply struct {
	Record *auction.Record `json:"record"`
}

// Run - settle the current round
func (a *Auction) Run(_ *RunArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	r, err := a.Engine.RunAuction()
	if nil != err {
		return err
	}
	a.Log.Infof("auction: %d  distributed: %s  bids: %d", r.Id, r.FeePoolDistributed, len(r.Bids))
	reply.Record = r
	return nil
}

// ---

// GetArguments - a settled auction
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// Get - fetch a settled auction by id
func (a *Auction) Get(arguments *GetArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	r, err := a.Engine.AuctionInfo(arguments.Id)
	if nil != err {
		return err
	}
	reply.Record = r
	return nil
}

// ---

// ConfigureArguments - owner only auction settings
//
// zero or empty fields are left unchanged; Period is a duration
// such as "24h"; ResourceBalance is only applied when present
type ConfigureArguments struct {
	Caller          account.Holder `json:"caller"`
	MinResources    uint64         `json:"min_resources,string"`
	Period          string         `json:"period"`
	ResourceBalance *uint64        `json:"resource_balance,string,omitempty"`
}

// ConfigureReply - empty reply
type ConfigureReply struct{}

// Configure - change the fee ratio threshold, the auction period or
// the reported resource balance
func (a *Auction) Configure(arguments *ConfigureArguments, _ *ConfigureReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}
	if 0 == arguments.MinResources && "" == arguments.Period && nil == arguments.ResourceBalance {
		return fault.MissingParameters
	}

	var period time.Duration
	if "" != arguments.Period {
		p, err := time.ParseDuration(arguments.Period)
		if nil != err {
			return fault.InvalidPeriod
		}
		period = p
	}

	if 0 != arguments.MinResources {
		err := a.Engine.SetMinResources(arguments.Caller, arguments.MinResources)
		if nil != err {
			return err
		}
	}
	if 0 != period {
		err := a.Engine.SetAuctionPeriod(arguments.Caller, period)
		if nil != err {
			return err
		}
	}
	if nil != arguments.ResourceBalance {
		return a.Engine.SetResourceBalance(arguments.Caller, *arguments.ResourceBalance)
	}
	return nil
}
