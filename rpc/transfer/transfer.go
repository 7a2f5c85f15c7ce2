// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=../mocks/ledger.go -package=mocks github.com/bitmark-inc/tokend/rpc/transfer Ledger

package transfer

import (
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

const (
	rateLimitTransfer = 200
	rateBurstTransfer = 100
)

// Ledger - the token operations that move balances
type Ledger interface {
	Transfer(caller account.Holder, to account.Holder, value amount.Amount, feeLimit *amount.Amount) (uint64, error)
	TransferIncludeFee(caller account.Holder, to account.Holder, value amount.Amount) (uint64, error)
	TransferFrom(caller account.Holder, from account.Holder, to account.Holder, value amount.Amount) (uint64, error)
	TransferAndNotify(ctx context.Context, caller account.Holder, to account.Holder, value amount.Amount, feeLimit *amount.Amount) (uint64, error)
	Approve(caller account.Holder, spender account.Holder, value amount.Amount) (uint64, error)
	Mint(caller account.Holder, to account.Holder, value amount.Amount) (uint64, error)
	Burn(caller account.Holder, value amount.Amount) (uint64, error)
	Notify(ctx context.Context, caller account.Holder, id uint64) error
}

// Transfer - type for RPC calls
type Transfer struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create transfer RPC handler
func New(log *logger.L, ledger Ledger) *Transfer {
	return &Transfer{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransfer, rateBurstTransfer),
		Ledger:  ledger,
	}
}

// IdReply - the ledger record created by a call
type IdReply struct {
	Id          uint64 `json:"id,string"`
	NotifyError string `json:"notify_error,omitempty"`
}

// ---

// SendArguments - arguments for a transfer
//
// IncludeFee takes the fee out of Amount; FeeLimit does not apply to
// it.  Notify delivers the new record to the recipient once the
// transfer is committed
type SendArguments struct {
	Caller     account.Holder `json:"caller"`
	To         account.Holder `json:"to"`
	Amount     amount.Amount  `json:"amount"`
	FeeLimit   *amount.Amount `json:"fee_limit,omitempty"`
	IncludeFee bool           `json:"include_fee"`
	Notify     bool           `json:"notify"`
}

// Send - transfer from the caller
//
// a failed notification leaves the transfer in place; the reason is
// returned in the reply instead of as an error
func (transfer *Transfer) Send(arguments *SendArguments, reply *IdReply) error {
	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() || arguments.To.IsZero() {
		return fault.MissingParameters
	}
	if arguments.IncludeFee && nil != arguments.FeeLimit {
		return fault.InvalidFeeLimit
	}

	transfer.Log.Infof("send: %s → %s  amount: %s  include fee: %t  notify: %t",
		arguments.Caller, arguments.To, arguments.Amount, arguments.IncludeFee, arguments.Notify)

	var id uint64
	var err error
	switch {
	case arguments.IncludeFee:
		id, err = transfer.Ledger.TransferIncludeFee(arguments.Caller, arguments.To, arguments.Amount)
		if nil == err && arguments.Notify {
			reply.NotifyError = errorText(transfer.Ledger.Notify(context.Background(), arguments.Caller, id))
		}
	case arguments.Notify:
		id, err = transfer.Ledger.TransferAndNotify(context.Background(), arguments.Caller, arguments.To, arguments.Amount, arguments.FeeLimit)
		if fault.IsErrNotification(err) {
			reply.NotifyError = err.Error()
			err = nil
		}
	default:
		id, err = transfer.Ledger.Transfer(arguments.Caller, arguments.To, arguments.Amount, arguments.FeeLimit)
	}
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// ---

// FromArguments - arguments for a spend against an allowance
type FromArguments struct {
	Caller account.Holder `json:"caller"`
	From   account.Holder `json:"from"`
	To     account.Holder `json:"to"`
	Amount amount.Amount  `json:"amount"`
}

// From - caller spends from an owner who approved it
func (transfer *Transfer) From(arguments *FromArguments, reply *IdReply) error {
	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() || arguments.From.IsZero() || arguments.To.IsZero() {
		return fault.MissingParameters
	}

	transfer.Log.Infof("from: %s  spender: %s → %s  amount: %s",
		arguments.From, arguments.Caller, arguments.To, arguments.Amount)

	id, err := transfer.Ledger.TransferFrom(arguments.Caller, arguments.From, arguments.To, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// ---

// ApproveArguments - arguments for setting an allowance
type ApproveArguments struct {
	Caller  account.Holder `json:"caller"`
	Spender account.Holder `json:"spender"`
	Amount  amount.Amount  `json:"amount"`
}

// Approve - set the allowance of a spender, zero revokes it
func (transfer *Transfer) Approve(arguments *ApproveArguments, reply *IdReply) error {
	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() || arguments.Spender.IsZero() {
		return fault.MissingParameters
	}

	id, err := transfer.Ledger.Approve(arguments.Caller, arguments.Spender, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// ---

// SupplyArguments - arguments for mint and burn
//
// To is ignored by burn
type SupplyArguments struct {
	Caller account.Holder `json:"caller"`
	To     account.Holder `json:"to"`
	Amount amount.Amount  `json:"amount"`
}

// Mint - create new tokens
func (transfer *Transfer) Mint(arguments *SupplyArguments, reply *IdReply) error {
	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() || arguments.To.IsZero() {
		return fault.MissingParameters
	}

	id, err := transfer.Ledger.Mint(arguments.Caller, arguments.To, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// Burn - destroy tokens held by the caller
func (transfer *Transfer) Burn(arguments *SupplyArguments, reply *IdReply) error {
	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	id, err := transfer.Ledger.Burn(arguments.Caller, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// ---

// NotifyArguments - arguments for a notification retry
type NotifyArguments struct {
	Caller account.Holder `json:"caller"`
	Id     uint64         `json:"id,string"`
}

// NotifyReply - result of a notification
type NotifyReply struct {
	Notified bool `json:"notified"`
}

// Notify - deliver a record to its recipient
func (transfer *Transfer) Notify(arguments *NotifyArguments, reply *NotifyReply) error {
	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	err := transfer.Ledger.Notify(context.Background(), arguments.Caller, arguments.Id)
	if nil != err {
		return err
	}
	reply.Notified = true
	return nil
}

func errorText(err error) string {
	if nil == err {
		return ""
	}
	return err.Error()
}
