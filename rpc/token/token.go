// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=../mocks/service.go -package=mocks github.com/bitmark-inc/tokend/rpc/token Service

package token

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/balance"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
	"github.com/bitmark-inc/tokend/token"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// setting names accepted by Update
const (
	SettingName  = "name"
	SettingLogo  = "logo"
	SettingFee   = "fee"
	SettingFeeTo = "fee_to"
	SettingOwner = "owner"
	SettingTest  = "test"
)

// Service - the token queries and owner settings
type Service interface {
	TokenInfo() (*token.Info, error)
	BalanceOf(holder account.Holder) amount.Amount
	Allowance(owner account.Holder, spender account.Holder) amount.Amount
	GetHolders(start int, limit int) ([]balance.Entry, error)
	GetAllowanceSize() int
	GetUserApprovals(who account.Holder) []balance.Approval
	HistorySize() uint64
	LookupTransaction(id uint64) (*ledger.Record, error)
	GetTransactions(start uint64, limit uint64) ([]*ledger.Record, error)
	GetUserTransactions(who account.Holder, start uint64, limit uint64) ([]*ledger.Record, error)
	GetUserTransactionCount(who account.Holder) uint64
	GetUserTransactionAmount(who account.Holder) amount.Amount
	SetName(caller account.Holder, name string) error
	SetLogo(caller account.Holder, logo string) error
	SetFee(caller account.Holder, fee amount.Amount) error
	SetFeeTo(caller account.Holder, feeTo account.Holder) error
	SetOwner(caller account.Holder, owner account.Holder) error
	ToggleTest(caller account.Holder) (bool, error)
}

// Token - type for RPC calls
type Token struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Service Service
}

// New - create token RPC handler
func New(log *logger.L, service Service) *Token {
	return &Token{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitToken, rateBurstToken),
		Service: service,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - metadata and statistics
type InfoReply struct {
	Info          *token.Info `json:"info"`
	AllowanceSize int         `json:"allowance_size"`
}

// Info - metadata and statistics of the token
func (tok *Token) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(tok.Limiter); nil != err {
		return err
	}

	info, err := tok.Service.TokenInfo()
	if nil != err {
		return err
	}
	reply.Info = info
	reply.AllowanceSize = tok.Service.GetAllowanceSize()
	return nil
}

// ---

// BalanceArguments - arguments for a balance query
//
// Spender is optional; when present the allowance Holder granted to
// it is returned as well
type BalanceArguments struct {
	Holder  account.Holder `json:"holder"`
	Spender account.Holder `json:"spender"`
}

// BalanceReply - balance of a holder
type BalanceReply struct {
	Balance   amount.Amount      `json:"balance"`
	Allowance *amount.Amount     `json:"allowance,omitempty"`
	Approvals []balance.Approval `json:"approvals"`
}

// Balance - balance and approvals of one holder
func (tok *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(tok.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Holder.IsZero() {
		return fault.MissingParameters
	}

	reply.Balance = tok.Service.BalanceOf(arguments.Holder)
	reply.Approvals = tok.Service.GetUserApprovals(arguments.Holder)
	if !arguments.Spender.IsZero() {
		a := tok.Service.Allowance(arguments.Holder, arguments.Spender)
		reply.Allowance = &a
	}
	return nil
}

// ---

// HoldersArguments - a page of holders
type HoldersArguments struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// HoldersReply - holders with their balances
type HoldersReply struct {
	Holders []balance.Entry `json:"holders"`
}

// Holders - a page of holders in identity order
func (tok *Token) Holders(arguments *HoldersArguments, reply *HoldersReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(tok.Limiter, arguments.Count, token.MaximumQueryLength); nil != err {
		return err
	}

	holders, err := tok.Service.GetHolders(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Holders = holders
	return nil
}

// ---

// TransactionArguments - a single record
type TransactionArguments struct {
	Id uint64 `json:"id,string"`
}

// TransactionReply - a single record
type TransactionReply struct {
	Transaction *ledger.Record `json:"transaction"`
}

// Transaction - fetch one record by id
func (tok *Token) Transaction(arguments *TransactionArguments, reply *TransactionReply) error {
	if err := ratelimit.Limit(tok.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	r, err := tok.Service.LookupTransaction(arguments.Id)
	if nil != err {
		return err
	}
	reply.Transaction = r
	return nil
}

// ---

// TransactionsArguments - a page of records
//
// a non-zero Holder pages through that holder's records only and
// Start counts that holder's records rather than ledger ids
type TransactionsArguments struct {
	Holder account.Holder `json:"holder"`
	Start  uint64         `json:"start,string"`
	Count  int            `json:"count"`
}

// TransactionsReply - a page of records
type TransactionsReply struct {
	Transactions []*ledger.Record `json:"transactions"`
	Total        uint64           `json:"total,string"`
	Volume       *amount.Amount   `json:"volume,omitempty"`
}

// Transactions - a page of the history
func (tok *Token) Transactions(arguments *TransactionsArguments, reply *TransactionsReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(tok.Limiter, arguments.Count, token.MaximumQueryLength); nil != err {
		return err
	}

	if arguments.Holder.IsZero() {
		records, err := tok.Service.GetTransactions(arguments.Start, uint64(arguments.Count))
		if nil != err {
			return err
		}
		reply.Transactions = records
		reply.Total = tok.Service.HistorySize()
		return nil
	}

	records, err := tok.Service.GetUserTransactions(arguments.Holder, arguments.Start, uint64(arguments.Count))
	if nil != err {
		return err
	}
	volume := tok.Service.GetUserTransactionAmount(arguments.Holder)

	reply.Transactions = records
	reply.Total = tok.Service.GetUserTransactionCount(arguments.Holder)
	reply.Volume = &volume
	return nil
}

// ---

// UpdateArguments - change one owner setting
//
// Value is the text form of the new value: an amount for "fee", an
// account for "fee_to" and "owner"; it is ignored for "test" which
// flips the flag
type UpdateArguments struct {
	Caller  account.Holder `json:"caller"`
	Setting string         `json:"setting"`
	Value   string         `json:"value"`
}

// UpdateReply - result of a setting change
type UpdateReply struct {
	Setting string `json:"setting"`
	IsTest  bool   `json:"is_test"`
}

// Update - owner only change of a single setting
func (tok *Token) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := ratelimit.Limit(tok.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	tok.Log.Infof("update: %q  caller: %s", arguments.Setting, arguments.Caller)

	caller := arguments.Caller
	var err error
	switch arguments.Setting {
	case SettingName:
		err = tok.Service.SetName(caller, arguments.Value)

	case SettingLogo:
		err = tok.Service.SetLogo(caller, arguments.Value)

	case SettingFee:
		fee, e := amount.FromString(arguments.Value)
		if nil != e {
			return e
		}
		err = tok.Service.SetFee(caller, fee)

	case SettingFeeTo, SettingOwner:
		holder, e := account.FromBase58(arguments.Value)
		if nil != e {
			return e
		}
		if SettingOwner == arguments.Setting {
			err = tok.Service.SetOwner(caller, holder)
		} else {
			err = tok.Service.SetFeeTo(caller, holder)
		}

	case SettingTest:
		reply.IsTest, err = tok.Service.ToggleTest(caller)

	default:
		return fault.InvalidSetting
	}
	if nil != err {
		return err
	}

	reply.Setting = arguments.Setting
	return nil
}
