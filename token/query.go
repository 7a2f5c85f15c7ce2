// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/balance"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
)

// GetMetadata - current metadata
func (t *Token) GetMetadata() (Metadata, error) {
	t.Lock()
	defer t.Unlock()

	s, err := t.settings(t.store.Committed())
	if nil != err {
		return Metadata{}, err
	}
	return s.Metadata, nil
}

// TokenInfo - metadata and statistics
func (t *Token) TokenInfo() (*Info, error) {
	t.Lock()
	defer t.Unlock()

	committed := t.store.Committed()
	s, err := t.settings(committed)
	if nil != err {
		return nil, err
	}
	return &Info{
		Metadata:        s.Metadata,
		DeployTime:      s.deployTime,
		HistorySize:     t.ledger.Len(committed),
		HolderCount:     t.balances.HolderCount(),
		ResourceBalance: t.auction.State(committed).ResourceBalance,
	}, nil
}

// IsTestToken - true if anyone may mint
func (t *Token) IsTestToken() (bool, error) {
	m, err := t.GetMetadata()
	return m.IsTest, err
}

// BalanceOf - balance of a holder
func (t *Token) BalanceOf(holder account.Holder) amount.Amount {
	t.Lock()
	defer t.Unlock()
	return t.balances.BalanceOf(t.store.Committed(), holder)
}

// Allowance - amount spender may move from owner
func (t *Token) Allowance(owner account.Holder, spender account.Holder) amount.Amount {
	t.Lock()
	defer t.Unlock()
	return t.balances.Allowance(t.store.Committed(), owner, spender)
}

// GetHolders - holders with a non-zero balance
func (t *Token) GetHolders(start int, limit int) ([]balance.Entry, error) {
	if start < 0 || limit < 1 {
		return nil, fault.InvalidCount
	}
	if limit > MaximumQueryLength {
		return nil, fault.LimitTooLarge
	}
	t.Lock()
	defer t.Unlock()
	return t.balances.Holders(start, limit), nil
}

// GetAllowanceSize - number of non-zero allowances
func (t *Token) GetAllowanceSize() int {
	t.Lock()
	defer t.Unlock()
	return t.balances.AllowanceSize()
}

// GetUserApprovals - allowances granted by one holder
func (t *Token) GetUserApprovals(who account.Holder) []balance.Approval {
	t.Lock()
	defer t.Unlock()
	return t.balances.UserApprovals(who)
}

// HistorySize - number of ledger records
func (t *Token) HistorySize() uint64 {
	t.Lock()
	defer t.Unlock()
	return t.ledger.Len(t.store.Committed())
}

// GetTransaction - a record that must exist
//
// an absent id is fatal, use LookupTransaction for a checked lookup
func (t *Token) GetTransaction(id uint64) *ledger.Record {
	r, err := t.LookupTransaction(id)
	if nil != err {
		logger.Panicf("transaction: %d does not exist", id)
	}
	return r
}

// LookupTransaction - a record by id
func (t *Token) LookupTransaction(id uint64) (*ledger.Record, error) {
	t.Lock()
	defer t.Unlock()

	r, ok := t.ledger.Get(t.store.Committed(), id)
	if !ok {
		return nil, fault.TransactionNotFound
	}
	return r, nil
}

// GetTransactions - records with ids in [start, start+limit)
func (t *Token) GetTransactions(start uint64, limit uint64) ([]*ledger.Record, error) {
	if limit > MaximumQueryLength {
		return nil, fault.LimitTooLarge
	}
	t.Lock()
	defer t.Unlock()
	return t.ledger.GetRange(start, limit), nil
}

// GetUserTransactions - a page of the records involving one holder
//
// start and limit count the holder's own records, not ledger ids
func (t *Token) GetUserTransactions(who account.Holder, start uint64, limit uint64) ([]*ledger.Record, error) {
	if limit > MaximumQueryLength {
		return nil, fault.LimitTooLarge
	}
	t.Lock()
	defer t.Unlock()
	return t.ledger.Participant(who).Page(start, limit), nil
}

// GetUserTransactionCount - number of records involving one holder
func (t *Token) GetUserTransactionCount(who account.Holder) uint64 {
	t.Lock()
	defer t.Unlock()
	return t.ledger.Count(who)
}

// GetUserTransactionAmount - total amount of the records involving one holder
func (t *Token) GetUserTransactionAmount(who account.Holder) amount.Amount {
	t.Lock()
	defer t.Unlock()

	total := amount.Zero
	c := t.ledger.Participant(who)
	for r, ok := c.Next(); ok; r, ok = c.Next() {
		total = total.Add(r.Amount)
	}
	return total
}
