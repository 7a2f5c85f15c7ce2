// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/util"
)

// Balances - holder balances and spending allowances of one token
//
// all mutations are staged in the caller's transaction and every
// check is made before anything is staged, so a failed call leaves
// the transaction unchanged
type Balances struct {
	log        *logger.L
	owner      []byte
	balances   *storage.PoolHandle
	allowances *storage.PoolHandle
}

// Entry - a holder and its balance
type Entry struct {
	Holder  account.Holder `json:"holder"`
	Balance amount.Amount  `json:"balance"`
}

// Approval - a spender and its remaining allowance
type Approval struct {
	Spender   account.Holder `json:"spender"`
	Allowance amount.Amount  `json:"allowance"`
}

// New - balances stored under the identity of the token service
func New(store *storage.Store, principal account.Holder) (*Balances, error) {
	balances, err := store.Pool(storage.RegionBalances)
	if nil != err {
		return nil, err
	}
	allowances, err := store.Pool(storage.RegionAllowances)
	if nil != err {
		return nil, err
	}
	return &Balances{
		log:        logger.New("balance"),
		owner:      principal.Bytes(),
		balances:   balances,
		allowances: allowances,
	}, nil
}

// BalanceOf - current balance, absent holders have zero
func (b *Balances) BalanceOf(access storage.Access, holder account.Holder) amount.Amount {
	return amount.FromBytes(access.Get(b.balances, b.owner, holder.Bytes()))
}

// Credit - add to a holder's balance
func (b *Balances) Credit(trx storage.Transaction, holder account.Holder, value amount.Amount) {
	if value.IsZero() {
		return
	}
	total := b.BalanceOf(trx, holder).Add(value)
	b.log.Tracef("credit: %s  +%s = %s", holder, value, total)
	trx.Insert(b.balances, b.owner, holder.Bytes(), total.Bytes())
}

// Debit - subtract from a holder's balance
//
// a balance that reaches zero is removed
func (b *Balances) Debit(trx storage.Transaction, holder account.Holder, value amount.Amount) error {
	if value.IsZero() {
		return nil
	}
	remaining, err := b.BalanceOf(trx, holder).Sub(value)
	if nil != err {
		return fault.InsufficientBalance
	}
	b.log.Tracef("debit: %s  -%s = %s", holder, value, remaining)
	b.store(trx, holder, remaining)
	return nil
}

func (b *Balances) store(trx storage.Transaction, holder account.Holder, value amount.Amount) {
	if value.IsZero() {
		trx.Remove(b.balances, b.owner, holder.Bytes())
	} else {
		trx.Insert(b.balances, b.owner, holder.Bytes(), value.Bytes())
	}
}

// Allowance - amount spender may still move from owner
func (b *Balances) Allowance(access storage.Access, owner account.Holder, spender account.Holder) amount.Amount {
	return amount.FromBytes(access.Get(b.allowances, b.owner, allowanceKey(owner, spender)))
}

// SetAllowance - replace an allowance, zero removes it
func (b *Balances) SetAllowance(trx storage.Transaction, owner account.Holder, spender account.Holder, value amount.Amount) {
	key := allowanceKey(owner, spender)
	if value.IsZero() {
		trx.Remove(b.allowances, b.owner, key)
	} else {
		trx.Insert(b.allowances, b.owner, key, value.Bytes())
	}
}

// ConsumeAllowance - reduce an allowance by value
func (b *Balances) ConsumeAllowance(trx storage.Transaction, owner account.Holder, spender account.Holder, value amount.Amount) error {
	remaining, err := b.Allowance(trx, owner, spender).Sub(value)
	if nil != err {
		return fault.InsufficientAllowance
	}
	b.SetAllowance(trx, owner, spender, remaining)
	return nil
}

// Holders - committed non-zero balances in holder byte order
func (b *Balances) Holders(start int, limit int) []Entry {
	elements := b.balances.List(b.owner, start, limit)
	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		entries = append(entries, Entry{
			Holder:  account.FromBytes(e.Key),
			Balance: amount.FromBytes(e.Value),
		})
	}
	return entries
}

// HolderCount - number of holders with a non-zero balance
func (b *Balances) HolderCount() int {
	return b.balances.Count(b.owner)
}

// Supply - sum of all committed balances
func (b *Balances) Supply() amount.Amount {
	total := amount.Zero
	b.balances.Map(b.owner, nil, func(key []byte, value []byte) bool {
		total = total.Add(amount.FromBytes(value))
		return true
	})
	return total
}

// AllowanceSize - number of non-zero allowances
func (b *Balances) AllowanceSize() int {
	return b.allowances.Count(b.owner)
}

// UserApprovals - every spender the owner has approved
func (b *Balances) UserApprovals(owner account.Holder) []Approval {
	prefix := ownerPrefix(owner)
	approvals := make([]Approval, 0, 4)
	b.allowances.Map(b.owner, prefix, func(key []byte, value []byte) bool {
		approvals = append(approvals, Approval{
			Spender:   account.FromBytes(key[len(prefix):]),
			Allowance: amount.FromBytes(value),
		})
		return true
	})
	return approvals
}

// Varint64(length) ++ owner
func ownerPrefix(owner account.Holder) []byte {
	id := owner.Bytes()
	return append(util.ToVarint64(uint64(len(id))), id...)
}

// Varint64(length) ++ owner ++ spender
func allowanceKey(owner account.Holder, spender account.Holder) []byte {
	return append(ownerPrefix(owner), spender.Bytes()...)
}
