// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/storage"
)

// Transfer - move value from caller to a recipient
//
// the fee is charged on top of value; if feeLimit is given the
// transfer fails when the current fee is above it
func (t *Token) Transfer(caller account.Holder, to account.Holder, value amount.Amount, feeLimit *amount.Amount) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	return t.transfer(caller, to, value, feeLimit)
}

// caller must hold the lock
func (t *Token) transfer(caller account.Holder, to account.Holder, value amount.Amount, feeLimit *amount.Amount) (uint64, error) {
	var id uint64
	err := t.execute(func(trx storage.Transaction) error {
		s, err := t.settings(trx)
		if nil != err {
			return err
		}
		if nil != feeLimit && s.Fee.Cmp(*feeLimit) > 0 {
			return fault.FeeExceededLimit
		}

		err = t.balances.Debit(trx, caller, value.Add(s.Fee))
		if nil != err {
			return err
		}
		t.balances.Credit(trx, to, value)
		err = t.chargeFee(trx, s, s.Fee)
		if nil != err {
			return err
		}

		id = t.ledger.Append(trx, ledger.Record{
			Kind:      ledger.TransferKind,
			Caller:    caller,
			From:      caller,
			To:        to,
			Amount:    value,
			Fee:       s.Fee,
			Timestamp: t.now(),
		})
		return nil
	})
	if nil != err {
		t.log.Debugf("transfer: %s → %s  value: %s  error: %s", caller, to, value, err)
		return 0, err
	}
	return id, nil
}

// TransferIncludeFee - move value from caller with the fee deducted
//
// the sender is reduced by exactly value and the recipient receives
// value minus the fee
func (t *Token) TransferIncludeFee(caller account.Holder, to account.Holder, value amount.Amount) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	var id uint64
	err := t.execute(func(trx storage.Transaction) error {
		s, err := t.settings(trx)
		if nil != err {
			return err
		}

		received, err := value.Sub(s.Fee)
		if nil != err {
			return fault.AmountTooSmall
		}

		err = t.balances.Debit(trx, caller, value)
		if nil != err {
			return err
		}
		t.balances.Credit(trx, to, received)
		err = t.chargeFee(trx, s, s.Fee)
		if nil != err {
			return err
		}

		id = t.ledger.Append(trx, ledger.Record{
			Kind:      ledger.TransferKind,
			Caller:    caller,
			From:      caller,
			To:        to,
			Amount:    received,
			Fee:       s.Fee,
			Timestamp: t.now(),
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// TransferFrom - move value between two holders using an allowance
//
// the allowance granted by from to caller is reduced by value and
// from also pays the fee
func (t *Token) TransferFrom(caller account.Holder, from account.Holder, to account.Holder, value amount.Amount) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	var id uint64
	err := t.execute(func(trx storage.Transaction) error {
		s, err := t.settings(trx)
		if nil != err {
			return err
		}

		err = t.balances.ConsumeAllowance(trx, from, caller, value)
		if nil != err {
			return err
		}
		err = t.balances.Debit(trx, from, value.Add(s.Fee))
		if nil != err {
			return err
		}
		t.balances.Credit(trx, to, value)
		err = t.chargeFee(trx, s, s.Fee)
		if nil != err {
			return err
		}

		id = t.ledger.Append(trx, ledger.Record{
			Kind:      ledger.TransferFromKind,
			Caller:    caller,
			From:      from,
			To:        to,
			Amount:    value,
			Fee:       s.Fee,
			Timestamp: t.now(),
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// Approve - let spender move up to value from the caller
//
// replaces any previous allowance; the caller pays the fee
func (t *Token) Approve(caller account.Holder, spender account.Holder, value amount.Amount) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	var id uint64
	err := t.execute(func(trx storage.Transaction) error {
		s, err := t.settings(trx)
		if nil != err {
			return err
		}

		err = t.balances.Debit(trx, caller, s.Fee)
		if nil != err {
			return err
		}
		err = t.chargeFee(trx, s, s.Fee)
		if nil != err {
			return err
		}
		t.balances.SetAllowance(trx, caller, spender, value)

		id = t.ledger.Append(trx, ledger.Record{
			Kind:      ledger.ApproveKind,
			Caller:    caller,
			From:      caller,
			To:        spender,
			Amount:    value,
			Fee:       s.Fee,
			Timestamp: t.now(),
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// Mint - create new tokens for a recipient
//
// only the owner may mint unless this is a test token
func (t *Token) Mint(caller account.Holder, to account.Holder, value amount.Amount) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	var id uint64
	err := t.execute(func(trx storage.Transaction) error {
		s, err := t.settings(trx)
		if nil != err {
			return err
		}
		if !s.IsTest && caller != s.Owner {
			return fault.Unauthorised
		}

		t.balances.Credit(trx, to, value)
		s.TotalSupply = s.TotalSupply.Add(value)
		trx.Set(t.stats, t.principal.Bytes(), s.pack())

		id = t.ledger.Append(trx, ledger.Record{
			Kind:      ledger.MintKind,
			Caller:    caller,
			From:      caller,
			To:        to,
			Amount:    value,
			Timestamp: t.now(),
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// Burn - destroy tokens held by the caller
func (t *Token) Burn(caller account.Holder, value amount.Amount) (uint64, error) {
	t.Lock()
	defer t.Unlock()

	var id uint64
	err := t.execute(func(trx storage.Transaction) error {
		s, err := t.settings(trx)
		if nil != err {
			return err
		}

		err = t.balances.Debit(trx, caller, value)
		if nil != err {
			return err
		}
		s.TotalSupply, err = s.TotalSupply.Sub(value)
		if nil != err {
			return err
		}
		trx.Set(t.stats, t.principal.Bytes(), s.pack())

		id = t.ledger.Append(trx, ledger.Record{
			Kind:      ledger.BurnKind,
			Caller:    caller,
			From:      caller,
			To:        caller,
			Amount:    value,
			Timestamp: t.now(),
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// split a collected fee between the auction pool and the collector
func (t *Token) chargeFee(trx storage.Transaction, s *stats, fee amount.Amount) error {
	if fee.IsZero() {
		return nil
	}
	ratio := t.auction.State(trx).FeeRatio
	retained, err := fee.MulRatio(ratio)
	if nil != err {
		return err
	}
	collected, err := fee.Sub(retained)
	if nil != err {
		return err
	}
	collector := s.FeeTo
	if collector.IsZero() {
		collector = s.Owner
	}
	t.balances.Credit(trx, t.principal, retained)
	t.balances.Credit(trx, collector, collected)
	return nil
}
