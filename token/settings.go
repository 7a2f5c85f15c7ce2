// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/storage"
)

// owner only update of the persisted settings
//
// caller must hold the lock
func (t *Token) update(caller account.Holder, f func(s *stats)) error {
	return t.execute(func(trx storage.Transaction) error {
		s, err := t.ownerSettings(trx, caller)
		if nil != err {
			return err
		}
		f(s)
		trx.Set(t.stats, t.principal.Bytes(), s.pack())
		return nil
	})
}

// SetName - change the token name
func (t *Token) SetName(caller account.Holder, name string) error {
	t.Lock()
	defer t.Unlock()
	return t.update(caller, func(s *stats) { s.Name = name })
}

// SetLogo - change the token logo
func (t *Token) SetLogo(caller account.Holder, logo string) error {
	t.Lock()
	defer t.Unlock()
	return t.update(caller, func(s *stats) { s.Logo = logo })
}

// SetFee - change the fee charged per transaction
func (t *Token) SetFee(caller account.Holder, fee amount.Amount) error {
	t.Lock()
	defer t.Unlock()
	return t.update(caller, func(s *stats) { s.Fee = fee })
}

// SetFeeTo - change the fee collector
func (t *Token) SetFeeTo(caller account.Holder, feeTo account.Holder) error {
	t.Lock()
	defer t.Unlock()
	return t.update(caller, func(s *stats) { s.FeeTo = feeTo })
}

// SetOwner - hand the token to a new owner
func (t *Token) SetOwner(caller account.Holder, owner account.Holder) error {
	t.Lock()
	defer t.Unlock()
	return t.update(caller, func(s *stats) { s.Owner = owner })
}

// ToggleTest - flip the test flag and return its new value
func (t *Token) ToggleTest(caller account.Holder) (bool, error) {
	t.Lock()
	defer t.Unlock()

	flag := false
	err := t.update(caller, func(s *stats) {
		s.IsTest = !s.IsTest
		flag = s.IsTest
	})
	return flag, err
}
