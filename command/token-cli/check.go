// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
)

var (
	ErrRequiredAccount = fault.InvalidError("account is required")
	ErrRequiredAmount  = fault.InvalidError("amount is required")
	ErrRequiredId      = fault.InvalidError("record id is required")
)

// account flag is required
func checkAccount(flag string, text string) (account.Holder, error) {
	if "" == text {
		return account.Holder{}, fmt.Errorf("%s: %s", flag, ErrRequiredAccount)
	}
	h, err := account.FromBase58(text)
	if nil != err {
		return account.Holder{}, fmt.Errorf("%s: %q  error: %s", flag, text, err)
	}
	return h, nil
}

// account flag may be blank
func checkOptionalAccount(flag string, text string) (account.Holder, error) {
	if "" == text {
		return account.Holder{}, nil
	}
	return checkAccount(flag, text)
}

// amount flag is required
func checkAmount(flag string, text string) (amount.Amount, error) {
	if "" == text {
		return amount.Zero, fmt.Errorf("%s: %s", flag, ErrRequiredAmount)
	}
	a, err := amount.FromString(text)
	if nil != err {
		return amount.Zero, fmt.Errorf("%s: %q  error: %s", flag, text, err)
	}
	return a, nil
}
