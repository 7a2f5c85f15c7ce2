// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/balance"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/fixtures"
	"github.com/bitmark-inc/tokend/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.Store, *balance.Balances, func()) {
	name := fixtures.DatabaseName(t.Name())
	_ = os.RemoveAll(name)
	s, err := storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "storage open")

	b, err := balance.New(s, fixtures.Principal)
	require.Nil(t, err, "balance new")

	return s, b, func() {
		s.Close()
		_ = os.RemoveAll(name)
	}
}

func TestCreditDebit(t *testing.T) {
	s, b, done := setup(t)
	defer done()

	trx := s.Begin()
	b.Credit(trx, fixtures.Alice, amount.New(1000))
	err := b.Debit(trx, fixtures.Alice, amount.New(300))
	require.Nil(t, err, "debit")
	b.Credit(trx, fixtures.Bob, amount.New(300))
	require.Nil(t, trx.Commit(), "commit")

	committed := s.Committed()
	assert.Equal(t, "700", b.BalanceOf(committed, fixtures.Alice).String(), "alice")
	assert.Equal(t, "300", b.BalanceOf(committed, fixtures.Bob).String(), "bob")
	assert.Equal(t, "0", b.BalanceOf(committed, fixtures.Carol).String(), "carol")
	assert.Equal(t, "1000", b.Supply().String(), "supply")
	assert.Equal(t, 2, b.HolderCount(), "holders")
}

func TestDebitInsufficient(t *testing.T) {
	s, b, done := setup(t)
	defer done()

	trx := s.Begin()
	b.Credit(trx, fixtures.Alice, amount.New(10))
	require.Nil(t, trx.Commit(), "commit")

	trx = s.Begin()
	err := b.Debit(trx, fixtures.Alice, amount.New(11))
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")
	assert.Equal(t, "10", b.BalanceOf(trx, fixtures.Alice).String(), "staged change")
	trx.Abort()

	assert.Equal(t, "10", b.BalanceOf(s.Committed(), fixtures.Alice).String(), "balance changed")
}

func TestZeroBalancePruned(t *testing.T) {
	s, b, done := setup(t)
	defer done()

	trx := s.Begin()
	b.Credit(trx, fixtures.Alice, amount.New(10))
	require.Nil(t, b.Debit(trx, fixtures.Alice, amount.New(10)), "debit")
	b.Credit(trx, fixtures.Bob, amount.New(5))
	require.Nil(t, trx.Commit(), "commit")

	holders := b.Holders(0, 10)
	require.Equal(t, 1, len(holders), "holder count")
	assert.Equal(t, fixtures.Bob, holders[0].Holder, "remaining holder")
	assert.Equal(t, "5", holders[0].Balance.String(), "remaining balance")
}

func TestAllowances(t *testing.T) {
	s, b, done := setup(t)
	defer done()

	trx := s.Begin()
	b.SetAllowance(trx, fixtures.Alice, fixtures.Bob, amount.New(50))
	b.SetAllowance(trx, fixtures.Alice, fixtures.Carol, amount.New(20))
	b.SetAllowance(trx, fixtures.Bob, fixtures.Carol, amount.New(1))
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, 3, b.AllowanceSize(), "allowance size")

	approvals := b.UserApprovals(fixtures.Alice)
	require.Equal(t, 2, len(approvals), "approvals")
	spenders := []string{approvals[0].Spender.String(), approvals[1].Spender.String()}
	assert.Contains(t, spenders, fixtures.Bob.String(), "bob approved")
	assert.Contains(t, spenders, fixtures.Carol.String(), "carol approved")

	trx = s.Begin()
	err := b.ConsumeAllowance(trx, fixtures.Alice, fixtures.Bob, amount.New(51))
	assert.Equal(t, fault.InsufficientAllowance, err, "over allowance")
	err = b.ConsumeAllowance(trx, fixtures.Alice, fixtures.Bob, amount.New(50))
	assert.Nil(t, err, "whole allowance")
	require.Nil(t, trx.Commit(), "commit")

	committed := s.Committed()
	assert.True(t, b.Allowance(committed, fixtures.Alice, fixtures.Bob).IsZero(), "allowance left")
	assert.Equal(t, 2, b.AllowanceSize(), "zero allowance kept")
	assert.Equal(t, "1", b.Allowance(committed, fixtures.Bob, fixtures.Carol).String(), "unrelated allowance")
}
