// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"context"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

// Notify - deliver a record to its recipient at most once
//
// the lock is released while the outbound call is in progress; the
// in-flight marker stops a concurrent call for the same id and the
// record is only marked notified once delivery succeeds
func (t *Token) Notify(ctx context.Context, caller account.Holder, id uint64) error {
	t.Lock()

	r, ok := t.ledger.Get(t.store.Committed(), id)
	if !ok {
		t.Unlock()
		return fault.TransactionNotFound
	}
	if r.Notified {
		t.Unlock()
		return fault.AlreadyNotified
	}
	if nil == t.notifier {
		t.Unlock()
		return fault.NotificationFailed
	}
	marker, err := t.notifier.Acquire(id)
	if nil != err {
		t.Unlock()
		return err
	}

	t.Unlock()

	t.log.Debugf("notify: %d  caller: %s  receiver: %s", id, caller, r.To)
	err = t.notifier.Deliver(ctx, id, r.To, r.Pack())

	t.Lock()
	defer t.Unlock()
	defer t.notifier.Release(marker)

	if nil != err {
		return err
	}
	return t.execute(func(trx storage.Transaction) error {
		return t.ledger.MarkNotified(trx, id)
	})
}

// TransferAndNotify - transfer then notify the recipient
//
// a failed notification does not undo the transfer: the id is
// returned with the error and Notify can be retried later
func (t *Token) TransferAndNotify(ctx context.Context, caller account.Holder, to account.Holder, value amount.Amount, feeLimit *amount.Amount) (uint64, error) {
	id, err := t.Transfer(caller, to, value, feeLimit)
	if nil != err {
		return 0, err
	}
	return id, t.Notify(ctx, caller, id)
}
