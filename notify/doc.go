// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/notifier.go -package=mocks github.com/bitmark-inc/tokend/notify Notifier

// Package notify - deliver a transaction to its recipient at most once
//
// A delivery moves a record from pending to notified.  The persisted
// flag is only set after the outbound call succeeds, so a separate
// in-flight marker guards the window while the call is outstanding:
// the marker is added before the caller's lock is released and any
// concurrent attempt for the same id sees it and fails.  Markers are
// removed by their holder when the call returns and expire on their
// own after InFlightExpiry so a call that never completes cannot
// block an id for ever.  The call bound never exceeds
// MaximumCallTimeout, which keeps every marker alive for longer than
// the call it guards.
package notify
