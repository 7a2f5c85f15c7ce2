// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/fixtures"
)

// waits for the call bound to pass
type stalledNotifier struct {
	calls int32
}

func (s *stalledNotifier) Notify(ctx context.Context, receiver account.Holder, tx *SignedTx) error {
	atomic.AddInt32(&s.calls, 1)
	<-ctx.Done()
	return ctx.Err()
}

func TestMarkerOutlivesCall(t *testing.T) {
	_, key, err := ed25519.GenerateKey(nil)
	require.Nil(t, err, "generate key")

	expiry := time.Second
	n := &stalledNotifier{}
	p := newProtocol(n, fixtures.Principal, key, time.Second, expiry)
	p.SetTimeout(2 * expiry)
	require.True(t, p.Timeout() < expiry, "call bound not clamped: %s", p.Timeout())

	first, err := p.Acquire(1)
	require.Nil(t, err, "first acquire")

	done := make(chan error, 1)
	go func() {
		done <- p.Deliver(context.Background(), 1, fixtures.Bob, []byte("record"))
	}()

	// while the first call is outstanding the id stays blocked
	time.Sleep(p.Timeout() / 2)
	_, err = p.Acquire(1)
	assert.Equal(t, fault.NotificationInProgress, err, "second acquire during call")

	assert.Equal(t, fault.NotificationFailed, <-done, "stalled call")
	assert.True(t, p.InFlight(1), "marker expired before the call returned")
	p.Release(first)
	assert.False(t, p.InFlight(1), "marker not released")
	assert.Equal(t, int32(1), atomic.LoadInt32(&n.calls), "outbound calls")
}

func TestReleaseOnlyOwnMarker(t *testing.T) {
	_, key, err := ed25519.GenerateKey(nil)
	require.Nil(t, err, "generate key")

	expiry := 50 * time.Millisecond
	p := newProtocol(nil, fixtures.Principal, key, 0, expiry)

	stale, err := p.Acquire(3)
	require.Nil(t, err, "first acquire")

	require.Eventually(t, func() bool { return !p.InFlight(3) }, time.Second, 10*time.Millisecond, "marker never expired")

	current, err := p.Acquire(3)
	require.Nil(t, err, "acquire after expiry")

	p.Release(stale)
	assert.True(t, p.InFlight(3), "stale release removed the current marker")

	p.Release(current)
	assert.False(t, p.InFlight(3), "current release")
}
