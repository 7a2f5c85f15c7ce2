// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/background"
)

type ticker struct {
	ticks    int64
	finished int32
	seen     interface{}
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	state.seen = args
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&state.ticks, 1)
		}
	}
	atomic.StoreInt32(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	h := background.Start(background.Processes{p1, p2}, "args")
	time.Sleep(20 * time.Millisecond)
	h.Stop()

	for i, p := range []*ticker{p1, p2} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&p.finished), "process %d did not finish", i)
		assert.True(t, atomic.LoadInt64(&p.ticks) > 0, "process %d never ran", i)
		assert.Equal(t, "args", p.seen, "process %d wrong args", i)
	}
}

func TestStopTwice(t *testing.T) {
	p := &ticker{}
	h := background.Start(background.Processes{p}, nil)
	h.Stop()
	h.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&p.finished), "process did not finish")
}

func TestEmpty(t *testing.T) {
	h := background.Start(nil, nil)
	h.Stop()
}
