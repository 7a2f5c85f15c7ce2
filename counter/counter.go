// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - concurrent connection gauge for the RPC listeners
package counter

import (
	"sync/atomic"
)

// Gauge - live count of open connections with its high-water mark
//
// the zero value is ready to use
type Gauge struct {
	current uint64
	peak    uint64
	total   uint64
}

// Acquire - one more connection; false if this would exceed limit
//
// a limit of zero means unlimited
func (g *Gauge) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64(&g.current)
		if 0 != limit && n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64(&g.current, n, n+1) {
			g.raisePeak(n + 1)
			atomic.AddUint64(&g.total, 1)
			return true
		}
	}
}

// Release - one connection closed
func (g *Gauge) Release() {
	for {
		n := atomic.LoadUint64(&g.current)
		if 0 == n {
			return
		}
		if atomic.CompareAndSwapUint64(&g.current, n, n-1) {
			return
		}
	}
}

// Current - connections open now
func (g *Gauge) Current() uint64 {
	return atomic.LoadUint64(&g.current)
}

// Peak - most connections ever open at once
func (g *Gauge) Peak() uint64 {
	return atomic.LoadUint64(&g.peak)
}

// Total - connections accepted since start
func (g *Gauge) Total() uint64 {
	return atomic.LoadUint64(&g.total)
}

func (g *Gauge) raisePeak(n uint64) {
	for {
		p := atomic.LoadUint64(&g.peak)
		if n <= p || atomic.CompareAndSwapUint64(&g.peak, p, n) {
			return
		}
	}
}
