// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/counter"
)

func TestGauge(t *testing.T) {
	var g counter.Gauge

	assert.Equal(t, uint64(0), g.Current(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		assert.True(t, g.Acquire(0), "unlimited acquire %d", i)
	}
	assert.Equal(t, uint64(5), g.Current(), "after acquire")

	g.Release()
	g.Release()
	assert.Equal(t, uint64(3), g.Current(), "after release")
	assert.Equal(t, uint64(5), g.Peak(), "peak")
	assert.Equal(t, uint64(5), g.Total(), "total")
}

func TestGaugeLimit(t *testing.T) {
	var g counter.Gauge

	assert.True(t, g.Acquire(2), "first")
	assert.True(t, g.Acquire(2), "second")
	assert.False(t, g.Acquire(2), "third must be refused")
	assert.Equal(t, uint64(2), g.Current(), "refused acquire counted")

	g.Release()
	assert.True(t, g.Acquire(2), "slot freed")
}

func TestGaugeNoUnderflow(t *testing.T) {
	var g counter.Gauge
	g.Release()
	assert.Equal(t, uint64(0), g.Current(), "release below zero")
}

func TestGaugeConcurrent(t *testing.T) {
	var g counter.Gauge
	var wg sync.WaitGroup

	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Acquire(0) {
				g.Release()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(0), g.Current(), "gauge not balanced")
	assert.Equal(t, uint64(50), g.Total(), "total")
	assert.True(t, g.Peak() >= 1, "peak")
}
