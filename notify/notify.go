// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
)

// timing constants
//
// the call bound is clamped to MaximumCallTimeout so an in-flight
// marker always outlives the call it guards
const (
	DefaultCallTimeout = 30 * time.Second
	InFlightExpiry     = 5 * time.Minute
	MaximumCallTimeout = InFlightExpiry * 4 / 5
	cleanupInterval    = time.Minute
)

// Marker - an in-flight marker held by one caller
type Marker struct {
	id     uint64
	serial uint64
}

// Id - transaction the marker guards
func (m Marker) Id() uint64 {
	return m.id
}

// Notifier - the outbound call
//
// must return once ctx is done
type Notifier interface {
	Notify(ctx context.Context, receiver account.Holder, tx *SignedTx) error
}

// Protocol - in-flight tracking and signed delivery
type Protocol struct {
	sync.RWMutex

	log        *logger.L
	inFlight   *cache.Cache
	notifier   Notifier
	principal  account.Holder
	privateKey ed25519.PrivateKey
	timeout    time.Duration
	expiry     time.Duration
	serial     uint64
}

// New - create a protocol instance
//
// a non-positive timeout selects DefaultCallTimeout
func New(notifier Notifier, principal account.Holder, privateKey ed25519.PrivateKey, timeout time.Duration) *Protocol {
	return newProtocol(notifier, principal, privateKey, timeout, InFlightExpiry)
}

func newProtocol(notifier Notifier, principal account.Holder, privateKey ed25519.PrivateKey, timeout time.Duration, expiry time.Duration) *Protocol {
	p := &Protocol{
		log:        logger.New("notify"),
		inFlight:   cache.New(expiry, cleanupInterval),
		notifier:   notifier,
		principal:  principal,
		privateKey: privateKey,
		expiry:     expiry,
	}
	p.timeout = p.clamp(timeout)
	return p
}

// Acquire - set the in-flight marker for an id
//
// fails if a delivery for the id is already outstanding
func (p *Protocol) Acquire(id uint64) (Marker, error) {
	m := Marker{
		id:     id,
		serial: atomic.AddUint64(&p.serial, 1),
	}
	p.Lock()
	err := p.inFlight.Add(markerKey(id), m.serial, cache.DefaultExpiration)
	p.Unlock()
	if nil != err {
		p.log.Debugf("acquire: %d  already in flight", id)
		return Marker{}, fault.NotificationInProgress
	}
	return m, nil
}

// Release - clear an in-flight marker
//
// only the marker added by the matching Acquire is removed
func (p *Protocol) Release(m Marker) {
	p.Lock()
	defer p.Unlock()

	key := markerKey(m.id)
	serial, found := p.inFlight.Get(key)
	if !found || serial.(uint64) != m.serial {
		p.log.Warnf("release: %d  marker no longer held", m.id)
		return
	}
	p.inFlight.Delete(key)
}

// InFlight - true while a delivery for the id is outstanding
func (p *Protocol) InFlight(id uint64) bool {
	_, found := p.inFlight.Get(markerKey(id))
	return found
}

// Deliver - sign a packed record and make the outbound call
//
// the call is bounded by the configured timeout; any failure is
// reported as fault.NotificationFailed
func (p *Protocol) Deliver(ctx context.Context, id uint64, receiver account.Holder, packed []byte) error {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout())
	defer cancel()

	tx := Sign(p.principal, p.privateKey, packed)
	p.log.Infof("deliver: %d  receiver: %s  request: %s", id, receiver, tx.RequestId)

	err := p.notifier.Notify(ctx, receiver, tx)
	if nil != err {
		p.log.Errorf("deliver: %d  receiver: %s  error: %s", id, receiver, err)
		return fault.NotificationFailed
	}
	return nil
}

// Timeout - bound on a single outbound call
func (p *Protocol) Timeout() time.Duration {
	p.RLock()
	defer p.RUnlock()
	return p.timeout
}

// SetTimeout - change the bound on future calls
//
// a non-positive timeout selects DefaultCallTimeout; anything longer
// than MaximumCallTimeout is clamped
func (p *Protocol) SetTimeout(timeout time.Duration) {
	timeout = p.clamp(timeout)
	p.Lock()
	p.timeout = timeout
	p.Unlock()
	p.log.Infof("call timeout: %s", timeout)
}

func (p *Protocol) clamp(timeout time.Duration) time.Duration {
	maximum := p.expiry * 4 / 5
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	if timeout > maximum {
		p.log.Warnf("call timeout: %s  clamped to: %s", timeout, maximum)
		timeout = maximum
	}
	return timeout
}

// PublicKey - key receivers use to verify deliveries
func (p *Protocol) PublicKey() ed25519.PublicKey {
	return p.privateKey.Public().(ed25519.PublicKey)
}

func markerKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}
