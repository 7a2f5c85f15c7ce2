// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/tokend/fault"
)

// MaximumLength - longest identity accepted, in bytes
const MaximumLength = 64

// Holder - an opaque account identity
//
// holders are plain values: compare with == and use directly as
// map keys. The zero value is the anonymous identity.
type Holder struct {
	id string
}

// New - holder from raw identity bytes
func New(identity []byte) (Holder, error) {
	if len(identity) > MaximumLength {
		return Holder{}, fault.InvalidKeyLength
	}
	return Holder{id: string(identity)}, nil
}

// FromBytes - holder from raw identity bytes known to be valid
//
// used when reading back identities this package produced
func FromBytes(identity []byte) Holder {
	return Holder{id: string(identity)}
}

// FromBase58 - decode the text form of a holder
func FromBase58(s string) (Holder, error) {
	if "" == s {
		return Holder{}, fault.CannotDecodeAccount
	}
	identity, err := base58.Decode(s)
	if nil != err {
		return Holder{}, fault.CannotDecodeAccount
	}
	return New(identity)
}

// Bytes - raw identity bytes
func (h Holder) Bytes() []byte {
	return []byte(h.id)
}

// IsZero - true for the anonymous identity
func (h Holder) IsZero() bool {
	return "" == h.id
}

// String - base58 text form
func (h Holder) String() string {
	if h.IsZero() {
		return ""
	}
	return base58.Encode([]byte(h.id))
}

// MarshalText - convert holder to base58 text
func (h Holder) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - convert base58 text to a holder
func (h *Holder) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*h = Holder{}
		return nil
	}
	holder, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*h = holder
	return nil
}
