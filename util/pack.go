// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/tokend/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// Packer - accumulates a varint based binary record
//
// each field is appended in order; byte strings and text are
// preceded by their length as a Varint64
type Packer []byte

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// the first eight bytes carry 7 bits each with the top bit as an
// extension flag, a ninth byte (if needed) carries the remaining 8 bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 0; i < Varint64MaximumBytes-1; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value&0x7f|0x80))
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer) && count < Varint64MaximumBytes; count += 1 {
		b := uint64(buffer[count])
		if count == Varint64MaximumBytes-1 {
			return result | b<<shift, count + 1
		}
		result |= b & 0x7f << shift
		if 0 == b&0x80 {
			return result, count + 1
		}
		shift += 7
	}
	return 0, 0
}

// Uint64 - append a Varint64
func (p Packer) Uint64(value uint64) Packer {
	return append(p, ToVarint64(value)...)
}

// Bytes - append a length prefixed byte string
func (p Packer) Bytes(data []byte) Packer {
	p = p.Uint64(uint64(len(data)))
	return append(p, data...)
}

// String - append a length prefixed UTF-8 string
func (p Packer) String(s string) Packer {
	return p.Bytes([]byte(s))
}

// Bool - append a single byte flag
func (p Packer) Bool(flag bool) Packer {
	if flag {
		return append(p, 1)
	}
	return append(p, 0)
}

// Unpacker - reads the fields written by a Packer in the same order
//
// the first failure is sticky: all later reads return zero values
// and Err reports fault.RecordTruncated
type Unpacker struct {
	buffer []byte
	err    error
}

// NewUnpacker - start reading a packed record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{buffer: buffer}
}

// Uint64 - read a Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := FromVarint64(u.buffer)
	if 0 == n {
		u.err = fault.RecordTruncated
		return 0
	}
	u.buffer = u.buffer[n:]
	return value
}

// Bytes - read a length prefixed byte string, the result is a copy
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if uint64(len(u.buffer)) < length {
		u.err = fault.RecordTruncated
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[:length])
	u.buffer = u.buffer[length:]
	return data
}

// String - read a length prefixed string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Bool - read a single byte flag
func (u *Unpacker) Bool() bool {
	if nil != u.err {
		return false
	}
	if 0 == len(u.buffer) {
		u.err = fault.RecordTruncated
		return false
	}
	flag := 0 != u.buffer[0]
	u.buffer = u.buffer[1:]
	return flag
}

// Err - the first error encountered
func (u *Unpacker) Err() error {
	return u.err
}

// Remaining - count of unread bytes
func (u *Unpacker) Remaining() int {
	return len(u.buffer)
}
