// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/util"
)

// Kind - type of a ledger record
type Kind uint64

// enumerate the possible record kinds
// this is encoded as a Varint64 at the start of a packed record
const (
	NullKind              = Kind(iota)
	TransferKind          = Kind(iota)
	ApproveKind           = Kind(iota)
	MintKind              = Kind(iota)
	BurnKind              = Kind(iota)
	TransferFromKind      = Kind(iota)
	AuctionSettlementKind = Kind(iota)
	// this item must be last
	kindLimit = Kind(iota)
)

var kindNames = map[Kind]string{
	TransferKind:          "Transfer",
	ApproveKind:           "Approve",
	MintKind:              "Mint",
	BurnKind:              "Burn",
	TransferFromKind:      "TransferFrom",
	AuctionSettlementKind: "AuctionSettlement",
}

// String - name of the kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// MarshalText - kind as its name
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fault.UnknownRecordKind
	}
	return []byte(k.String()), nil
}

// UnmarshalText - kind from its name
func (k *Kind) UnmarshalText(s []byte) error {
	for kind, name := range kindNames {
		if name == string(s) {
			*k = kind
			return nil
		}
	}
	return fault.UnknownRecordKind
}

// Record - one entry of the transaction history
//
// immutable once appended apart from the Notified flag
type Record struct {
	Id        uint64         `json:"id"`
	Kind      Kind           `json:"kind"`
	Caller    account.Holder `json:"caller"`
	From      account.Holder `json:"from"`
	To        account.Holder `json:"to"`
	Amount    amount.Amount  `json:"amount"`
	Fee       amount.Amount  `json:"fee"`
	Timestamp time.Time      `json:"timestamp"`
	Notified  bool           `json:"notified"`
}

// Involves - true if the holder is caller, sender or recipient
func (r *Record) Involves(holder account.Holder) bool {
	return r.Caller == holder || r.From == holder || r.To == holder
}

// Pack - binary form of a record
//
//	Varint64(kind) ++ Varint64(id) ++ caller ++ from ++ to ++
//	amount ++ fee ++ Varint64(timestamp) ++ notified
//
// holders and amounts are length prefixed byte strings
func (r *Record) Pack() []byte {
	message := util.Packer{}
	message = message.Uint64(uint64(r.Kind))
	message = message.Uint64(r.Id)
	message = message.Bytes(r.Caller.Bytes())
	message = message.Bytes(r.From.Bytes())
	message = message.Bytes(r.To.Bytes())
	message = message.Bytes(r.Amount.Bytes())
	message = message.Bytes(r.Fee.Bytes())
	message = message.Uint64(uint64(r.Timestamp.UnixNano()))
	message = message.Bool(r.Notified)
	return message
}

// Unpack - turn a byte slice back into a record
func Unpack(buffer []byte) (*Record, error) {
	u := util.NewUnpacker(buffer)

	kind := Kind(u.Uint64())
	r := &Record{
		Kind:      kind,
		Id:        u.Uint64(),
		Caller:    account.FromBytes(u.Bytes()),
		From:      account.FromBytes(u.Bytes()),
		To:        account.FromBytes(u.Bytes()),
		Amount:    amount.FromBytes(u.Bytes()),
		Fee:       amount.FromBytes(u.Bytes()),
		Timestamp: time.Unix(0, int64(u.Uint64())).UTC(),
		Notified:  u.Bool(),
	}
	if err := u.Err(); nil != err {
		return nil, err
	}
	if NullKind == kind || kind >= kindLimit {
		return nil, fault.UnknownRecordKind
	}
	return r, nil
}
