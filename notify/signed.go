// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokend/account"
)

// SignedTx - the payload delivered to a receiver
type SignedTx struct {
	Principal    account.Holder `json:"principal"`
	PublicKey    []byte         `json:"public_key"`
	Signature    []byte         `json:"signature"`
	SerializedTx []byte         `json:"serialized_tx"`
	RequestId    string         `json:"request_id"`
}

// Sign - sign a packed ledger record
//
// the signature covers the SHA3-256 digest of the packed record
func Sign(principal account.Holder, privateKey ed25519.PrivateKey, packed []byte) *SignedTx {
	digest := sha3.Sum256(packed)
	return &SignedTx{
		Principal:    principal,
		PublicKey:    privateKey.Public().(ed25519.PublicKey),
		Signature:    ed25519.Sign(privateKey, digest[:]),
		SerializedTx: packed,
		RequestId:    uuid.New().String(),
	}
}

// Verify - check the signature against the embedded public key
func (s *SignedTx) Verify() bool {
	if ed25519.PublicKeySize != len(s.PublicKey) {
		return false
	}
	digest := sha3.Sum256(s.SerializedTx)
	return ed25519.Verify(s.PublicKey, digest[:], s.Signature)
}
