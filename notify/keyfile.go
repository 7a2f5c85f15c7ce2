// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/util"
)

// key files hold one tagged hex line
const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
)

// MakeKeyFiles - create a signing key pair and write each half to
// its own file
//
// the private file holds the 32 byte seed; existing files are never
// overwritten
func MakeKeyFiles(publicKeyFileName string, privateKeyFileName string) (ed25519.PublicKey, error) {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return nil, fault.KeyFileExists
	}

	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if nil != err {
		return nil, err
	}

	public := taggedPublic + hex.EncodeToString(publicKey) + "\n"
	private := taggedPrivate + hex.EncodeToString(privateKey.Seed()) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(public), 0644); nil != err {
		return nil, err
	}
	if err = ioutil.WriteFile(privateKeyFileName, []byte(private), 0600); nil != err {
		os.Remove(publicKeyFileName)
		return nil, err
	}
	return publicKey, nil
}

// ReadPrivateKeyFile - load a signing key written by MakeKeyFiles
func ReadPrivateKeyFile(fileName string) (ed25519.PrivateKey, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ParsePrivateKey(string(data))
}

// ParsePrivateKey - decode a tagged private key line
func ParsePrivateKey(text string) (ed25519.PrivateKey, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, taggedPrivate) {
		return nil, fault.InvalidPrivateKey
	}
	seed, err := hex.DecodeString(s[len(taggedPrivate):])
	if nil != err || ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidPrivateKey
	}
	return ed25519.NewKeyFromSeed(seed), nil
}
