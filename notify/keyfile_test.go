// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify_test

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/notify"
)

func TestKeyFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "notify")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "notify.public")
	private := filepath.Join(dir, "notify.private")

	publicKey, err := notify.MakeKeyFiles(public, private)
	require.Nil(t, err, "make key files")

	privateKey, err := notify.ReadPrivateKeyFile(private)
	require.Nil(t, err, "read private key")
	assert.Equal(t, publicKey, privateKey.Public(), "key halves do not match")

	text, err := ioutil.ReadFile(public)
	require.Nil(t, err, "read public key")
	assert.Equal(t, "PUBLIC:"+hex.EncodeToString(publicKey), strings.TrimSpace(string(text)), "public key file")

	_, err = notify.MakeKeyFiles(public, private)
	assert.Equal(t, fault.KeyFileExists, err, "files overwritten")

	_, err = notify.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.InvalidPrivateKey, err, "public file read as private")
}

func TestParsePrivateKey(t *testing.T) {
	items := []string{
		"",
		"PRIVATE:",
		"PRIVATE:zz",
		"PRIVATE:0102",
		"0000000000000000000000000000000000000000000000000000000000000000",
	}
	for i, item := range items {
		_, err := notify.ParsePrivateKey(item)
		assert.Equal(t, fault.InvalidPrivateKey, err, "%d: accepted: %q", i, item)
	}

	_, err := notify.ParsePrivateKey("  PRIVATE:" + strings.Repeat("ab", 32) + "\n")
	assert.Nil(t, err, "valid key rejected")
}
