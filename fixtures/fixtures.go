// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known holders for tests
var (
	Owner     = account.FromBytes([]byte("owner-0000000000000000000000000"))
	Principal = account.FromBytes([]byte("service-principal-0000000000000"))
	Alice     = account.FromBytes([]byte("alice-0000000000000000000000000"))
	Bob       = account.FromBytes([]byte("bob-00000000000000000000000000"))
	Carol     = account.FromBytes([]byte("carol-0000000000000000000000000"))
	Collector = account.FromBytes([]byte("fee-collector-00000000000000000"))
)

// SetupTestLogger - start a logger writing under the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the testing directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// DatabaseName - path for a test database inside the testing directory
func DatabaseName(name string) string {
	return filepath.Join(dir, name+".leveldb")
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
