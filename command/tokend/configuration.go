// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/auction"
	"github.com/bitmark-inc/tokend/configuration"
	"github.com/bitmark-inc/tokend/notify"
	"github.com/bitmark-inc/tokend/publish"
	"github.com/bitmark-inc/tokend/rpc/listeners"
	"github.com/bitmark-inc/tokend/token"
	"github.com/bitmark-inc/tokend/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultNotifyPrivateKeyFile = "notify.private"
	defaultNotifyTimeout        = "30s"

	defaultLevelDBDirectory = "data"
	defaultTokenDatabase    = "tokend.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "tokend.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// TokenType - the identity of the service and the metadata used the
// first time it starts
//
// amounts are decimal strings and accounts are base58
type TokenType struct {
	Principal    string `gluamapper:"principal" json:"principal"`
	Name         string `gluamapper:"name" json:"name"`
	Symbol       string `gluamapper:"symbol" json:"symbol"`
	Logo         string `gluamapper:"logo" json:"logo"`
	Decimals     uint8  `gluamapper:"decimals" json:"decimals"`
	TotalSupply  string `gluamapper:"total_supply" json:"total_supply"`
	Owner        string `gluamapper:"owner" json:"owner"`
	Fee          string `gluamapper:"fee" json:"fee"`
	FeeTo        string `gluamapper:"fee_to" json:"fee_to"`
	Test         bool   `gluamapper:"test" json:"test"`
	MinResources uint64 `gluamapper:"min_resources" json:"min_resources"`
}

// NotificationType - outbound notification settings
//
// receivers maps a base58 account to the host:port of its JSON-RPC
// receiver; timeout and receivers are reloaded when the file changes
type NotificationType struct {
	Timeout    string            `gluamapper:"timeout" json:"timeout"`
	PrivateKey string            `gluamapper:"private_key" json:"private_key"`
	Receivers  map[string]string `gluamapper:"receivers" json:"receivers"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Token        TokenType               `gluamapper:"token" json:"token"`
	ClientRPC    listeners.Configuration `gluamapper:"client_rpc" json:"client_rpc"`
	Notification NotificationType        `gluamapper:"notification" json:"notification"`
	Publishing   publish.Configuration   `gluamapper:"publishing" json:"publishing"`
	Logging      logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultTokenDatabase,
		},

		Token: TokenType{
			MinResources: auction.DefaultMinResources,
		},

		ClientRPC: listeners.Configuration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Notification: NotificationType{
			Timeout:    defaultNotifyTimeout,
			PrivateKey: defaultNotifyPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	util.ResolveAll(options.DataDirectory,
		&options.Database.Directory,
		&options.Notification.PrivateKey,
		&options.Logging.Directory,
	)

	// optional absolute paths i.e. blank or an absolute path
	util.ResolveOptional(options.DataDirectory,
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	)

	// fail if any of these are not simple file names, the database
	// name is then placed in its directory
	for _, name := range []string{options.Database.Name, options.Logging.File} {
		if !util.IsPlainName(name) {
			return nil, fmt.Errorf("files: %q is not plain name", name)
		}
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// make absolute and create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	if _, err := options.Notification.timeout(); nil != err {
		return nil, err
	}
	if _, err := options.Notification.receivers(); nil != err {
		return nil, err
	}

	return options, nil
}

// outbound call bound
func (n *NotificationType) timeout() (time.Duration, error) {
	d, err := time.ParseDuration(n.Timeout)
	if nil != err {
		return 0, fmt.Errorf("notification timeout: %q  error: %s", n.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("notification timeout: %q is not positive", n.Timeout)
	}
	if d > notify.MaximumCallTimeout {
		return 0, fmt.Errorf("notification timeout: %q exceeds: %s", n.Timeout, notify.MaximumCallTimeout)
	}
	return d, nil
}

// decoded receiver table
func (n *NotificationType) receivers() (map[account.Holder]string, error) {
	table := make(map[account.Holder]string, len(n.Receivers))
	for text, address := range n.Receivers {
		holder, err := account.FromBase58(text)
		if nil != err {
			return nil, fmt.Errorf("notification receiver: %q  error: %s", text, err)
		}
		canonical, err := util.CanonicalAddress(address)
		if nil != err {
			return nil, fmt.Errorf("notification receiver: %q  address: %q  error: %s", text, address, err)
		}
		table[holder] = canonical
	}
	return table, nil
}

// principal of the service
func (t *TokenType) principal() (account.Holder, error) {
	return account.FromBase58(t.Principal)
}

// metadata for the first start
func (t *TokenType) metadata() (token.Metadata, error) {
	m := token.Metadata{
		Name:     t.Name,
		Symbol:   t.Symbol,
		Logo:     t.Logo,
		Decimals: t.Decimals,
		IsTest:   t.Test,
	}

	var err error
	if m.TotalSupply, err = amount.FromString(t.TotalSupply); nil != err {
		return m, fmt.Errorf("token total_supply: %q  error: %s", t.TotalSupply, err)
	}
	if "" != t.Fee {
		if m.Fee, err = amount.FromString(t.Fee); nil != err {
			return m, fmt.Errorf("token fee: %q  error: %s", t.Fee, err)
		}
	}
	if m.Owner, err = account.FromBase58(t.Owner); nil != err {
		return m, fmt.Errorf("token owner: %q  error: %s", t.Owner, err)
	}
	if "" != t.FeeTo {
		if m.FeeTo, err = account.FromBase58(t.FeeTo); nil != err {
			return m, fmt.Errorf("token fee_to: %q  error: %s", t.FeeTo, err)
		}
	}
	return m, nil
}

// apply the reloadable part of a changed configuration
func reload(log *logger.L, fileName string, protocol *notify.Protocol, notifier *notify.RPCNotifier) {
	c, err := getConfiguration(fileName)
	if nil != err {
		log.Errorf("reload: %q  error: %s", fileName, err)
		return
	}

	timeout, _ := c.Notification.timeout()
	receivers, _ := c.Notification.receivers()

	protocol.SetTimeout(timeout)
	notifier.SetReceivers(receivers)
	log.Infof("reloaded: timeout: %s  receivers: %d", timeout, len(receivers))
}
