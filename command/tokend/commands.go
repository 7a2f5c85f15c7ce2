// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/notify"
	"github.com/bitmark-inc/tokend/rpc/certificate"
	"github.com/bitmark-inc/tokend/templates"
	"github.com/bitmark-inc/tokend/token"
	"github.com/bitmark-inc/tokend/util"
)

const (
	notifyPublicKeyFilename  = "notify.public"
	notifyPrivateKeyFilename = "notify.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	configurationFilename = "tokend.conf"
	defaultListen         = "127.0.0.1:2130"
	defaultSymbol         = "TOKEN"
	defaultSupply         = "1000000000"
	defaultDecimals       = 8

	defaultHistoryCount = 20
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-notify-key", "notify":
		publicKeyFilename := getFilenameWithDirectory(arguments, notifyPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, notifyPrivateKeyFilename)

		publicKey, err := notify.MakeKeyFiles(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)
		fmt.Printf("public key: %s\n", hex.EncodeToString(publicKey))

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-config", "conf":
		if len(arguments) < 2 {
			exitwithstatus.Message("usage: gen-config DIR OWNER [SYMBOL [SUPPLY]]")
		}
		fileName := getFilenameWithDirectory(arguments, configurationFilename)
		err := makeConfigurationFile(fileName, arguments[1:])
		if nil != err {
			fmt.Printf("generate configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false

	case "info", "history", "hist":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-notify-key [DIR]       (notify) - create private key in: %q\n", "DIR/"+notifyPrivateKeyFilename)
		fmt.Printf("                                        and the public key in: %q\n", "DIR/"+notifyPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-config DIR OWNER [SYMBOL [SUPPLY]]\n")
		fmt.Printf("                             (conf)   - create configuration in: %q\n", "DIR/"+configurationFilename)
		fmt.Printf("                                        with a new random principal\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  info                                - display token metadata and statistics\n")
		fmt.Printf("\n")

		fmt.Printf("  history [S [N]]            (hist)   - dump N ledger records from S as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the token is open so these commands can read the ledger
func processDataCommand(log *logger.L, arguments []string, t *token.Token) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "info":
		info, err := t.TokenInfo()
		if nil != err {
			exitwithstatus.Message("token info error: %s", err)
		}
		printJSON(info)

	case "history", "hist":
		start := uint64(0)
		count := uint64(defaultHistoryCount)
		if len(arguments) >= 1 {
			n, err := strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start: %q  error: %s", arguments[0], err)
			}
			start = n
		}
		if len(arguments) >= 2 {
			n, err := strconv.ParseUint(arguments[1], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in count: %q  error: %s", arguments[1], err)
			}
			count = n
		}
		log.Infof("dump history: start: %d  count: %d", start, count)

		records, err := t.GetTransactions(start, count)
		if nil != err {
			exitwithstatus.Message("history error: %s", err)
		}
		printJSON(records)

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// write a new configuration file for an owner
//
// arguments: OWNER [SYMBOL [SUPPLY]]
func makeConfigurationFile(fileName string, arguments []string) error {
	if util.EnsureFileExists(fileName) {
		return fmt.Errorf("file already exists")
	}

	owner, err := account.FromBase58(arguments[0])
	if nil != err {
		return err
	}

	symbol := defaultSymbol
	if len(arguments) >= 2 {
		symbol = arguments[1]
	}
	supply := defaultSupply
	if len(arguments) >= 3 {
		supply = arguments[2]
	}
	if _, err := amount.FromString(supply); nil != err {
		return err
	}

	id := uuid.New()
	principal, err := account.New(id[:])
	if nil != err {
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	return templates.WriteConfiguration(f, &templates.Token{
		Principal:   principal.String(),
		Owner:       owner.String(),
		Name:        symbol + " token",
		Symbol:      symbol,
		Decimals:    defaultDecimals,
		TotalSupply: supply,
		Listen:      defaultListen,
	})
}

// print an indented JSON value to stdout
func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
