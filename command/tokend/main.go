// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/background"
	"github.com/bitmark-inc/tokend/configuration"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/notify"
	"github.com/bitmark-inc/tokend/publish"
	"github.com/bitmark-inc/tokend/rpc"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/token"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	principal, err := theConfiguration.Token.principal()
	if nil != err {
		log.Criticalf("token principal: %q  error: %s", theConfiguration.Token.Principal, err)
		exitwithstatus.Message("token principal: %q  error: %s", theConfiguration.Token.Principal, err)
	}

	// general info
	log.Infof("principal: %s", principal)
	log.Infof("database: %q", theConfiguration.Database.Name)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Notification", theConfiguration.Notification)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	// outbound notification, the values were checked when the
	// configuration was read
	privateKey, err := notify.ReadPrivateKeyFile(theConfiguration.Notification.PrivateKey)
	if nil != err {
		log.Criticalf("notify private key: %q  error: %s", theConfiguration.Notification.PrivateKey, err)
		exitwithstatus.Message("notify private key: %q  error: %s", theConfiguration.Notification.PrivateKey, err)
	}
	timeout, _ := theConfiguration.Notification.timeout()
	receivers, _ := theConfiguration.Notification.receivers()

	notifier := notify.NewRPCNotifier(receivers)
	protocol := notify.New(notifier, principal, privateKey, timeout)

	processes := background.Processes{}

	// optional record broadcast
	var publisher token.Publisher
	if 0 != len(theConfiguration.Publishing.Broadcast) {
		log.Info("initialise publish")
		p, err := publish.New(&theConfiguration.Publishing)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		publisher = p
		processes = append(processes, p)
	}

	log.Info("initialise token")
	theToken, err := token.New(store, principal, protocol, publisher)
	if nil != err {
		log.Criticalf("token initialise error: %s", err)
		exitwithstatus.Message("token initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theToken) {
		return
	}

	// genesis only happens on the very first start
	metadata, err := theConfiguration.Token.metadata()
	if nil != err {
		log.Criticalf("token metadata error: %s", err)
		exitwithstatus.Message("token metadata error: %s", err)
	}
	_, err = theToken.Initialise(metadata, theConfiguration.Token.MinResources)
	if fault.AlreadyInitialised == err {
		log.Info("token already initialised")
	} else if nil != err {
		log.Criticalf("token genesis error: %s", err)
		exitwithstatus.Message("token genesis error: %s", err)
	}

	// reload timeout and receivers when the file changes
	watcher, err := configuration.NewWatcher(configurationFile, func(fileName string) {
		reload(log, fileName, protocol, notifier)
	})
	if nil != err {
		log.Criticalf("configuration watcher error: %s", err)
		exitwithstatus.Message("configuration watcher error: %s", err)
	}
	processes = append(processes, watcher)

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, theToken, protocol.PublicKey())
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	bg := background.Start(processes, nil)
	defer bg.Stop()

	for _, a := range rpc.Addresses() {
		log.Infof("rpc listening on: %s", a)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
