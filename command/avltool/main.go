// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--watch] SCRIPT.lua", program)
	}

	if 1 != len(arguments) {
		exitwithstatus.Message("%s: %s", program, fault.ErrMissingScript)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	theConfiguration, err := getConfiguration(configurationFile, len(options["verbose"]) > 0)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	scriptFile, err := filepath.Abs(filepath.Clean(arguments[0]))
	if nil != err || !util.EnsureFileExists(scriptFile) {
		exitwithstatus.Message("%s: %s: %q", program, fault.ErrNotFoundScriptFile, arguments[0])
	}

	r := newRunner(theConfiguration, os.Stdout)

	// ------------------
	// start of real main
	// ------------------

	err = r.runFile(scriptFile)

	if 0 == len(options["watch"]) {
		if nil != err {
			exitwithstatus.Message("%s: %s: %q  error: %s", program, fault.ErrScriptFailed, scriptFile, err)
		}
		return
	}

	w, err := newScriptWatcher(scriptFile, r.runFile)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}

	processes := background.Start(background.Processes{w}, nil)

	// wait for CTRL-C or the script to be removed
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
	case <-processes.Done():
	}

	err = processes.Stop()

	log.Infof("runs: %d  failures: %d  rotations: %d",
		r.tally.Runs.Uint64(),
		r.tally.Failures.Uint64(),
		r.tally.Rotations.Uint64(),
	)

	if nil != err {
		exitwithstatus.Message("%s: watch stopped: %s", program, err)
	}
}
