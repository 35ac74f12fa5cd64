// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// key types accepted by the script interface
const (
	keyTypeInteger = "integer"
	keyTypeString  = "string"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultKeyType      = keyTypeInteger
	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - settings read from the optional Lua configuration file
type Configuration struct {
	KeyType   string               `gluamapper:"key_type" json:"key_type"`
	Plain     bool                 `gluamapper:"plain" json:"plain"`
	PrintData bool                 `gluamapper:"print_data" json:"print_data"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultLogLevels() map[string]string {
	return map[string]string{
		"main":            "info",
		logger.DefaultTag: "error",
	}
}

// will read decode and verify the configuration
//
// with no file name the defaults are used and the log goes to the
// system temporary directory
func getConfiguration(configurationFileName string, verbose bool) (*Configuration, error) {

	options := &Configuration{
		KeyType:   defaultKeyType,
		Plain:     false,
		PrintData: false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	baseDirectory := os.TempDir()

	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory = filepath.Dir(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case keyTypeInteger, keyTypeString:
	default:
		return nil, fmt.Errorf("%s: %q", fault.ErrInvalidKeyType, options.KeyType)
	}

	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	if nil == options.Logging.Levels {
		options.Logging.Levels = defaultLogLevels()
	}
	if verbose {
		options.Logging.Levels[logger.DefaultTag] = "debug"
		options.Logging.Levels["main"] = "debug"
	}

	// make absolute and create the directory if it does not already exist
	options.Logging.Directory = util.EnsureAbsolute(baseDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
