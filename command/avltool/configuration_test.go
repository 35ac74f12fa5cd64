// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const testConfiguration = `
local M = {}

M.key_type = "STRING"
M.plain = true
M.print_data = true

M.logging = {
    directory = "trace",
    file = "tool.log",
    size = 4096,
    count = 3,
    levels = {
        main = "warn",
        avl = "debug",
    },
}

return M
`

func TestConfigurationFromFile(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "avltool.conf", testConfiguration)
	defer cleanup()

	conf, err := getConfiguration(fileName, false)
	require.Nil(t, err, "configuration error")

	assert.Equal(t, keyTypeString, conf.KeyType, "key type is lower cased")
	assert.True(t, conf.Plain, "plain")
	assert.True(t, conf.PrintData, "print data")

	expectedDirectory := filepath.Join(filepath.Dir(fileName), "trace")
	assert.Equal(t, expectedDirectory, conf.Logging.Directory, "log directory is relative to the configuration")
	assert.Equal(t, "tool.log", conf.Logging.File, "log file")
	assert.Equal(t, 4096, conf.Logging.Size, "log size")
	assert.Equal(t, 3, conf.Logging.Count, "log count")
	assert.Equal(t, "warn", conf.Logging.Levels["main"], "main level")
	assert.Equal(t, "debug", conf.Logging.Levels["avl"], "avl level")

	info, err := os.Stat(expectedDirectory)
	require.Nil(t, err, "log directory was not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestConfigurationDefaults(t *testing.T) {
	conf, err := getConfiguration("", true)
	require.Nil(t, err, "configuration error")

	assert.Equal(t, keyTypeInteger, conf.KeyType, "key type")
	assert.False(t, conf.Plain, "plain")
	assert.False(t, conf.PrintData, "print data")
	assert.Equal(t, filepath.Join(os.TempDir(), defaultLogDirectory), conf.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, conf.Logging.File, "log file")
	assert.Equal(t, "debug", conf.Logging.Levels[logger.DefaultTag], "verbose level")

	again, err := getConfiguration("", false)
	require.Nil(t, err, "configuration error")
	assert.Equal(t, "error", again.Logging.Levels[logger.DefaultTag], "verbose leaked into defaults")
}

func TestConfigurationErrors(t *testing.T) {
	_, err := getConfiguration("/no/such/avltool.conf", false)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	badKey, cleanup := writeTemporary(t, "key.conf", `return { key_type = "float" }`)
	defer cleanup()
	_, err = getConfiguration(badKey, false)
	require.NotNil(t, err, "invalid key type accepted")
	assert.Contains(t, err.Error(), fault.ErrInvalidKeyType.Error(), "wrong error")

	badFile, cleanup2 := writeTemporary(t, "file.conf", `return { logging = { file = "sub/tool.log" } }`)
	defer cleanup2()
	_, err = getConfiguration(badFile, false)
	assert.NotNil(t, err, "log file path accepted")

	notTable, cleanup3 := writeTemporary(t, "value.conf", `return 42`)
	defer cleanup3()
	_, err = getConfiguration(notTable, false)
	assert.Equal(t, fault.ErrConfigurationNotLua, err, "non table result")
}
