// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	logDirectory, err := ioutil.TempDir("", "avltool-log")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}

	var logConfig = logger.Configuration{
		Directory: logDirectory,
		File:      "avltool.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// write a file into a fresh temporary directory
func writeTemporary(t *testing.T, name string, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "avltool-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write: %q  error: %s", fileName, err)
	}

	return fileName, func() {
		os.RemoveAll(dir)
	}
}
