// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

const (
	watcherLoggerPrefix = "watcher"
)

// background process that re-runs the script whenever it is written
type scriptWatcher struct {
	log      *logger.L
	filePath string
	run      func(fileName string) error
}

func newScriptWatcher(fileName string, run func(string) error) (*scriptWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrNotFoundScriptFile
	}

	return &scriptWatcher{
		log:      logger.New(watcherLoggerPrefix),
		filePath: filePath,
		run:      run,
	}, nil
}

// Run - implements background.Process
//
// returns fault.ErrScriptRemoved if the script goes away
func (w *scriptWatcher) Run(args interface{}, shutdown <-chan struct{}) error {

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		w.log.Errorf("new watcher with error: %s", err)
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.filePath); nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Errorf("file: %q removed, stop", w.filePath)
				return fault.ErrScriptRemoved
			}

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("event for: %q discarded", event.Name)
				continue loop
			}

			if watcherEventFileChange(event) {
				// failures are logged and counted by the runner
				_ = w.run(w.filePath)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}

	w.log.Info("stopped")
	return nil
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
