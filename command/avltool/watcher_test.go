// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

func TestWatcherMissingFile(t *testing.T) {
	_, err := newScriptWatcher(filepath.Join(os.TempDir(), "no-such-script.lua"), nil)
	assert.Equal(t, fault.ErrNotFoundScriptFile, err, "missing script")
}

func TestWatcherRerunAndRemove(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "watch.lua", "tree.insert(1, 1)\n")
	defer cleanup()

	var runs counter.Counter
	w, err := newScriptWatcher(fileName, func(name string) error {
		runs.Increment()
		return nil
	})
	require.Nil(t, err, "watcher setup")

	processes := background.Start(background.Processes{w}, nil)

	// the watch is added asynchronously so keep writing until seen
	deadline := time.Now().Add(5 * time.Second)
	for runs.IsZero() && time.Now().Before(deadline) {
		err := ioutil.WriteFile(fileName, []byte("tree.insert(2, 2)\n"), 0600)
		require.Nil(t, err, "rewrite script")
		time.Sleep(50 * time.Millisecond)
	}
	assert.False(t, runs.IsZero(), "write did not re-run the script")

	err = os.Remove(fileName)
	require.Nil(t, err, "remove script")

	select {
	case <-processes.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after removal")
	}

	assert.Equal(t, fault.ErrScriptRemoved, processes.Stop(), "stop error")
}

func TestWatcherShutdown(t *testing.T) {
	fileName, cleanup := writeTemporary(t, "idle.lua", "-- nothing\n")
	defer cleanup()

	w, err := newScriptWatcher(fileName, func(string) error { return nil })
	require.Nil(t, err, "watcher setup")

	processes := background.Start(background.Processes{w}, nil)
	assert.Nil(t, processes.Stop(), "stop error")
}

func TestWatcherEvents(t *testing.T) {
	tests := []struct {
		event   fsnotify.Event
		remove  bool
		changed bool
	}{
		{fsnotify.Event{Name: "a.lua", Op: fsnotify.Write}, false, true},
		{fsnotify.Event{Name: "a.lua", Op: fsnotify.Chmod}, false, true},
		{fsnotify.Event{Name: "a.lua", Op: fsnotify.Create}, false, false},
		{fsnotify.Event{Name: "a.lua", Op: fsnotify.Remove}, true, false},
		{fsnotify.Event{Name: "a.lua", Op: fsnotify.Rename}, true, false},
		{fsnotify.Event{Name: "", Op: fsnotify.Write}, true, true},
	}

	for i, item := range tests {
		assert.Equal(t, item.remove, watcherEventFileRemove(item.event), "%d: remove: %v", i, item.event)
		assert.Equal(t, item.changed, watcherEventFileChange(item.event), "%d: change: %v", i, item.event)
	}
}
