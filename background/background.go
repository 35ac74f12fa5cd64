// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived go routines that are
// all stopped together
package background

import (
	"sync"
)

// Process - type signature for background process
//
// Run must return soon after shutdown is closed, it may also return
// on its own, e.g. when its input has gone away
type Process interface {
	Run(args interface{}, shutdown <-chan struct{}) error
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	finished []chan error
	done     chan struct{}
	doneOnce sync.Once
	stopOnce sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make([]chan error, len(processes)),
		done:     make(chan struct{}),
	}

	// start each background
	for i, p := range processes {
		finished := make(chan error, 1)
		register.finished[i] = finished
		go func(p Process) {
			err := p.Run(args, register.shutdown)
			register.doneOnce.Do(func() {
				close(register.done)
			})
			finished <- err
		}(p)
	}
	return register
}

// Done - closed as soon as any of the processes has returned
func (t *T) Done() <-chan struct{} {
	return t.done
}

// Stop - stop a set of background processes and wait for all of them
// to finish
//
// returns the first error reported by a process, must only be called
// once
func (t *T) Stop() error {

	// shutdown all background tasks
	t.stopOnce.Do(func() {
		close(t.shutdown)
	})

	// wait for finished
	var first error
	for _, finished := range t.finished {
		if err := <-finished; nil != err && nil == first {
			first = err
		}
	}
	return first
}
