// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that is safe to share between
// the script runner and the watcher goroutines
type Counter uint64

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return c.Uint64() == 0
}

// Reset - set to zero, returns the value before the reset
func (c *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(c), 0)
}

// Tally - the per process totals of script executions
type Tally struct {
	Runs      Counter
	Failures  Counter
	Rotations Counter
}

// Record - account for one run and its rotations
func (t *Tally) Record(rotations uint64, err error) {
	t.Runs.Increment()
	atomic.AddUint64((*uint64)(&t.Rotations), rotations)
	if nil != err {
		t.Failures.Increment()
	}
}
