// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
)

const (
	rotationLoggerPrefix = "avl"
)

// logs every rotation performed by the balanced tree
type rotationLogger struct {
	log       *logger.L
	rotations counter.Counter
}

func newRotationLogger(log *logger.L) *rotationLogger {
	return &rotationLogger{
		log: log,
	}
}

// Rotate - implements avl.Observer
func (r *rotationLogger) Rotate(direction avl.Direction, pivot avl.Item) {
	r.rotations.Increment()
	r.log.Debugf("rotate %s at: %v", direction, pivot)
}
