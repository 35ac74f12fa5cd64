// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paths - root to leaf path checks for avl trees
package paths

import (
	"github.com/bitmark-inc/avltree/avl"
)

// Equal - true if every root to leaf path has the same number of nodes
func Equal(root *avl.Node) bool {
	return Length(root) >= 0
}

// Length - the number of nodes on every root to leaf path, zero for
// an empty tree, or -1 if the paths differ
func Length(root *avl.Node) int {
	if nil == root {
		return 0
	}

	left := root.Left()
	right := root.Right()

	// a single child is the only way to a leaf
	switch {
	case nil == left && nil == right:
		return 1
	case nil == left:
		return extend(Length(right))
	case nil == right:
		return extend(Length(left))
	}

	ln := Length(left)
	if ln < 0 {
		return -1
	}
	if ln != Length(right) {
		return -1
	}
	return 1 + ln
}

func extend(n int) int {
	if n < 0 {
		return -1
	}
	return 1 + n
}
