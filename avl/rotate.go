// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Direction - the way a node moves down in a rotation
type Direction int

// possible rotations
const (
	RotateLeft  Direction = iota
	RotateRight Direction = iota
)

// String - name of the rotation
func (d Direction) String() string {
	switch d {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "*unknown*"
	}
}

// Observer - receives a notification for each rotation performed
// while rebalancing, pivot is the key of the node that moved down
type Observer interface {
	Rotate(direction Direction, pivot Item)
}

// rotate n down and to the left, its right child takes its place
//
// balance factors are left for the caller to correct, the sub-tree
// counts of the two nodes are recomputed
func (tree *Tree) rotateLeft(n *Node) {
	y := n.right
	if nil == y {
		fault.Panicf("avl: rotate left: node: %v has no right child", n.key)
	}

	up := n.up
	y.up = up
	if nil == up {
		tree.root = y
	} else if up.left == n {
		up.left = y
	} else {
		up.right = y
	}

	c := y.left
	n.right = c
	if nil != c {
		c.up = n
	}
	y.left = n
	n.up = y

	n.rightNodes = y.leftNodes
	y.leftNodes = 1 + n.leftNodes + n.rightNodes

	if nil != tree.observer {
		tree.observer.Rotate(RotateLeft, n.key)
	}
}

// rotate n down and to the right, its left child takes its place
func (tree *Tree) rotateRight(n *Node) {
	y := n.left
	if nil == y {
		fault.Panicf("avl: rotate right: node: %v has no left child", n.key)
	}

	up := n.up
	y.up = up
	if nil == up {
		tree.root = y
	} else if up.left == n {
		up.left = y
	} else {
		up.right = y
	}

	c := y.right
	n.left = c
	if nil != c {
		c.up = n
	}
	y.right = n
	n.up = y

	n.leftNodes = y.rightNodes
	y.rightNodes = 1 + n.leftNodes + n.rightNodes

	if nil != tree.observer {
		tree.observer.Rotate(RotateRight, n.key)
	}
}
