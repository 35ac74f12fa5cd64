// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// exchange the positions of two nodes, their keys and values stay
// with the node so that outside references still find them
//
// sub-tree counts describe the position, not the node, so they are
// exchanged as well
func (tree *BinaryTree) nodeSwap(a *Node, b *Node) {
	if a == b || nil == a || nil == b {
		return
	}

	aUp, aLeft, aRight := a.up, a.left, a.right
	bUp, bLeft, bRight := b.up, b.left, b.right
	aIsLeft := nil != aUp && a == aUp.left
	bIsLeft := nil != bUp && b == bUp.left

	a.up, b.up = bUp, aUp
	a.left, b.left = bLeft, aLeft
	a.right, b.right = bRight, aRight

	// when one is the child of the other the exchange above leaves
	// self references, point them at the other node instead
	switch {
	case a == bUp:
		a.up = b
		if bIsLeft {
			b.left = a
		} else {
			b.right = a
		}
	case b == aUp:
		b.up = a
		if aIsLeft {
			a.left = b
		} else {
			a.right = b
		}
	}

	if nil != aUp && aUp != b {
		if aIsLeft {
			aUp.left = b
		} else {
			aUp.right = b
		}
	}
	if nil != bUp && bUp != a {
		if bIsLeft {
			bUp.left = a
		} else {
			bUp.right = a
		}
	}

	for _, n := range []*Node{a, b} {
		if nil != n.left {
			n.left.up = n
		}
		if nil != n.right {
			n.right.up = n
		}
	}

	a.leftNodes, b.leftNodes = b.leftNodes, a.leftNodes
	a.rightNodes, b.rightNodes = b.rightNodes, a.rightNodes

	if tree.root == a {
		tree.root = b
	} else if tree.root == b {
		tree.root = a
	}
}

// AVL version also exchanges the balance factors, as they belong to
// the position
func (tree *Tree) nodeSwap(a *Node, b *Node) {
	tree.BinaryTree.nodeSwap(a, b)
	if a == b || nil == a || nil == b {
		return
	}
	a.balance, b.balance = b.balance, a.balance
}
