// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into an unbalanced tree, or overwrite
// the value of an existing key
//
// returns true if a new node was added
func (tree *BinaryTree) Insert(key Item, value interface{}) bool {
	_, added := tree.attach(key, value)
	return added
}

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key, then restore the AVL balance
//
// returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	n, added := tree.attach(key, value)
	if !added {
		return false // shape is unchanged
	}

	parent := n.up
	if nil == parent {
		return true
	}

	// new node filled the short side
	if 0 != parent.balance {
		parent.balance = 0
		return true
	}

	if n == parent.left {
		parent.balance = -1
	} else {
		parent.balance = +1
	}
	tree.insertFix(parent, n)
	return true
}

// internal routine for insert: plain descent to the key position
//
// returns the node holding the key and true if it was created
func (tree *BinaryTree) attach(key Item, value interface{}) (*Node, bool) {
	if nil == tree.root {
		tree.root = tree.newNode(key, value)
		tree.count += 1
		return tree.root, true
	}

	p := tree.root
	for {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				n := tree.newNode(key, value)
				n.up = p
				p.left = n
				tree.grow(n)
				return n, true
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				n := tree.newNode(key, value)
				n.up = p
				p.right = n
				tree.grow(n)
				return n, true
			}
			p = p.right
		default:
			p.value = value
			return p, false
		}
	}
}

// account for a new leaf in all of its ancestors
func (tree *BinaryTree) grow(n *Node) {
	tree.count += 1
	for p := n.up; nil != p; n, p = p, p.up {
		if n == p.left {
			p.leftNodes += 1
		} else {
			p.rightNodes += 1
		}
	}
}

// insert: propagate height growth of child towards the root
//
// parent.balance has already been adjusted for child
func (tree *Tree) insertFix(parent *Node, child *Node) {
	if nil == parent || nil == parent.up {
		return
	}
	grandparent := parent.up

	if parent == grandparent.left {
		// left branch has grown
		grandparent.balance -= 1
		switch grandparent.balance {
		case 0:
			return
		case -1:
			tree.insertFix(grandparent, parent)
			return
		}

		if child == parent.left {
			// single LL rotation
			tree.rotateRight(grandparent)
			parent.balance = 0
			grandparent.balance = 0
		} else {
			// double LR rotation
			tree.rotateLeft(parent)
			tree.rotateRight(grandparent)
			switch child.balance {
			case -1:
				parent.balance = 0
				grandparent.balance = +1
			case 0:
				parent.balance = 0
				grandparent.balance = 0
			default:
				parent.balance = -1
				grandparent.balance = 0
			}
			child.balance = 0
		}
		return
	}

	// right branch has grown
	grandparent.balance += 1
	switch grandparent.balance {
	case 0:
		return
	case +1:
		tree.insertFix(grandparent, parent)
		return
	}

	if child == parent.right {
		// single RR rotation
		tree.rotateLeft(grandparent)
		parent.balance = 0
		grandparent.balance = 0
	} else {
		// double RL rotation
		tree.rotateRight(parent)
		tree.rotateLeft(grandparent)
		switch child.balance {
		case +1:
			parent.balance = 0
			grandparent.balance = -1
		case 0:
			parent.balance = 0
			grandparent.balance = 0
		default:
			parent.balance = +1
			grandparent.balance = 0
		}
		child.balance = 0
	}
}
