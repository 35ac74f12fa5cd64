// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from an unbalanced tree
//
// returns the value of the deleted item or nil if the key was absent
func (tree *BinaryTree) Delete(key Item) interface{} {
	value, _, _, _ := tree.remove(key, tree.nodeSwap)
	return value
}

// Delete - removes a specific item from the tree and restores the
// AVL balance
//
// returns the value of the deleted item or nil if the key was absent
func (tree *Tree) Delete(key Item) interface{} {
	value, parent, diff, removed := tree.remove(key, tree.nodeSwap)
	if removed {
		tree.removeFix(parent, diff)
	}
	return value
}

// internal delete routine
//
// a node with two children is first swapped with its successor so
// that it has at most one child, then it is unlinked and destroyed.
// returns the deleted value, the parent of the vacated position and
// the change in that parent's balance: +1 removed from the left,
// -1 removed from the right, 0 if the root was removed
func (tree *BinaryTree) remove(key Item, swap func(*Node, *Node)) (interface{}, *Node, int, bool) {
	q := tree.Find(key)
	if nil == q { // key not in tree
		return nil, nil, 0, false
	}

	if nil != q.left && nil != q.right {
		swap(q, q.right.first())
	}

	parent, diff := tree.unlink(q)

	value := q.value // preserve the value part
	tree.freeNode(q)
	return value, parent, diff, true
}

// detach a node with at most one child, promoting that child into
// its place and adjusting the counts of all ancestors
func (tree *BinaryTree) unlink(q *Node) (*Node, int) {
	child := q.left
	if nil != q.right {
		child = q.right
	}

	parent := q.up
	if nil != child {
		child.up = parent
	}

	tree.count -= 1

	if nil == parent {
		tree.root = child
		return nil, 0
	}

	diff := 0
	if q == parent.left {
		parent.left = child
		parent.leftNodes -= 1
		diff = +1
	} else {
		parent.right = child
		parent.rightNodes -= 1
		diff = -1
	}

	for n, p := parent, parent.up; nil != p; n, p = p, p.up {
		if n == p.left {
			p.leftNodes -= 1
		} else {
			p.rightNodes -= 1
		}
	}
	return parent, diff
}

// delete: tree balancer
//
// n has lost height on one side, diff is the resulting change to its
// balance.  Propagates towards the root while the height of the
// sub-tree rooted at n has decreased
func (tree *Tree) removeFix(n *Node, diff int) {
	if nil == n {
		return
	}

	// balance change for the next level up, computed before any
	// rotation moves n
	p := n.up
	ndiff := -1
	if nil != p && n == p.left {
		ndiff = +1
	}

	switch n.balance + diff {
	case -2: // left is too high
		c := n.left
		switch c.balance {
		case -1:
			// single LL rotation, height reduced
			tree.rotateRight(n)
			n.balance = 0
			c.balance = 0
			tree.removeFix(p, ndiff)
		case 0:
			// single LL rotation, height unchanged
			tree.rotateRight(n)
			n.balance = -1
			c.balance = +1
		default:
			// double LR rotation, height reduced
			g := c.right
			tree.rotateLeft(c)
			tree.rotateRight(n)
			switch g.balance {
			case +1:
				n.balance = 0
				c.balance = -1
			case 0:
				n.balance = 0
				c.balance = 0
			default:
				n.balance = +1
				c.balance = 0
			}
			g.balance = 0
			tree.removeFix(p, ndiff)
		}

	case +2: // right is too high
		c := n.right
		switch c.balance {
		case +1:
			// single RR rotation, height reduced
			tree.rotateLeft(n)
			n.balance = 0
			c.balance = 0
			tree.removeFix(p, ndiff)
		case 0:
			// single RR rotation, height unchanged
			tree.rotateLeft(n)
			n.balance = +1
			c.balance = -1
		default:
			// double RL rotation, height reduced
			g := c.left
			tree.rotateRight(c)
			tree.rotateLeft(n)
			switch g.balance {
			case -1:
				n.balance = 0
				c.balance = +1
			case 0:
				n.balance = 0
				c.balance = 0
			default:
				n.balance = -1
				c.balance = 0
			}
			g.balance = 0
			tree.removeFix(p, ndiff)
		}

	case 0: // the higher side was shortened
		n.balance = 0
		tree.removeFix(p, ndiff)

	default: // was balanced, height is unchanged
		n.balance += diff
	}
}
