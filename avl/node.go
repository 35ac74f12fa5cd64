// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative number if the receiver is less than the
// argument, zero if equal and a positive number if greater
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left       *Node       // left sub-tree
	right      *Node       // right sub-tree
	up         *Node       // points to parent node
	key        Item        // key part for ordering
	value      interface{} // value part for data storage
	balance    int         // -1, 0, +1
	leftNodes  int         // count of nodes in left sub-tree
	rightNodes int         // count of nodes in right sub-tree
}

// Stats - node lifecycle totals for a tree
type Stats struct {
	Created   uint64 // nodes allocated by inserts of new keys
	Destroyed uint64 // nodes released by deletes or clear
}

// allocate a new node
func (tree *BinaryTree) newNode(key Item, value interface{}) *Node {
	tree.stats.Created += 1
	return &Node{
		key:     key,
		value:   value,
		balance: 0,
	}
}

// destroy a node that has already been unlinked from the tree
//
// nodes are never reused, clearing the fields ensures that a stale
// reference cannot reach back into the tree
func (tree *BinaryTree) freeNode(node *Node) {
	node.up = nil
	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.balance = 0
	node.leftNodes = 0
	node.rightNodes = 0
	tree.stats.Destroyed += 1
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// SetValue - replace the value stored in a node, the key is unchanged
func (p *Node) SetValue(value interface{}) {
	p.value = value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Balance - height of right sub-tree minus height of left sub-tree
//
// always zero for nodes of a plain BinaryTree
func (p *Node) Balance() int {
	return p.balance
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
