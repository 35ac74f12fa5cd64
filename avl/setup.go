// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// BinaryTree - type to hold the root node of an unbalanced tree
type BinaryTree struct {
	root  *Node
	count int
	stats Stats
}

// Tree - an AVL tree, the balance is maintained by Insert and Delete
//
// all the read only operations are those of the embedded BinaryTree
type Tree struct {
	BinaryTree
	observer Observer
}

// NewBinary - create an initially empty unbalanced tree
func NewBinary() *BinaryTree {
	return &BinaryTree{
		root:  nil,
		count: 0,
	}
}

// New - create an initially empty AVL tree
func New() *Tree {
	return &Tree{
		BinaryTree: BinaryTree{
			root:  nil,
			count: 0,
		},
	}
}

// SetObserver - register a receiver for rotation events, nil to remove
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *BinaryTree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *BinaryTree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *BinaryTree) Root() *Node {
	return tree.root
}

// Stats - totals of nodes created and destroyed over the life of the tree
func (tree *BinaryTree) Stats() Stats {
	return tree.stats
}

// Clear - destroy all nodes
func (tree *BinaryTree) Clear() {
	tree.clear(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: post-order release of a sub-tree
func (tree *BinaryTree) clear(p *Node) {
	if nil == p {
		return
	}
	tree.clear(p.left)
	tree.clear(p.right)
	tree.freeNode(p)
}
