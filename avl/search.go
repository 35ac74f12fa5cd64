// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - the node holding a key or nil if the key is not present
func (tree *BinaryTree) Find(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Search - find a specific item and its index in key order
//
// returns nil, -1 if the key is not present
func (tree *BinaryTree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	c := tree.key.Compare(key)
	switch {
	case c > 0: // tree.key > key
		return search(key, tree.left, index)
	case c < 0: // tree.key < key
		return search(key, tree.right, index+tree.leftNodes+1)
	default:
		return tree, index + tree.leftNodes
	}
}

// Lookup - the value stored for a key
//
// an absent key is an error rather than a default value
func (tree *BinaryTree) Lookup(key Item) (interface{}, error) {
	p := tree.Find(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Get - index to specific item in key order
func (tree *BinaryTree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	nl := tree.leftNodes

	if index < nl {
		return get(index, tree.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, tree.right)
	}
	return tree
}
