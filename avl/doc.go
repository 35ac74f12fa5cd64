// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Two flavours share a single node type:
//
//   BinaryTree - a plain unbalanced binary search tree
//   Tree       - the AVL tree, built on BinaryTree, which restores
//                the balance after every insert or delete by
//                rotating nodes and propagating balance factor
//                changes towards the root
//
// Data is associated with each key and is overwritten by an insert
// with the same key.  Delete does not copy data between nodes; a node
// with two children is swapped into its successor's position before
// being removed, so the remaining nodes keep their addresses and can
// be held as iterators.
//
// Every node also records the size of both of its sub-trees so that
// items can be fetched by their in-order index.
package avl
