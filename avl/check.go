// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - true if no node has sub-trees whose heights differ by
// more than one
func (tree *BinaryTree) IsBalanced() bool {
	return balancedHeight(tree.root) >= 0
}

// internal: height of a sub-tree or -1 as soon as any imbalance is seen
func balancedHeight(p *Node) int {
	if nil == p {
		return 0
	}
	lh := balancedHeight(p.left)
	if lh < 0 {
		return -1
	}
	rh := balancedHeight(p.right)
	if rh < 0 {
		return -1
	}
	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return 1 + max(lh, rh)
}

// Height - number of nodes on the longest root to leaf path
func (tree *BinaryTree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

// CheckUp - check the up pointers for consistency
func (tree *BinaryTree) CheckUp() bool {
	return nil == tree.root || (nil == tree.root.up && checkup(tree.root))
}

// internal: consistency checker
func checkup(p *Node) bool {
	if nil != p.left && (p.left.up != p || !checkup(p.left)) {
		return false
	}
	if nil != p.right && (p.right.up != p || !checkup(p.right)) {
		return false
	}
	return true
}

// CheckCounts - check the sub-tree node counts against the actual tree
func (tree *BinaryTree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

// internal: returns the size of the sub-tree and whether the counts match
func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok || nl != p.leftNodes {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok || nr != p.rightNodes {
		return 0, false
	}
	return 1 + nl + nr, true
}

// CheckBalance - check that every balance factor is in the range
// -1 … +1 and equals the actual difference of the sub-tree heights
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if p.balance < -1 || p.balance > 1 || p.balance != rh-lh {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
