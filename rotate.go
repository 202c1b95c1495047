// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"github.com/cockroachdb/rbtree/internal/base"
	"github.com/cockroachdb/rbtree/internal/invariants"
)

// rotateLeft makes x's right child y the root of the subtree previously rooted
// at x:
//
//	    x              y
//	   / \            / \
//	  a   y    =>    x   c
//	     / \        / \
//	    b   c      a   b
//
// The in-order sequence a x b y c is preserved. x must have a non-nil right
// child.
func (t *Tree[T]) rotateLeft(x *Node[T]) {
	y := x.right
	if x == t.sentinel || y == t.sentinel {
		panic(base.PreconditionViolationf("rbtree: rotate left of a node without a right child"))
	}
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	t.rotated(x)
}

// rotateRight is the mirror image of rotateLeft: y's left child x becomes the
// root of the subtree previously rooted at y. y must have a non-nil left
// child.
func (t *Tree[T]) rotateRight(y *Node[T]) {
	x := y.left
	if y == t.sentinel || x == t.sentinel {
		panic(base.PreconditionViolationf("rbtree: rotate right of a node without a left child"))
	}
	y.left = x.right
	if x.right != t.sentinel {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.sentinel {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
	t.rotated(y)
}

// rotated recomputes subtree widths after a rotation, starting at the node
// that moved down.
func (t *Tree[T]) rotated(down *Node[T]) {
	t.metrics.Rotations++
	t.opRotations++
	t.fixWidthsFrom(down)
}

// fixWidthsFrom walks from n up to the root recomputing subtreeWidth. It
// assumes that the children of n have correct subtree widths and that every
// ancestor's other subtree is unaffected by the change being repaired.
func (t *Tree[T]) fixWidthsFrom(n *Node[T]) {
	for ; n != t.sentinel; n = n.parent {
		n.subtreeWidth = n.left.subtreeWidth + n.right.subtreeWidth + n.width
	}
}

// SetWidth changes the width of n and repairs the subtree widths of its
// ancestors. n must belong to t and width must not be negative.
func (t *Tree[T]) SetWidth(n *Node[T], width int64) {
	if width < 0 {
		panic(base.PreconditionViolationf("rbtree: negative width %d", width))
	}
	if invariants.Enabled && !t.contains(n) {
		panic(base.PreconditionViolationf("rbtree: SetWidth on a node that is not in the tree"))
	}
	t.beginOp()
	n.width = width
	t.fixWidthsFrom(n)
	t.endOp()
}
