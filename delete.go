// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import "github.com/cockroachdb/rbtree/internal/invariants"

// Delete removes the element equal to key from a comparator-mode tree.
// Returns false, leaving the tree unchanged, if no such element exists.
func (t *Tree[T]) Delete(key T) bool {
	t.checkOrdered("Delete")
	z := t.search(key)
	if z == t.sentinel {
		return false
	}
	t.deleteNode(z)
	return true
}

// Remove unlinks n from the tree. It works in both modes and is the way to
// delete an element from a position-mode tree. n must belong to t; after
// Remove returns, n must no longer be used with the tree.
//
// Other nodes are never moved to a different Node value: handles to the
// remaining elements stay valid.
func (t *Tree[T]) Remove(n *Node[T]) {
	t.checkMember("Remove", n)
	t.deleteNode(n)
}

// transplant replaces the subtree rooted at u with the subtree rooted at v in
// u's parent. v may be the sentinel, in which case its parent field is set
// for the benefit of deleteFixup.
func (t *Tree[T]) transplant(u, v *Node[T]) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteNode unlinks z. When z has two children, its in-order successor y
// (which has no left child) is spliced out of its own position and relinked
// in z's place, taking over z's color. Relinking, rather than copying y's
// data into z, keeps node handles stable.
func (t *Tree[T]) deleteNode(z *Node[T]) {
	t.beginOp()
	y := z
	yOrigColor := y.color
	// x is the node that moves into the position vacated by the physically
	// removed slot; it may be the sentinel.
	var x *Node[T]
	// fixFrom is the lowest node whose subtree lost an element.
	var fixFrom *Node[T]

	switch {
	case z.left == t.sentinel:
		x = z.right
		fixFrom = z.parent
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		fixFrom = z.parent
		t.transplant(z, z.left)
	default:
		y = t.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
			fixFrom = y
		} else {
			fixFrom = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	t.fixWidthsFrom(fixFrom)

	if yOrigColor == Black {
		t.deleteFixup(x)
	}

	*z = Node[T]{data: z.data, width: z.width, subtreeWidth: z.width}
	t.count--
	invariants.CheckNonNegative("rbtree: node count", t.count)
	t.metrics.Deletes++
	t.endOp()
}

// deleteFixup restores the red-black properties after a black node was
// removed. x carries an extra black; the loop moves it up the tree until it
// can be absorbed by a red node or the root, or until rotations rebalance the
// black heights.
func (t *Tree[T]) deleteFixup(x *Node[T]) {
	for x != t.root && x.color == Black {
		t.metrics.DeleteFixups++
		if x == x.parent.left {
			w := x.parent.right // sibling
			if w.color == Red {
				// Case 1: make the sibling black.
				w.color = Black
				x.parent.color = Red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				// Case 2: move the extra black up.
				w.color = Red
				x = x.parent
			} else {
				if w.right.color == Black {
					// Case 3: near child red, far child black.
					w.left.color = Black
					w.color = Red
					t.rotateRight(w)
					w = x.parent.right
				}
				// Case 4: far child red.
				w.color = x.parent.color
				x.parent.color = Black
				w.right.color = Black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == Black && w.left.color == Black {
				w.color = Red
				x = x.parent
			} else {
				if w.left.color == Black {
					w.right.color = Black
					w.color = Red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = Black
				w.left.color = Black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = Black
}
