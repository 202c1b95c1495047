// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import "github.com/cockroachdb/rbtree/internal/base"

// InsertBack appends an element with the given width after every existing
// element. Only valid in position mode.
func (t *Tree[T]) InsertBack(data T, width int64) *Node[T] {
	t.checkPositional("InsertBack", width)
	y := t.sentinel
	for x := t.root; x != t.sentinel; x = x.right {
		y = x
	}
	z := t.newNode(data, width, y)
	if y == t.sentinel {
		t.root = z
	} else {
		y.right = z
	}
	t.insertLinked(z)
	return z
}

// InsertFront prepends an element with the given width before every existing
// element. Only valid in position mode.
func (t *Tree[T]) InsertFront(data T, width int64) *Node[T] {
	t.checkPositional("InsertFront", width)
	y := t.sentinel
	for x := t.root; x != t.sentinel; x = x.left {
		y = x
	}
	z := t.newNode(data, width, y)
	if y == t.sentinel {
		t.root = z
	} else {
		y.left = z
	}
	t.insertLinked(z)
	return z
}

// InsertAfter inserts an element immediately after n in the sequence. Only
// valid in position mode; n must belong to t.
func (t *Tree[T]) InsertAfter(n *Node[T], data T, width int64) *Node[T] {
	t.checkPositional("InsertAfter", width)
	t.checkMember("InsertAfter", n)
	var z *Node[T]
	if n.right == t.sentinel {
		z = t.newNode(data, width, n)
		n.right = z
	} else {
		// The successor is the leftmost node of the right subtree; it has no
		// left child.
		s := t.minNode(n.right)
		z = t.newNode(data, width, s)
		s.left = z
	}
	t.insertLinked(z)
	return z
}

// InsertBefore inserts an element immediately before n in the sequence. Only
// valid in position mode; n must belong to t.
func (t *Tree[T]) InsertBefore(n *Node[T], data T, width int64) *Node[T] {
	t.checkPositional("InsertBefore", width)
	t.checkMember("InsertBefore", n)
	var z *Node[T]
	if n.left == t.sentinel {
		z = t.newNode(data, width, n)
		n.left = z
	} else {
		p := t.maxNode(n.left)
		z = t.newNode(data, width, p)
		p.right = z
	}
	t.insertLinked(z)
	return z
}

// Insert adds data to a comparator-mode tree with zero width. If an equal key
// is already present the tree is left unchanged and Insert returns the
// existing node and false.
func (t *Tree[T]) Insert(data T) (*Node[T], bool) {
	return t.InsertWidth(data, 0)
}

// InsertWidth is like Insert but assigns the new element the given width. The
// width of an already present element is not modified.
func (t *Tree[T]) InsertWidth(data T, width int64) (*Node[T], bool) {
	t.checkOrdered("Insert")
	if width < 0 {
		panic(base.PreconditionViolationf("rbtree: negative width %d", width))
	}
	y := t.sentinel
	x := t.root
	c := 0
	for x != t.sentinel {
		y = x
		c = t.cmp(data, x.data)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x, false
		}
	}
	z := t.newNode(data, width, y)
	if y == t.sentinel {
		t.root = z
	} else if c < 0 {
		y.left = z
	} else {
		y.right = z
	}
	t.insertLinked(z)
	return z, true
}

// insertLinked finishes an insertion once the red leaf z has been linked
// under its parent.
func (t *Tree[T]) insertLinked(z *Node[T]) {
	t.beginOp()
	t.count++
	t.metrics.Inserts++
	t.fixWidthsFrom(z)
	t.insertFixup(z)
	t.endOp()
}

// insertFixup restores the red-black properties after the red node z was
// linked in as a leaf. The only property that can be violated is that z and
// its parent are both red (or that z is a red root).
func (t *Tree[T]) insertFixup(z *Node[T]) {
	for z.parent.color == Red {
		t.metrics.InsertFixups++
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle
			if y.color == Red {
				// Case 1: push the violation up to the grandparent.
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					// Case 2: z is an inner child; rotate it to the outside.
					z = z.parent
					t.rotateLeft(z)
				}
				// Case 3.
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left // uncle
			if y.color == Red {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = Black
}

func (t *Tree[T]) checkPositional(op string, width int64) {
	if t.cmp != nil {
		panic(base.PreconditionViolationf("rbtree: %s on a comparator-ordered tree", op))
	}
	if width < 0 {
		panic(base.PreconditionViolationf("rbtree: negative width %d", width))
	}
}

func (t *Tree[T]) checkOrdered(op string) {
	if t.cmp == nil {
		panic(base.PreconditionViolationf("rbtree: %s on a tree without a comparator", op))
	}
}

func (t *Tree[T]) checkMember(op string, n *Node[T]) {
	if !t.contains(n) {
		panic(base.PreconditionViolationf("rbtree: %s with a node that is not in the tree", op))
	}
}
