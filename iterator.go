// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import "iter"

// Entry is an element of a tree together with its width, as returned by
// ToList.
type Entry[T any] struct {
	Data  T
	Width int64
}

// First returns the first node in tree order, or nil if the tree is empty.
func (t *Tree[T]) First() *Node[T] {
	return realOrNil(t.minNode(t.root))
}

// Last returns the last node in tree order, or nil if the tree is empty.
func (t *Tree[T]) Last() *Node[T] {
	return realOrNil(t.maxNode(t.root))
}

// Next returns the in-order successor of n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	if !n.right.isNil() {
		n = n.right
		for !n.left.isNil() {
			n = n.left
		}
		return n
	}
	p := n.parent
	for !p.isNil() && n == p.right {
		n = p
		p = p.parent
	}
	return realOrNil(p)
}

// Prev returns the in-order predecessor of n, or nil if n is the first node.
func (n *Node[T]) Prev() *Node[T] {
	if !n.left.isNil() {
		n = n.left
		for !n.right.isNil() {
			n = n.right
		}
		return n
	}
	p := n.parent
	for !p.isNil() && n == p.left {
		n = p
		p = p.parent
	}
	return realOrNil(p)
}

// All returns an iterator over the nodes in ascending tree order. The tree
// must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := t.First(); n != nil; n = n.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Backward returns an iterator over the nodes in descending tree order. The
// tree must not be modified during iteration.
func (t *Tree[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := t.Last(); n != nil; n = n.Prev() {
			if !yield(n) {
				return
			}
		}
	}
}

// ToList returns the elements and their widths in tree order.
func (t *Tree[T]) ToList() []Entry[T] {
	res := make([]Entry[T], 0, t.count)
	t.inOrder(t.root, func(n *Node[T]) {
		res = append(res, Entry[T]{Data: n.data, Width: n.width})
	})
	return res
}

// Values returns the elements in tree order.
func (t *Tree[T]) Values() []T {
	res := make([]T, 0, t.count)
	t.inOrder(t.root, func(n *Node[T]) {
		res = append(res, n.data)
	})
	return res
}

func (t *Tree[T]) inOrder(n *Node[T], fn func(*Node[T])) {
	if n == t.sentinel {
		return
	}
	t.inOrder(n.left, fn)
	fn(n)
	t.inOrder(n.right, fn)
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. The height of an empty tree is 0.
func (t *Tree[T]) Height() int {
	return t.height(t.root)
}

func (t *Tree[T]) height(n *Node[T]) int {
	if n == t.sentinel {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}
