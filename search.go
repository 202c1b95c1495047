// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rbtree/internal/base"
)

// SeekPosition returns the node covering the given global offset, along with
// the offset relative to the start of that node. Nodes cover consecutive
// half-open ranges of offsets in tree order; zero-width nodes cover nothing.
//
// Returns an error marked with ErrOutOfRange if offset is negative or not
// smaller than Width() (in particular, if the tree is empty).
func (t *Tree[T]) SeekPosition(offset int64) (*Node[T], int64, error) {
	if offset < 0 || offset >= t.root.subtreeWidth {
		return nil, 0, base.OutOfRangef(
			"rbtree: offset %d out of range [0, %d)", offset, t.root.subtreeWidth)
	}
	n := t.root
	for n != t.sentinel {
		if offset < n.left.subtreeWidth {
			n = n.left
			continue
		}
		offset -= n.left.subtreeWidth
		if offset < n.width {
			return n, offset, nil
		}
		offset -= n.width
		n = n.right
	}
	panic(errors.AssertionFailedf("rbtree: subtree widths inconsistent with total width %d", t.root.subtreeWidth))
}

// Position returns the global offset at which n starts, i.e. the sum of the
// widths of all the nodes preceding n. n must belong to t.
func (t *Tree[T]) Position(n *Node[T]) int64 {
	pos := n.left.subtreeWidth
	for ; n.parent != t.sentinel; n = n.parent {
		if n == n.parent.right {
			pos += n.parent.left.subtreeWidth + n.parent.width
		}
	}
	return pos
}

// Get returns the node whose key is equal to key, or nil. Only valid in
// comparator mode.
func (t *Tree[T]) Get(key T) *Node[T] {
	t.checkOrdered("Get")
	return realOrNil(t.search(key))
}

// Contains returns true if an element equal to key is present. Only valid in
// comparator mode.
func (t *Tree[T]) Contains(key T) bool {
	return t.Get(key) != nil
}

// SeekGE returns the first node whose key is greater than or equal to key, or
// nil if there is none. Only valid in comparator mode.
func (t *Tree[T]) SeekGE(key T) *Node[T] {
	t.checkOrdered("SeekGE")
	n := t.root
	ge := t.sentinel
	for n != t.sentinel {
		c := t.cmp(key, n.data)
		switch {
		case c < 0:
			ge = n
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return realOrNil(ge)
}

// SeekLT returns the last node whose key is strictly less than key, or nil if
// there is none. Only valid in comparator mode.
func (t *Tree[T]) SeekLT(key T) *Node[T] {
	t.checkOrdered("SeekLT")
	n := t.root
	lt := t.sentinel
	for n != t.sentinel {
		if t.cmp(key, n.data) > 0 {
			lt = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return realOrNil(lt)
}

func (t *Tree[T]) search(key T) *Node[T] {
	n := t.root
	for n != t.sentinel {
		c := t.cmp(key, n.data)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return t.sentinel
}
