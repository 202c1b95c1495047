// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package rbtree implements a red-black tree augmented with subtree widths.
//
// A single balancing engine serves two access patterns:
//
//   - Position mode (Options.Compare is nil). Every element carries a
//     non-negative width and the elements form a sequence whose order is
//     chosen by the caller (InsertFront, InsertBack, InsertAfter,
//     InsertBefore). SeekPosition finds the element covering a global offset
//     in O(log n) by descending on subtree widths.
//
//   - Comparator mode (Options.Compare is set). Elements are kept in ascending
//     order under a three-way comparison and each key appears at most once.
//     Insert, Get and Delete locate elements by key.
//
// Both modes maintain, after every public operation:
//
//  1. BST order (insertion order in position mode, strictly ascending keys in
//     comparator mode);
//  2. the red-black coloring rules: the root is black, a red node never has a
//     red child, and every root-to-nil path has the same number of black
//     nodes;
//  3. subtreeWidth(n) = subtreeWidth(left) + subtreeWidth(right) + width(n).
//
// As a consequence the height of a tree with n nodes is at most
// 2*log2(n+1).
//
// # Concurrency
//
// A Tree is not safe for concurrent mutation. Read-only methods (Get,
// Contains, SeekPosition, SeekGE, All, ToList, Len, Height, CheckInvariants)
// may run concurrently with each other but never concurrently with a
// mutation; callers must serialize writers externally.
package rbtree

import (
	"cmp"

	"github.com/cockroachdb/redact"
)

// Color is the color of a node.
type Color uint8

const (
	// Black is the zero value so that the sentinel and any zero Node read as
	// black.
	Black Color = iota
	Red
)

// String implements fmt.Stringer.
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// SafeValue implements redact.SafeValue.
func (c Color) SafeValue() {}

var _ redact.SafeValue = Color(0)

// Node is a node in a Tree. Nodes are created by the tree's insert methods
// and remain valid until they are removed from the tree.
//
// Links that do not point to a real node point to the tree's sentinel, a
// shared black node with zero width and no children.
type Node[T any] struct {
	data T
	// width is the width of this element alone.
	width int64
	// subtreeWidth is the sum of the widths of every node in the subtree
	// rooted at this node.
	subtreeWidth int64
	color        Color

	// parent is a back reference used for upward walks. It is nil only for
	// the sentinel and for nodes that have been removed from their tree.
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
}

// isNil returns true if n is a tree sentinel. The sentinel is the only node
// without children links.
func (n *Node[T]) isNil() bool {
	return n.left == nil
}

// Data returns the element stored in the node.
func (n *Node[T]) Data() T {
	return n.data
}

// Width returns the width of the node's element.
func (n *Node[T]) Width() int64 {
	return n.width
}

// SubtreeWidth returns the total width of the subtree rooted at n.
func (n *Node[T]) SubtreeWidth() int64 {
	return n.subtreeWidth
}

// Color returns the color of the node.
func (n *Node[T]) Color() Color {
	return n.color
}

// IsRed returns true if the node is red.
func (n *Node[T]) IsRed() bool {
	return n.color == Red
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return realOrNil(n.left)
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return realOrNil(n.right)
}

// Parent returns the parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	if n.parent == nil {
		return nil
	}
	return realOrNil(n.parent)
}

func realOrNil[T any](n *Node[T]) *Node[T] {
	if n == nil || n.isNil() {
		return nil
	}
	return n
}

// Tree is a red-black tree augmented with subtree widths. See the package
// documentation for the two modes of operation.
type Tree[T any] struct {
	root *Node[T]
	// sentinel stands in for every nil link. It is always black, has zero
	// width and never has children. Its parent field is scratch space used by
	// deletion fixup.
	sentinel *Node[T]
	cmp      func(a, b T) int
	count    int
	opts     Options[T]

	metrics Metrics
	// opRotations counts the rotations performed by the mutation in progress.
	opRotations int
}

// New creates an empty tree. opts may be nil, in which case the tree is in
// position mode with default options.
func New[T any](opts *Options[T]) *Tree[T] {
	t := &Tree[T]{}
	t.Init(opts)
	return t
}

// NewOrdered creates an empty comparator-mode tree that uses the default
// total order for T.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(&Options[T]{Compare: DefaultCompare[T]})
}

// Init can be used instead of New when the tree is embedded in another
// struct. Any previous contents are discarded.
func (t *Tree[T]) Init(opts *Options[T]) {
	*t = Tree[T]{
		opts:     *opts.Clone().EnsureDefaults(),
		sentinel: &Node[T]{color: Black},
	}
	t.cmp = t.opts.Compare
	t.root = t.sentinel
}

// Ordered returns true if the tree is in comparator mode.
func (t *Tree[T]) Ordered() bool {
	return t.cmp != nil
}

// Compare returns the tree's comparison function, or nil in position mode.
func (t *Tree[T]) Compare() func(a, b T) int {
	return t.cmp
}

// IsEmpty returns true if the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == t.sentinel
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Width returns the total width of all the elements in the tree.
func (t *Tree[T]) Width() int64 {
	return t.root.subtreeWidth
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return realOrNil(t.root)
}

// Metrics returns the tree's operation counters.
func (t *Tree[T]) Metrics() Metrics {
	return t.metrics
}

func (t *Tree[T]) newNode(data T, width int64, parent *Node[T]) *Node[T] {
	return &Node[T]{
		data:         data,
		width:        width,
		subtreeWidth: width,
		color:        Red,
		parent:       parent,
		left:         t.sentinel,
		right:        t.sentinel,
	}
}

func (t *Tree[T]) minNode(n *Node[T]) *Node[T] {
	if n == t.sentinel {
		return t.sentinel
	}
	for n.left != t.sentinel {
		n = n.left
	}
	return n
}

func (t *Tree[T]) maxNode(n *Node[T]) *Node[T] {
	if n == t.sentinel {
		return t.sentinel
	}
	for n.right != t.sentinel {
		n = n.right
	}
	return n
}

// contains returns true if n is linked into t. It walks up to the root, so it
// is only used to validate arguments of operations that are already O(log n).
func (t *Tree[T]) contains(n *Node[T]) bool {
	if n == nil || n.parent == nil || n.isNil() {
		return false
	}
	for !n.parent.isNil() {
		n = n.parent
	}
	return n == t.root
}
