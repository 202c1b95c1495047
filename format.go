// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/redact"
)

// SafeFormat implements redact.SafeFormatter. The element is considered
// unsafe (it is user data); the color and widths are safe.
func (n *Node[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%v %s w=%d sw=%d", n.data, n.color, n.width, n.subtreeWidth)
}

// String implements fmt.Stringer.
func (n *Node[T]) String() string {
	return redact.StringWithoutMarkers(n)
}

// DebugString returns a multi-line rendering of the tree shape. Each line
// describes one node (see Node.String) and is indented two spaces more than
// its parent. A node with children lists its left child first and then its
// right child; a missing child is rendered as "-" when the other child is
// present. For example:
//
//	b black w=1 sw=3
//	  c red w=1 sw=1
//	  a red w=1 sw=1
func (t *Tree[T]) DebugString() string {
	if t.root == t.sentinel {
		return "<empty>\n"
	}
	var buf strings.Builder
	t.debugFormat(&buf, t.root, 0)
	return buf.String()
}

func (t *Tree[T]) debugFormat(buf *strings.Builder, n *Node[T], depth int) {
	indent := strings.Repeat("  ", depth)
	if n == t.sentinel {
		fmt.Fprintf(buf, "%s-\n", indent)
		return
	}
	fmt.Fprintf(buf, "%s%s\n", indent, n.String())
	if n.left == t.sentinel && n.right == t.sentinel {
		return
	}
	t.debugFormat(buf, n.left, depth+1)
	t.debugFormat(buf, n.right, depth+1)
}
