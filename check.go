// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rbtree/internal/invariants"
)

// CheckInvariants verifies the structure of the tree and returns an
// assertion failure describing the first violation found:
//
//   - parent links are consistent with child links;
//   - the root and the sentinel are black, and no red node has a red child;
//   - every root-to-nil path has the same number of black nodes;
//   - widths are non-negative and every subtree width is the sum of the
//     node's width and its children's subtree widths;
//   - in comparator mode, keys are strictly ascending;
//   - the node count matches Len() and the height is at most 2*log2(n+1).
//
// It runs in O(n) time. It is used by tests and, in invariant builds, after
// mutations.
func (t *Tree[T]) CheckInvariants() error {
	s := t.sentinel
	if s.color != Black || s.left != nil || s.right != nil || s.width != 0 || s.subtreeWidth != 0 {
		return errors.AssertionFailedf("rbtree: sentinel modified (color %s, width %d, subtree width %d)",
			s.color, s.width, s.subtreeWidth)
	}
	if t.root == s {
		if t.count != 0 {
			return errors.AssertionFailedf("rbtree: empty tree with count %d", t.count)
		}
		return nil
	}
	if t.root.parent != s {
		return errors.AssertionFailedf("rbtree: root has a parent")
	}
	if t.root.color != Black {
		return errors.AssertionFailedf("rbtree: root is red")
	}
	c := checker[T]{t: t}
	if _, err := c.check(t.root); err != nil {
		return err
	}
	if c.count != t.count {
		return errors.AssertionFailedf("rbtree: counted %d nodes, expected %d", c.count, t.count)
	}
	if h := t.Height(); float64(h) > 2*math.Log2(float64(t.count+1)) {
		return errors.AssertionFailedf("rbtree: height %d exceeds bound for %d nodes", h, t.count)
	}
	return nil
}

type checker[T any] struct {
	t     *Tree[T]
	count int
	prev  *Node[T]
}

// check validates the subtree rooted at n and returns its black height.
func (c *checker[T]) check(n *Node[T]) (blackHeight int, _ error) {
	s := c.t.sentinel
	if n == s {
		return 1, nil
	}
	if n.left == nil || n.right == nil {
		return 0, errors.AssertionFailedf("rbtree: node %v has a nil link", n.data)
	}
	for _, child := range [2]*Node[T]{n.left, n.right} {
		if child == s {
			continue
		}
		if child.parent != n {
			return 0, errors.AssertionFailedf("rbtree: child %v of %v has inconsistent parent link",
				child.data, n.data)
		}
		if n.color == Red && child.color == Red {
			return 0, errors.AssertionFailedf("rbtree: red node %v has red child %v", n.data, child.data)
		}
	}
	lh, err := c.check(n.left)
	if err != nil {
		return 0, err
	}

	c.count++
	if n.width < 0 {
		return 0, errors.AssertionFailedf("rbtree: node %v has negative width %d", n.data, n.width)
	}
	if c.t.cmp != nil && c.prev != nil && c.t.cmp(c.prev.data, n.data) >= 0 {
		return 0, errors.AssertionFailedf("rbtree: keys out of order: %v before %v", c.prev.data, n.data)
	}
	c.prev = n

	rh, err := c.check(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.AssertionFailedf("rbtree: node %v has black heights %d (left) and %d (right)",
			n.data, lh, rh)
	}
	if sum := n.left.subtreeWidth + n.right.subtreeWidth + n.width; sum != n.subtreeWidth {
		return 0, errors.AssertionFailedf("rbtree: node %v has subtree width %d, expected %d",
			n.data, n.subtreeWidth, sum)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}

// maybeCheckInvariants validates the tree in invariant builds. Small trees
// are always checked; larger ones are checked on a sample of operations to
// avoid quadratic test times.
func (t *Tree[T]) maybeCheckInvariants() {
	if !invariants.Enabled {
		return
	}
	if t.count <= 128 || invariants.Sometimes(5) {
		if err := t.CheckInvariants(); err != nil {
			t.opts.Logger.Fatalf("%+v", err)
		}
	}
}
