// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rbtree/internal/treespec"
	"github.com/stretchr/testify/require"
)

// buildTree constructs a tree with the exact shape described by spec (see
// treespec.Parse). Each line is "<key> <red|black> [w=<width>]"; other fields
// (like the sw= field produced by DebugString) are ignored and subtree widths
// are computed. The resulting tree must satisfy all the invariants.
func buildTree(t *testing.T, ordered bool, spec string) *Tree[string] {
	t.Helper()
	root, err := treespec.Parse(spec)
	require.NoError(t, err)
	var opts *Options[string]
	if ordered {
		opts = &Options[string]{Compare: DefaultCompare[string]}
	}
	tr := New(opts)
	var build func(sn *treespec.Node, parent *Node[string]) *Node[string]
	build = func(sn *treespec.Node, parent *Node[string]) *Node[string] {
		if sn == nil {
			return tr.sentinel
		}
		fields := sn.Fields()
		require.GreaterOrEqual(t, len(fields), 2, "invalid node %q", sn.Label)
		n := &Node[string]{data: fields[0], parent: parent}
		switch fields[1] {
		case "red":
			n.color = Red
		case "black":
			n.color = Black
		default:
			t.Fatalf("invalid color in %q", sn.Label)
		}
		for _, f := range fields[2:] {
			if v, ok := strings.CutPrefix(f, "w="); ok {
				n.width, err = strconv.ParseInt(v, 10, 64)
				require.NoError(t, err)
			}
		}
		n.left = build(sn.Left, n)
		n.right = build(sn.Right, n)
		n.subtreeWidth = n.left.subtreeWidth + n.right.subtreeWidth + n.width
		tr.count++
		return n
	}
	tr.root = build(root, tr.sentinel)
	require.NoError(t, tr.CheckInvariants())
	return tr
}

// requirePrecondition asserts that fn panics with an error marked as
// ErrPreconditionViolation.
func requirePrecondition(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "expected an error, got %T: %v", r, r)
		require.True(t, errors.Is(err, ErrPreconditionViolation), "unexpected error: %v", err)
	}()
	fn()
}

func requireValid[T any](t *testing.T, tr *Tree[T]) {
	t.Helper()
	if err := tr.CheckInvariants(); err != nil {
		t.Fatalf("%+v\n%s", err, tr.DebugString())
	}
}
