// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treespec parses an indentation-based description of a binary tree
// shape. It is used by tests to construct trees with an exact layout (for
// example, a particular red-black coloring that exercises one fixup case).
package treespec

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Nil is the label used for a missing child.
const Nil = "-"

// Node is a node of a parsed binary tree.
type Node struct {
	// Label is the contents of the line for this node, without indentation.
	Label string
	// Left and Right are nil for missing children.
	Left, Right *Node
}

// Fields returns the whitespace-separated fields of the label.
func (n *Node) Fields() []string {
	return strings.Fields(n.Label)
}

// Parse a multi-line input string into a binary tree. For example:
//
//	d
//	  b
//	    a
//	    c
//	  e
//	    -
//	    f
//
// is parsed into a tree rooted at d, with children b (left) and e (right). b
// has two children a and c; e has no left child and right child f.
//
// A node lists either no children or exactly two; a missing child is written
// as "-". The indentation step is arbitrary but it must be consistent, and
// tabs cannot be used for indentation. The input must describe a single root.
func Parse(input string) (*Node, error) {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, errors.Errorf("empty input")
	}
	lines := strings.Split(input, "\n")
	indentLevel := make([]int, len(lines))
	for i, line := range lines {
		level := 0
		for strings.HasPrefix(line[level:], " ") {
			level++
		}
		if len(line) == level {
			return nil, errors.Errorf("empty line in input:\n%s", input)
		}
		if line[level] == '\t' {
			return nil, errors.Errorf("tab indentation in input:\n%s", input)
		}
		indentLevel[i] = level
	}
	levels := slices.Clone(indentLevel)
	slices.Sort(levels)
	levels = slices.Compact(levels)

	// parse returns the nodes at depth levelIdx described by lines
	// [start, end].
	var parse func(levelIdx, start, end int) ([]*Node, error)
	parse = func(levelIdx, start, end int) ([]*Node, error) {
		var nodes []*Node
		for i := start; i <= end; {
			if indentLevel[i] != levels[levelIdx] {
				return nil, errors.Errorf("inconsistent indentation in input:\n%s", input)
			}
			next := i + 1
			for next <= end && indentLevel[next] > levels[levelIdx] {
				next++
			}
			label := lines[i][indentLevel[i]:]
			children, err := parse(levelIdx+1, i+1, next-1)
			if err != nil {
				return nil, err
			}
			var n *Node
			switch {
			case label == Nil && len(children) > 0:
				return nil, errors.Errorf("missing child %q cannot have children", Nil)
			case label == Nil:
			case len(children) == 0:
				n = &Node{Label: label}
			case len(children) == 2:
				n = &Node{Label: label, Left: children[0], Right: children[1]}
			default:
				return nil, errors.Errorf(
					"node %q has %d children; list both children, using %q for a missing one",
					label, len(children), Nil)
			}
			nodes = append(nodes, n)
			i = next
		}
		return nodes, nil
	}
	roots, err := parse(0, 0, len(lines)-1)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, errors.Errorf("expected a single root, found %d", len(roots))
	}
	if roots[0] == nil {
		return nil, errors.Errorf("root cannot be %q", Nil)
	}
	return roots[0], nil
}

// String renders the tree back in the format accepted by Parse, using two
// spaces per indentation level.
func (n *Node) String() string {
	var buf strings.Builder
	var format func(n *Node, depth int)
	format = func(n *Node, depth int) {
		buf.WriteString(strings.Repeat("  ", depth))
		if n == nil {
			buf.WriteString(Nil + "\n")
			return
		}
		buf.WriteString(n.Label + "\n")
		if n.Left != nil || n.Right != nil {
			format(n.Left, depth+1)
			format(n.Right, depth+1)
		}
	}
	format(n, 0)
	return buf.String()
}
