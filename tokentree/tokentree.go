// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tokentree maintains a sequence of tokens, each spanning a number of
// positions (its width), and answers "which token covers position p" in
// logarithmic time. It is built on a position-mode rbtree.Tree.
package tokentree

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rbtree"
)

// Token is an element of the sequence and the number of positions it spans.
type Token[T any] struct {
	Data  T
	Width int64
}

// Tree is a sequence of tokens. The zero value is not usable; use New.
type Tree[T any] struct {
	tree rbtree.Tree[T]
}

// New returns an empty token tree.
func New[T any]() *Tree[T] {
	t := &Tree[T]{}
	t.tree.Init(nil)
	return t
}

// InsertFront adds a token before all existing tokens. width must not be
// negative.
func (t *Tree[T]) InsertFront(data T, width int64) {
	t.tree.InsertFront(data, width)
}

// InsertBack adds a token after all existing tokens. width must not be
// negative.
func (t *Tree[T]) InsertBack(data T, width int64) {
	t.tree.InsertBack(data, width)
}

// Search returns the token covering offset and the offset relative to the
// start of that token. The returned error is marked with
// rbtree.ErrOutOfRange if offset is outside [0, Width()).
func (t *Tree[T]) Search(offset int64) (Token[T], int64, error) {
	n, local, err := t.tree.SeekPosition(offset)
	if err != nil {
		return Token[T]{}, 0, err
	}
	return Token[T]{Data: n.Data(), Width: n.Width()}, local, nil
}

// Remove deletes the token covering offset and returns it.
func (t *Tree[T]) Remove(offset int64) (Token[T], error) {
	n, _, err := t.tree.SeekPosition(offset)
	if err != nil {
		return Token[T]{}, errors.Wrap(err, "tokentree: remove")
	}
	tok := Token[T]{Data: n.Data(), Width: n.Width()}
	t.tree.Remove(n)
	return tok, nil
}

// SetWidth changes the width of the token covering offset. Positions of all
// the following tokens shift accordingly.
func (t *Tree[T]) SetWidth(offset int64, width int64) error {
	n, _, err := t.tree.SeekPosition(offset)
	if err != nil {
		return errors.Wrap(err, "tokentree: set width")
	}
	t.tree.SetWidth(n, width)
	return nil
}

// ToList returns the tokens in sequence order.
func (t *Tree[T]) ToList() []Token[T] {
	entries := t.tree.ToList()
	res := make([]Token[T], len(entries))
	for i, e := range entries {
		res[i] = Token[T]{Data: e.Data, Width: e.Width}
	}
	return res
}

// Height returns the height of the underlying balanced tree.
func (t *Tree[T]) Height() int {
	return t.tree.Height()
}

// Count returns the number of tokens.
func (t *Tree[T]) Count() int {
	return t.tree.Len()
}

// Width returns the sum of the widths of all tokens.
func (t *Tree[T]) Width() int64 {
	return t.tree.Width()
}
