// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package orderedset implements a set of elements kept in ascending order
// under a caller-supplied total order. It is a thin layer over a
// comparator-mode rbtree.Tree: every element has zero width and each element
// appears at most once.
//
// A Set is not safe for concurrent mutation. Concurrent readers are allowed
// as long as no goroutine modifies the set.
package orderedset

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/rbtree"
	"github.com/cockroachdb/redact"
)

// Set is an ordered set of elements of type T.
type Set[T any] struct {
	tree rbtree.Tree[T]
}

// New returns an empty set ordered by compare, which must define a total
// order over T (see rbtree.Options.Compare).
func New[T any](compare func(a, b T) int) *Set[T] {
	s := &Set[T]{}
	s.tree.Init(&rbtree.Options[T]{Compare: compare})
	return s
}

// NewOrdered returns an empty set using the natural order of T.
func NewOrdered[T cmp.Ordered]() *Set[T] {
	return New(rbtree.DefaultCompare[T])
}

// orderedSet is implemented by every instantiation of Set.
type orderedSet interface {
	isOrderedSet()
}

func (s *Set[T]) isOrderedSet() {}

// IsOrderedSet returns true if x is a *Set of any element type.
func IsOrderedSet(x any) bool {
	_, ok := x.(orderedSet)
	return ok
}

// Order returns the comparison function of the set.
func (s *Set[T]) Order() func(a, b T) int {
	return s.tree.Compare()
}

// IsEmpty returns true if the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Count returns the number of elements in the set.
func (s *Set[T]) Count() int {
	return s.tree.Len()
}

// Member returns true if an element equal to x is in the set.
func (s *Set[T]) Member(x T) bool {
	return s.tree.Contains(x)
}

// Add inserts x. It returns false, leaving the set unchanged, if an equal
// element is already present.
func (s *Set[T]) Add(x T) bool {
	_, added := s.tree.Insert(x)
	return added
}

// Remove deletes the element equal to x. It returns false if there was no
// such element.
func (s *Set[T]) Remove(x T) bool {
	return s.tree.Delete(x)
}

// ToList returns the elements in ascending order.
func (s *Set[T]) ToList() []T {
	return s.tree.Values()
}

// All returns an iterator over the elements in ascending order. The set must
// not be modified during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range s.tree.All() {
			if !yield(n.Data()) {
				return
			}
		}
	}
}

// Min returns the smallest element. ok is false if the set is empty.
func (s *Set[T]) Min() (x T, ok bool) {
	if n := s.tree.First(); n != nil {
		return n.Data(), true
	}
	return x, false
}

// Max returns the largest element. ok is false if the set is empty.
func (s *Set[T]) Max() (x T, ok bool) {
	if n := s.tree.Last(); n != nil {
		return n.Data(), true
	}
	return x, false
}

// SafeFormat implements redact.SafeFormatter. Elements are user data and are
// redactable.
func (s *Set[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString("{")
	i := 0
	for x := range s.All() {
		if i > 0 {
			w.SafeString(" ")
		}
		w.Print(x)
		i++
	}
	w.SafeString("}")
}

// String implements fmt.Stringer.
func (s *Set[T]) String() string {
	return redact.StringWithoutMarkers(s)
}
