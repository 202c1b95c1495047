// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"cmp"

	"github.com/cockroachdb/rbtree/internal/base"
)

// Logger exports the base.Logger type.
type Logger = base.Logger

// InMemLogger exports the base.InMemLogger type.
type InMemLogger = base.InMemLogger

// NoopLogger exports the base.NoopLogger type.
type NoopLogger = base.NoopLogger

// DefaultLogger logs to the Go stdlib logs.
var DefaultLogger = base.DefaultLogger

// ErrOutOfRange is returned (wrapped) by SeekPosition when the requested
// offset is not covered by any node. Use errors.Is to test for it.
var ErrOutOfRange = base.ErrOutOfRange

// ErrPreconditionViolation marks panics raised when a primitive is misused,
// e.g. a positional insert into a comparator-ordered tree.
var ErrPreconditionViolation = base.ErrPreconditionViolation

// DefaultCompare is the default total order over ordered types.
func DefaultCompare[T cmp.Ordered](a, b T) int {
	return base.DefaultCompare(a, b)
}

// Reverse returns a comparison function ordering keys in the opposite
// direction of c.
func Reverse[T any](c func(a, b T) int) func(a, b T) int {
	return base.Reverse(c)
}

// FormatOrder returns "<", "=" or ">" for the result of a comparison.
func FormatOrder(c int) string {
	return base.FormatOrder(c)
}
