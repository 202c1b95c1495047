// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrOutOfRange is returned (wrapped) by positional searches when the
// requested offset is negative, or not smaller than the total width of the
// tree. Searching an empty tree always fails with ErrOutOfRange.
var ErrOutOfRange = errors.New("rbtree: offset out of range")

// ErrPreconditionViolation marks panics raised when a tree primitive is
// invoked in a state it does not support, e.g. rotating a node toward a nil
// child, or inserting by position into a comparator-ordered tree. These are
// programming errors, not conditions callers are expected to handle.
var ErrPreconditionViolation = errors.New("rbtree: precondition violation")

// OutOfRangef returns an error marked as ErrOutOfRange.
func OutOfRangef(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrOutOfRange)
}

// PreconditionViolationf returns an assertion failure marked as
// ErrPreconditionViolation. It is intended to be passed to panic.
func PreconditionViolationf(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrPreconditionViolation)
}
