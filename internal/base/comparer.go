// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "cmp"

// DefaultCompare is the default total order over ordered types. Strings
// compare byte-wise, numbers numerically. NaN compares less than any other
// float and equal to itself.
func DefaultCompare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Reverse returns a comparison function that orders keys in the opposite
// direction of c.
func Reverse[T any](c func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return c(b, a)
	}
}

// FormatOrder returns the symbolic form of the result of a comparison: "<", "="
// or ">".
func FormatOrder(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}
