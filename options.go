// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import "github.com/prometheus/client_golang/prometheus"

// Options holds the optional parameters for configuring a Tree. The zero
// value is a valid configuration for a position-mode tree.
type Options[T any] struct {
	// Compare, when set, puts the tree in comparator mode: elements are kept
	// in ascending order under Compare and are inserted, looked up and deleted
	// by key (Insert, Get, Delete). Each key appears at most once.
	//
	// When Compare is nil the tree is in position mode: elements are placed by
	// the caller (InsertFront, InsertBack, InsertAfter, InsertBefore) and
	// located by cumulative width (SeekPosition).
	//
	// Compare must return -1, 0, or +1 depending on whether a is 'less than',
	// 'equal to' or 'greater than' b, and must define a total order.
	Compare func(a, b T) int

	// Logger used to report invariant violations detected in invariant builds.
	// Defaults to DefaultLogger.
	Logger Logger

	// RotationsPerOp, if set, observes the number of rotations performed by
	// every mutating operation (insertions, deletions and width updates).
	RotationsPerOp prometheus.Histogram
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options[T]) EnsureDefaults() *Options[T] {
	if o == nil {
		o = &Options[T]{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	return o
}

// Clone creates a shallow copy of the supplied options.
func (o *Options[T]) Clone() *Options[T] {
	n := &Options[T]{}
	if o != nil {
		*n = *o
	}
	return n
}
