// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines fundamental types used across the rbtree packages,
// including comparison functions, loggers and error sentinels.
//
// The root rbtree package re-exports the types in this package that appear in
// its public API; client packages (orderedset, tokentree) depend on the root
// package rather than on base directly.
package base
