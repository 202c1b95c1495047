// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"sync/atomic"

	"golang.org/x/exp/rand"
)

// Uniform draws values uniformly from [min, max].
type Uniform struct {
	min, max uint64
	rng      lockedRand
}

var _ Static = (*Uniform)(nil)

// NewUniform returns a uniform variable over [min, max]. If rng is nil a
// randomly seeded generator is used.
func NewUniform(rng *rand.Rand, min, max uint64) *Uniform {
	u := &Uniform{min: min, max: max}
	u.rng.init(rng)
	return u
}

// Uint64 implements Static.
func (u *Uniform) Uint64() uint64 {
	return u.min + u.rng.uint64n(u.max-u.min+1)
}

// Sequential returns min, min+1, ..., max and then wraps around.
type Sequential struct {
	min, n uint64
	next   atomic.Uint64
}

var _ Static = (*Sequential)(nil)

// NewSequential returns a sequential variable over [min, max].
func NewSequential(min, max uint64) *Sequential {
	return &Sequential{min: min, n: max - min + 1}
}

// Uint64 implements Static.
func (s *Sequential) Uint64() uint64 {
	return s.min + (s.next.Add(1)-1)%s.n
}
