// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package randvar provides random variables used to generate the keys and
// widths of synthetic tree workloads.
package randvar

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Static is a random variable with a fixed distribution.
type Static interface {
	// Uint64 draws a value. It is safe for concurrent use.
	Uint64() uint64
}

// NewRand creates a random number generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// lockedRand serializes access to a generator shared by a variable's callers.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *lockedRand) init(rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}
	r.rng = rng
}

func (r *lockedRand) float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *lockedRand) uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Uint64n(n)
}
