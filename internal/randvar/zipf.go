// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// DefaultTheta is the skew used by YCSB-style workloads.
const DefaultTheta = 0.99

// Zipf draws values from [min, max] following a Zipf distribution in which
// min is the most likely value. It uses the method of Gray et al., "Quickly
// Generating Billion-Record Synthetic Databases" (SIGMOD 1994), which unlike
// rand.Zipf accepts any theta in (0, 1).
type Zipf struct {
	min, max uint64
	theta    float64
	alpha    float64
	eta      float64
	zetaN    float64
	rng      lockedRand
}

var _ Static = (*Zipf)(nil)

// NewZipf returns a Zipf variable over [min, max] with skew theta.
func NewZipf(rng *rand.Rand, min, max uint64, theta float64) (*Zipf, error) {
	if min > max {
		return nil, errors.Newf("randvar: min %d > max %d", min, max)
	}
	if theta <= 0 || theta >= 1 {
		return nil, errors.Newf("randvar: zipf theta %.2f not in (0, 1)", theta)
	}
	z := &Zipf{min: min, max: max, theta: theta}
	z.rng.init(rng)
	z.zetaN = zeta(max-min+1, theta)
	zeta2 := zeta(2, theta)
	z.alpha = 1 / (1 - theta)
	z.eta = (1 - math.Pow(2/float64(max-min+1), 1-theta)) / (1 - zeta2/z.zetaN)
	return z, nil
}

// zeta computes 1/1^theta + 1/2^theta + ... + 1/n^theta.
func zeta(n uint64, theta float64) float64 {
	var sum float64
	for i := uint64(1); i <= n; i++ {
		sum += 1 / math.Pow(float64(i), theta)
	}
	return sum
}

// Uint64 implements Static.
func (z *Zipf) Uint64() uint64 {
	u := z.rng.float64()
	uz := u * z.zetaN
	switch {
	case uz < 1:
		return z.min
	case uz < 1+math.Pow(0.5, z.theta):
		return min(z.min+1, z.max)
	}
	spread := float64(z.max - z.min + 1)
	v := z.min + uint64(spread*math.Pow(z.eta*u-z.eta+1, z.alpha))
	return min(v, z.max)
}
