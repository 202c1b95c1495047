// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"regexp"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

var specRE = regexp.MustCompile(`^(?:(uniform|zipf|seq):)?(\d+)(?:-(\d+))?$`)

// Parse parses a variable spec of the form "[uniform|zipf|seq:]min[-max]".
// The distribution defaults to uniform and max defaults to min.
func Parse(rng *rand.Rand, spec string) (Static, error) {
	m := specRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, errors.Newf("randvar: invalid spec %q", spec)
	}
	lo, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "randvar: invalid spec %q", spec)
	}
	hi := lo
	if m[3] != "" {
		if hi, err = strconv.ParseUint(m[3], 10, 64); err != nil {
			return nil, errors.Wrapf(err, "randvar: invalid spec %q", spec)
		}
	}
	if lo > hi {
		return nil, errors.Newf("randvar: invalid spec %q: min > max", spec)
	}
	switch m[1] {
	case "zipf":
		return NewZipf(rng, lo, hi, DefaultTheta)
	case "seq":
		return NewSequential(lo, hi), nil
	default:
		return NewUniform(rng, lo, hi), nil
	}
}
