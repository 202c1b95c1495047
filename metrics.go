// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/rbtree/internal/invariants"
	"github.com/cockroachdb/redact"
)

// Metrics holds counters describing the work done by a tree since it was
// created. Only mutating operations update the counters.
type Metrics struct {
	// Inserts is the number of nodes added to the tree.
	Inserts uint64
	// Deletes is the number of nodes removed from the tree.
	Deletes uint64
	// Rotations is the number of single rotations performed by insertion and
	// deletion fixup.
	Rotations uint64
	// InsertFixups is the number of iterations of the insertion fixup loop.
	InsertFixups uint64
	// DeleteFixups is the number of iterations of the deletion fixup loop.
	DeleteFixups uint64
}

// Sub returns the difference m - other. It is used to compute the metrics of
// an interval from two snapshots.
func (m Metrics) Sub(other Metrics) Metrics {
	return Metrics{
		Inserts:      invariants.SafeSub(m.Inserts, other.Inserts),
		Deletes:      invariants.SafeSub(m.Deletes, other.Deletes),
		Rotations:    invariants.SafeSub(m.Rotations, other.Rotations),
		InsertFixups: invariants.SafeSub(m.InsertFixups, other.InsertFixups),
		DeleteFixups: invariants.SafeSub(m.DeleteFixups, other.DeleteFixups),
	}
}

// RotationsPerMutation returns the average number of rotations per inserted
// or deleted node.
func (m Metrics) RotationsPerMutation() float64 {
	if n := m.Inserts + m.Deletes; n > 0 {
		return float64(m.Rotations) / float64(n)
	}
	return 0
}

func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("inserts: %s  deletes: %s  rotations: %s  insert-fixups: %s  delete-fixups: %s",
		crhumanize.Count(m.Inserts, crhumanize.Compact),
		crhumanize.Count(m.Deletes, crhumanize.Compact),
		crhumanize.Count(m.Rotations, crhumanize.Compact),
		crhumanize.Count(m.InsertFixups, crhumanize.Compact),
		crhumanize.Count(m.DeleteFixups, crhumanize.Compact),
	)
}

// beginOp is called at the start of every mutating operation.
func (t *Tree[T]) beginOp() {
	t.opRotations = 0
}

// endOp is called once a mutating operation has restored all invariants.
func (t *Tree[T]) endOp() {
	if h := t.opts.RotationsPerOp; h != nil {
		h.Observe(float64(t.opRotations))
	}
	t.maybeCheckInvariants()
}
