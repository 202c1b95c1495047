// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rbtree"
	"github.com/cockroachdb/rbtree/internal/randvar"
	"github.com/cockroachdb/rbtree/internal/rate"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var (
	positional bool
	keySpec    string
)

type benchOptions struct {
	ops           int
	deletePercent int
	lookupPercent int
	opsPerSec     float64
	readers       int
	reads         int
}

var benchConfig benchOptions

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "run a synthetic workload against a tree",
	Long: `
Runs a single-threaded write phase mixing insertions, deletions and lookups,
followed by a read phase in which concurrent readers query the final tree.
Latencies are summarized per operation.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var logger rbtree.Logger = rbtree.NoopLogger{}
		if verbose {
			logger = rbtree.DefaultLogger
		}
		return runBench(cmd.OutOrStdout(), logger, benchConfig)
	},
}

// workload abstracts over the two tree modes.
type workload interface {
	insert(v uint64)
	// remove deletes the element selected by v; it returns false if there
	// was nothing to delete.
	remove(v uint64) bool
	lookup(v uint64) bool
	tree() treeStats
}

type treeStats interface {
	Len() int
	Width() int64
	Height() int
	Metrics() rbtree.Metrics
	CheckInvariants() error
}

// orderedWorkload uses the drawn values as keys.
type orderedWorkload struct {
	t *rbtree.Tree[uint64]
}

func (w orderedWorkload) insert(v uint64) { w.t.InsertWidth(v, 1) }
func (w orderedWorkload) remove(v uint64) bool { return w.t.Delete(v) }
func (w orderedWorkload) lookup(v uint64) bool { return w.t.Contains(v) }
func (w orderedWorkload) tree() treeStats { return w.t }

// positionalWorkload appends elements whose width is the drawn value
// (bounded), and addresses existing elements by offset.
type positionalWorkload struct {
	t *rbtree.Tree[uint64]
}

const maxPositionalWidth = 64

func (w positionalWorkload) insert(v uint64) {
	width := int64(v%maxPositionalWidth) + 1
	if v%2 == 0 {
		w.t.InsertBack(v, width)
	} else {
		w.t.InsertFront(v, width)
	}
}

func (w positionalWorkload) seek(v uint64) *rbtree.Node[uint64] {
	if w.t.Width() == 0 {
		return nil
	}
	n, _, err := w.t.SeekPosition(int64(v % uint64(w.t.Width())))
	if err != nil {
		panic(errors.AssertionFailedf("seek within bounds failed: %v", err))
	}
	return n
}

func (w positionalWorkload) remove(v uint64) bool {
	n := w.seek(v)
	if n == nil {
		return false
	}
	w.t.Remove(n)
	return true
}

func (w positionalWorkload) lookup(v uint64) bool { return w.seek(v) != nil }
func (w positionalWorkload) tree() treeStats { return w.t }

func runBench(out io.Writer, logger rbtree.Logger, cfg benchOptions) error {
	if cfg.deletePercent < 0 || cfg.lookupPercent < 0 || cfg.deletePercent+cfg.lookupPercent > 100 {
		return errors.Newf("invalid operation mix: %d%% deletes, %d%% lookups",
			cfg.deletePercent, cfg.lookupPercent)
	}
	rng := randvar.NewRand(seed)
	keys, err := randvar.Parse(rng, keySpec)
	if err != nil {
		return err
	}

	rotations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rbtree_rotations_per_op",
		Help:    "Rotations performed by each mutation.",
		Buckets: prometheus.LinearBuckets(0, 1, 4),
	})
	opts := &rbtree.Options[uint64]{RotationsPerOp: rotations}
	if !positional {
		opts.Compare = rbtree.DefaultCompare[uint64]
	}
	opts.Logger = logger
	t := rbtree.New(opts)
	var wl workload = orderedWorkload{t}
	if positional {
		wl = positionalWorkload{t}
	}

	hists := newHistogramRegistry()
	insertHist, deleteHist, lookupHist := hists.Get("insert"), hists.Get("delete"), hists.Get("lookup")
	limiter := rate.NewLimiter(cfg.opsPerSec, 1)

	start := time.Now()
	for i := 0; i < cfg.ops; i++ {
		limiter.Wait(1)
		v := keys.Uint64()
		p := rng.Intn(100)
		opStart := time.Now()
		switch {
		case p < cfg.deletePercent:
			wl.remove(v)
			deleteHist.Record(time.Since(opStart))
		case p < cfg.deletePercent+cfg.lookupPercent:
			wl.lookup(v)
			lookupHist.Record(time.Since(opStart))
		default:
			wl.insert(v)
			insertHist.Record(time.Since(opStart))
		}
		if (i+1)%100000 == 0 {
			logger.Infof("bench: %d/%d write operations, %d elements", i+1, cfg.ops, t.Len())
		}
	}
	writeElapsed := time.Since(start)
	if err := wl.tree().CheckInvariants(); err != nil {
		return errors.Wrap(err, "tree corrupted by write phase")
	}

	// Read phase: the tree is no longer modified, so readers run without
	// synchronization.
	readHist := hists.Get("read")
	start = time.Now()
	var g errgroup.Group
	for r := 0; r < cfg.readers; r++ {
		readerRng := rand.New(rand.NewSource(seed + uint64(r) + 1))
		g.Go(func() error {
			h := newHistogram()
			for i := 0; i < cfg.reads; i++ {
				v := readerRng.Uint64()
				opStart := time.Now()
				wl.lookup(v)
				elapsed := min(max(time.Since(opStart), minLatency), maxLatency)
				if err := h.RecordValue(elapsed.Nanoseconds()); err != nil {
					return err
				}
			}
			readHist.Merge(h)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	readElapsed := time.Since(start)

	fmt.Fprintf(out, "write phase: %d ops in %s", cfg.ops, writeElapsed.Round(time.Millisecond))
	if w := limiter.Waited(); w > 0 {
		fmt.Fprintf(out, " (%s rate limited)", w.Round(time.Millisecond))
	}
	fmt.Fprintf(out, "\nread phase: %d readers x %d ops in %s\n",
		cfg.readers, cfg.reads, readElapsed.Round(time.Millisecond))
	hists.Render(out, writeElapsed+readElapsed)

	ts := wl.tree()
	fmt.Fprintf(out, "elements: %d  width: %d  height: %d\n", ts.Len(), ts.Width(), ts.Height())
	m := ts.Metrics()
	fmt.Fprintf(out, "%s\n", m)
	metric := &dto.Metric{}
	if err := rotations.Write(metric); err != nil {
		return err
	}
	if n := metric.GetHistogram().GetSampleCount(); n > 0 {
		fmt.Fprintf(out, "rotations/mutation: %.3f over %d mutations\n",
			metric.GetHistogram().GetSampleSum()/float64(n), n)
	}
	return nil
}
