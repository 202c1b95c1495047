// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rbtree"
	"github.com/cockroachdb/rbtree/internal/randvar"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

type shapeOptions struct {
	count   int
	height  int
	samples int
}

var shapeConfig shapeOptions

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "plot the height of a tree as it grows",
	Long: `
Inserts elements drawn from the key distribution and plots the height of the
tree against the number of elements, along with the 2*log2(n+1) bound.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShape(cmd.OutOrStdout(), shapeConfig)
	},
}

func runShape(out io.Writer, cfg shapeOptions) error {
	if cfg.count <= 0 || cfg.samples <= 0 {
		return errors.Newf("count and samples must be positive")
	}
	keys, err := randvar.Parse(randvar.NewRand(seed), keySpec)
	if err != nil {
		return err
	}
	var opts *rbtree.Options[uint64]
	if !positional {
		opts = &rbtree.Options[uint64]{Compare: rbtree.DefaultCompare[uint64]}
	}
	t := rbtree.New(opts)

	every := max(cfg.count/cfg.samples, 1)
	var heights []float64
	for i := 1; i <= cfg.count; i++ {
		v := keys.Uint64()
		if positional {
			t.InsertBack(v, 1)
		} else {
			t.Insert(v)
		}
		if i%every == 0 {
			heights = append(heights, float64(t.Height()))
		}
	}
	if err := t.CheckInvariants(); err != nil {
		return err
	}

	fmt.Fprintln(out, asciigraph.Plot(heights,
		asciigraph.Height(cfg.height),
		asciigraph.Caption(fmt.Sprintf("height every %d insertions", every))))
	bound := 2 * math.Log2(float64(t.Len()+1))
	fmt.Fprintf(out, "elements: %d  height: %d  bound: %.1f\n", t.Len(), t.Height(), bound)
	fmt.Fprintf(out, "%s\n", t.Metrics())
	return nil
}
