// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	seed    uint64
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rbtree [command] (flags)",
	Short: "rbtree benchmarking/introspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(benchCmd, shapeCmd)

	for _, cmd := range []*cobra.Command{benchCmd, shapeCmd} {
		cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
		cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress")
		cmd.Flags().BoolVar(
			&positional, "positional", false,
			"use a position-mode tree (keys become widths) instead of an ordered tree")
		cmd.Flags().StringVar(
			&keySpec, "keys", "uniform:1-1000000",
			"key distribution: [uniform|zipf|seq:]min[-max]")
	}

	benchCmd.Flags().IntVarP(&benchConfig.ops, "num-ops", "n", 100000, "number of write-phase operations")
	benchCmd.Flags().IntVar(
		&benchConfig.deletePercent, "delete-percent", 30,
		"percent (0-100) of write-phase operations that are deletions")
	benchCmd.Flags().IntVar(
		&benchConfig.lookupPercent, "lookup-percent", 20,
		"percent (0-100) of write-phase operations that are lookups")
	benchCmd.Flags().Float64Var(
		&benchConfig.opsPerSec, "max-ops-per-sec", 0, "write-phase rate limit (0 means unlimited)")
	benchCmd.Flags().IntVarP(
		&benchConfig.readers, "concurrency", "c", 4, "number of concurrent readers in the read phase")
	benchCmd.Flags().IntVar(&benchConfig.reads, "reads", 100000, "read-phase operations per reader")

	shapeCmd.Flags().IntVarP(&shapeConfig.count, "count", "n", 100000, "number of elements to insert")
	shapeCmd.Flags().IntVar(&shapeConfig.height, "height", 15, "height of the plot in lines")
	shapeCmd.Flags().IntVar(&shapeConfig.samples, "samples", 80, "number of points in the plot")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
