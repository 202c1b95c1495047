// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/olekukonko/tablewriter"
)

const (
	minLatency = 10 * time.Nanosecond
	maxLatency = 10 * time.Second
)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

// namedHistogram records the latencies of one kind of operation. It is safe
// for concurrent use.
type namedHistogram struct {
	name string
	mu   struct {
		sync.Mutex
		h *hdrhistogram.Histogram
	}
}

func (w *namedHistogram) Record(elapsed time.Duration) {
	elapsed = min(max(elapsed, minLatency), maxLatency)

	w.mu.Lock()
	err := w.mu.h.RecordValue(elapsed.Nanoseconds())
	w.mu.Unlock()

	if err != nil {
		// Values are clamped to the histogram's range so this cannot happen.
		panic(fmt.Sprintf(`%s: recording value: %s`, w.name, err))
	}
}

// Merge adds the values recorded in h.
func (w *namedHistogram) Merge(h *hdrhistogram.Histogram) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mu.h.Merge(h)
}

// histogramRegistry hands out one histogram per operation name.
type histogramRegistry struct {
	mu struct {
		sync.Mutex
		hists map[string]*namedHistogram
	}
}

func newHistogramRegistry() *histogramRegistry {
	r := &histogramRegistry{}
	r.mu.hists = make(map[string]*namedHistogram)
	return r
}

func (r *histogramRegistry) Get(name string) *namedHistogram {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.mu.hists[name]; ok {
		return h
	}
	h := &namedHistogram{name: name}
	h.mu.h = newHistogram()
	r.mu.hists[name] = h
	return h
}

// Render writes a latency summary table with one row per operation.
func (r *histogramRegistry) Render(w io.Writer, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.mu.hists))
	for name := range r.mu.hists {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"op", "ops", "ops/sec", "avg(ns)", "p50(ns)", "p95(ns)", "p99(ns)", "max(ns)"})
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, name := range names {
		h := r.mu.hists[name]
		h.mu.Lock()
		hist := h.mu.h
		tbl.Append([]string{
			name,
			fmt.Sprintf("%d", hist.TotalCount()),
			fmt.Sprintf("%.0f", float64(hist.TotalCount())/elapsed.Seconds()),
			fmt.Sprintf("%.0f", hist.Mean()),
			fmt.Sprintf("%d", hist.ValueAtQuantile(50)),
			fmt.Sprintf("%d", hist.ValueAtQuantile(95)),
			fmt.Sprintf("%d", hist.ValueAtQuantile(99)),
			fmt.Sprintf("%d", hist.Max()),
		})
		h.mu.Unlock()
	}
	tbl.Render()
}
