// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package rate paces the operations of a benchmark workload.
package rate

import (
	"sync"
	"time"

	"github.com/cockroachdb/tokenbucket"
)

// Limiter admits operations at a configured rate using a token bucket that
// holds at most burst tokens. A nil *Limiter admits everything.
//
// Limiter is safe for concurrent use.
type Limiter struct {
	mu struct {
		sync.Mutex
		tb tokenbucket.TokenBucket
	}
	opsPerSec float64
	sleepFn   func(d time.Duration)
	// waited is the total time spent sleeping in Wait, guarded by mu.
	waited time.Duration
}

// NewLimiter returns a limiter admitting opsPerSec operations per second. If
// opsPerSec is zero or negative, NewLimiter returns nil (no limit).
func NewLimiter(opsPerSec float64, burst float64) *Limiter {
	return newLimiter(opsPerSec, burst, nil, time.Sleep)
}

func newLimiter(
	opsPerSec float64, burst float64, nowFn func() time.Time, sleepFn func(time.Duration),
) *Limiter {
	if opsPerSec <= 0 {
		return nil
	}
	l := &Limiter{opsPerSec: opsPerSec, sleepFn: sleepFn}
	if nowFn != nil {
		l.mu.tb.InitWithNowFn(tokenbucket.TokensPerSecond(opsPerSec), tokenbucket.Tokens(burst), nowFn)
	} else {
		l.mu.tb.Init(tokenbucket.TokensPerSecond(opsPerSec), tokenbucket.Tokens(burst))
	}
	return l
}

// Wait blocks until n operations are admitted.
func (l *Limiter) Wait(n float64) {
	if l == nil {
		return
	}
	for {
		l.mu.Lock()
		ok, d := l.mu.tb.TryToFulfill(tokenbucket.Tokens(n))
		if !ok {
			l.waited += d
		}
		l.mu.Unlock()
		if ok {
			return
		}
		l.sleepFn(d)
	}
}

// Rate returns the configured rate, or 0 if l is nil.
func (l *Limiter) Rate() float64 {
	if l == nil {
		return 0
	}
	return l.opsPerSec
}

// Waited returns the total time Wait spent blocked.
func (l *Limiter) Waited() time.Duration {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.waited
}
