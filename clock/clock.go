// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package clock provides the monotonic time source and periodic scheduling
// primitives shared by the market-data engine, the performance monitor, and
// the FIX session engine's heartbeat cadence.
package clock

import (
	"time"

	"github.com/agilira/go-timecache"
)

// Instant is a monotonic nanosecond timestamp. It is never derived from
// wall-clock time and is unaffected by system time adjustments: it wraps
// time.Time, which on every platform Go supports carries a monotonic
// reading alongside the wall clock, and Instant only ever compares via
// Sub/Before, which read that monotonic component.
type Instant struct {
	t time.Time
}

// Now returns the current monotonic instant. This is the only source of
// timestamps for Tick, Trade, Order, latency samples, and session
// lifecycle events.
func Now() Instant {
	return Instant{t: time.Now()}
}

// processStart anchors UnixNano's epoch offset; it is read once.
var processStart = time.Now()

// UnixNano returns the instant as nanoseconds since the Unix epoch, for wire
// encoding and storage where a plain int64 is more convenient than an
// Instant. The value is processStart's Unix time plus the monotonic time
// elapsed since then, so system time adjustments made after the process
// starts do not affect it.
func (i Instant) UnixNano() int64 {
	return processStart.UnixNano() + int64(i.t.Sub(processStart))
}

// Sub returns the duration elapsed from other to i.
func (i Instant) Sub(other Instant) time.Duration {
	return i.t.Sub(other.t)
}

// Before reports whether i occurs before other.
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// IsZero reports whether i is the zero Instant.
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

// Cached is a resolution-bounded, syscall-amortized time source for
// high-frequency callers that do not need nanosecond precision, such as the
// performance monitor's elapsed-time sampling (PeriodicTimer reads time.Now
// directly). It is backed by go-timecache, which refreshes a
// cached time.Time on a background ticker instead of reading the clock on
// every call.
//
// Cached must never be used to stamp a Tick, Trade, Order, or session
// event — those always go through Now.
type Cached struct {
	tc *timecache.TimeCache
}

// NewCached creates a cached clock refreshed at the given resolution.
// A coarser resolution amortizes more reads per refresh at the cost of
// staleness up to that resolution.
func NewCached(resolution time.Duration) *Cached {
	return &Cached{tc: timecache.NewWithResolution(resolution)}
}

// Now returns the most recently cached wall-clock reading.
func (c *Cached) Now() time.Time {
	return c.tc.CachedTime()
}

// Stop releases the cached clock's background refresh goroutine.
func (c *Cached) Stop() {
	c.tc.Stop()
}
