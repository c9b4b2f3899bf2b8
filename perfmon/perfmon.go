// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package perfmon tracks operation latency and throughput from the samples
// its callers record.
//
// Percentile extraction needs a full sorted view of recent samples; nothing
// in the retrieved pack offers a lock-free percentile structure, so the
// reservoir here is a plain mutex-guarded slice, snapshotted and sorted with
// the standard library's sort package on read. Counters that don't need a
// sorted view (operations, messages, bytes) use atomix so RecordOperation
// never takes the mutex; RecordLatency does.
package perfmon

import (
	"sort"
	"sync"
	"time"

	"code.hybscloud.com/atomix"

	"github.com/hftsim-go/core/clock"
)

const (
	// defaultCapacity is the soft cap on retained latency samples. On
	// overflow the oldest half is dropped rather than growing unbounded.
	defaultCapacity = 100_000

	// elapsedResolution bounds how often ThroughputStats' clock refreshes.
	// Elapsed-time sampling never needs nanosecond precision, so the cached
	// clock amortizes the syscall instead of reading wall time on every call.
	elapsedResolution = time.Millisecond
)

// Monitor accumulates latency samples and throughput counters.
type Monitor struct {
	mu       sync.Mutex
	samples  []time.Duration
	capacity int

	operations atomix.Uint64
	messages   atomix.Uint64
	bytes      atomix.Uint64

	clock *clock.Cached
	start time.Time
}

// New creates a Monitor with the default sample reservoir capacity.
func New() *Monitor {
	return NewWithCapacity(defaultCapacity)
}

// NewWithCapacity creates a Monitor whose latency reservoir holds at most
// capacity samples before dropping the oldest half.
func NewWithCapacity(capacity int) *Monitor {
	c := clock.NewCached(elapsedResolution)
	return &Monitor{
		samples:  make([]time.Duration, 0, capacity),
		capacity: capacity,
		clock:    c,
		start:    c.Now(),
	}
}

// Close releases the Monitor's background cached-clock refresh goroutine.
func (m *Monitor) Close() {
	m.clock.Stop()
}

// RecordLatency adds a single latency observation to the reservoir.
func (m *Monitor) RecordLatency(d time.Duration) {
	m.mu.Lock()
	if len(m.samples) >= m.capacity {
		half := len(m.samples) / 2
		copy(m.samples, m.samples[half:])
		m.samples = m.samples[:len(m.samples)-half]
	}
	m.samples = append(m.samples, d)
	m.mu.Unlock()
}

// RecordOperation increments the throughput counters for one processed
// message of the given wire size. Safe to call from any number of
// goroutines without touching the latency reservoir's mutex.
func (m *Monitor) RecordOperation(bytes int) {
	m.operations.AddAcqRel(1)
	m.messages.AddAcqRel(1)
	m.bytes.AddAcqRel(uint64(bytes))
}

// LatencyStats is a point-in-time summary of the latency reservoir.
type LatencyStats struct {
	Count int
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
	P99   time.Duration
}

// LatencyStats snapshots and sorts the current reservoir to compute
// min/max/mean/p99. O(n log n) in the sample count; call at monitoring
// cadence, not on the hot path.
func (m *Monitor) LatencyStats() LatencyStats {
	m.mu.Lock()
	snap := make([]time.Duration, len(m.samples))
	copy(snap, m.samples)
	m.mu.Unlock()

	if len(snap) == 0 {
		return LatencyStats{}
	}

	sort.Slice(snap, func(i, j int) bool { return snap[i] < snap[j] })

	var sum time.Duration
	for _, d := range snap {
		sum += d
	}

	idx := int(float64(len(snap)) * 0.99)
	if idx >= len(snap) {
		idx = len(snap) - 1
	}

	return LatencyStats{
		Count: len(snap),
		Min:   snap[0],
		Max:   snap[len(snap)-1],
		Mean:  sum / time.Duration(len(snap)),
		P99:   snap[idx],
	}
}

// ThroughputStats is a point-in-time summary of counters since the Monitor
// was created or last Reset.
type ThroughputStats struct {
	Operations     uint64
	MessagesPerSec float64
	BytesPerSec    float64
	ElapsedSeconds float64
}

// ThroughputStats reports message/byte rates averaged over the time since
// the Monitor was created or last Reset.
func (m *Monitor) ThroughputStats() ThroughputStats {
	elapsed := m.clock.Now().Sub(m.start).Seconds()
	messages := m.messages.LoadAcquire()
	bytes := m.bytes.LoadAcquire()

	var mps, bps float64
	if elapsed > 0 {
		mps = float64(messages) / elapsed
		bps = float64(bytes) / elapsed
	}

	return ThroughputStats{
		Operations:     m.operations.LoadAcquire(),
		MessagesPerSec: mps,
		BytesPerSec:    bps,
		ElapsedSeconds: elapsed,
	}
}

// Reset clears all latency samples and counters, restarting the throughput
// window. Used between benchmark phases.
func (m *Monitor) Reset() {
	m.mu.Lock()
	m.samples = m.samples[:0]
	m.mu.Unlock()

	m.operations.StoreRelease(0)
	m.messages.StoreRelease(0)
	m.bytes.StoreRelease(0)
	m.start = m.clock.Now()
}
