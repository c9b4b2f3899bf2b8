// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package perfmon_test

import (
	"testing"
	"time"

	"github.com/hftsim-go/core/perfmon"
)

func TestLatencyStatsEmpty(t *testing.T) {
	m := perfmon.New()
	defer m.Close()
	stats := m.LatencyStats()
	if stats.Count != 0 {
		t.Fatalf("Count = %d, want 0", stats.Count)
	}
}

func TestLatencyStatsBasic(t *testing.T) {
	m := perfmon.New()
	defer m.Close()
	for i := 1; i <= 100; i++ {
		m.RecordLatency(time.Duration(i) * time.Microsecond)
	}

	stats := m.LatencyStats()
	if stats.Count != 100 {
		t.Fatalf("Count = %d, want 100", stats.Count)
	}
	if stats.Min != time.Microsecond {
		t.Fatalf("Min = %v, want 1us", stats.Min)
	}
	if stats.Max != 100*time.Microsecond {
		t.Fatalf("Max = %v, want 100us", stats.Max)
	}
	if stats.P99 < 95*time.Microsecond || stats.P99 > 100*time.Microsecond {
		t.Fatalf("P99 = %v, want near 99us", stats.P99)
	}
}

func TestReservoirDropsOldestHalfOnOverflow(t *testing.T) {
	m := perfmon.NewWithCapacity(10)
	defer m.Close()
	for i := 0; i < 25; i++ {
		m.RecordLatency(time.Duration(i) * time.Microsecond)
	}
	stats := m.LatencyStats()
	if stats.Count > 10 {
		t.Fatalf("Count = %d, want <= 10 after overflow", stats.Count)
	}
	// the dropped-oldest-half policy means the minimum retained sample
	// should be more recent than the earliest ever recorded.
	if stats.Min == 0 {
		t.Fatal("oldest sample (0us) should have been evicted")
	}
}

func TestThroughputStats(t *testing.T) {
	m := perfmon.New()
	defer m.Close()
	for i := 0; i < 50; i++ {
		m.RecordOperation(128)
	}
	time.Sleep(5 * time.Millisecond)

	stats := m.ThroughputStats()
	if stats.Operations != 50 {
		t.Fatalf("Operations = %d, want 50", stats.Operations)
	}
	if stats.MessagesPerSec <= 0 {
		t.Fatal("MessagesPerSec should be positive")
	}
	if stats.BytesPerSec <= 0 {
		t.Fatal("BytesPerSec should be positive")
	}
}

func TestReset(t *testing.T) {
	m := perfmon.New()
	defer m.Close()
	m.RecordLatency(time.Millisecond)
	m.RecordOperation(64)
	m.Reset()

	if got := m.LatencyStats().Count; got != 0 {
		t.Fatalf("Count after Reset = %d, want 0", got)
	}
	if got := m.ThroughputStats().Operations; got != 0 {
		t.Fatalf("Operations after Reset = %d, want 0", got)
	}
}
