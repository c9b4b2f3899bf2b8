// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock_test

import (
	"testing"
	"time"

	"github.com/hftsim-go/core/clock"
)

func TestInstantOrdering(t *testing.T) {
	a := clock.Now()
	time.Sleep(time.Millisecond)
	b := clock.Now()

	if !a.Before(b) {
		t.Fatal("a should precede b")
	}
	if d := b.Sub(a); d <= 0 {
		t.Fatalf("b.Sub(a) = %v, want > 0", d)
	}
}

func TestInstantZero(t *testing.T) {
	var z clock.Instant
	if !z.IsZero() {
		t.Fatal("zero-value Instant should report IsZero")
	}
	if clock.Now().IsZero() {
		t.Fatal("Now() should not be zero")
	}
}

func TestCachedClockAdvances(t *testing.T) {
	c := clock.NewCached(time.Millisecond)
	defer c.Stop()

	first := c.Now()
	time.Sleep(20 * time.Millisecond)
	second := c.Now()

	if !second.After(first) {
		t.Fatalf("cached clock did not advance: first=%v second=%v", first, second)
	}
}
