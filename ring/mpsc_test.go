// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hftsim-go/core/ring"
)

func TestMPSCBasic(t *testing.T) {
	q := ring.NewMPSC[int](4)

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}

	for i := range 4 {
		v := i
		if err := q.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	v := 99
	if err := q.Push(&v); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Push on full: got %v, want ErrWouldBlock", err)
	}

	for i := range 4 {
		got, err := q.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if got != i {
			t.Fatalf("Pop(%d): got %d, want %d", i, got, i)
		}
	}

	if _, err := q.Pop(); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestMPSCCompleteness matches spec invariant 3: K producers each push N
// items, the single consumer observes exactly K*N items with no loss and no
// duplication (order across producers is unspecified, but completeness is
// not).
func TestMPSCCompleteness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress test in short mode")
	}

	const producers = 8
	const perProducer = 20_000
	const total = producers * perProducer

	q := ring.NewMPSC[int](1024)

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := id*perProducer + i
				for q.Push(&v) != nil {
					// busy-yield on full.
				}
			}
		}(p)
	}

	seen := make([]int32, total)
	var consumed int32
	done := make(chan struct{})
	go func() {
		for atomic.LoadInt32(&consumed) < total {
			v, err := q.Pop()
			if err != nil {
				continue
			}
			atomic.AddInt32(&seen[v], 1)
			atomic.AddInt32(&consumed, 1)
		}
		close(done)
	}()

	wg.Wait()
	<-done

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("item %d observed %d times, want exactly 1", i, c)
		}
	}
}

func TestMPSCDrain(t *testing.T) {
	q := ring.NewMPSC[int](4)
	v := 1
	_ = q.Push(&v)
	var d ring.Drainer = q
	d.Drain()

	got, err := q.Pop()
	if err != nil || got != 1 {
		t.Fatalf("Pop after Drain: got (%d, %v), want (1, nil)", got, err)
	}
}
