// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool provides a fixed-capacity, lock-free object pool backed by a
// flat slice of preallocated objects and a per-slot occupancy flag. Unlike a
// channel-backed pool, capacity never grows past what was preallocated at
// construction: Acquire on a full pool reports failure rather than calling
// into the allocator, which is the property the worker pool and the
// market-data engine need to keep their hot paths allocation-free.
package pool

import (
	"errors"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// ErrExhausted is returned by Acquire when every slot is occupied.
var ErrExhausted = errors.New("pool: exhausted")

type slot[T any] struct {
	occupied atomix.Bool
	value    T
}

// Pool is a fixed-capacity object pool of *T. Acquire and Release are safe
// for concurrent use by any number of goroutines.
type Pool[T any] struct {
	slots []slot[T]
	hint  atomix.Uint64 // rotating scan start, spreads contention across slots
	reset func(*T)

	allocated atomix.Uint64 // count of currently-held slots
}

// Stats is a point-in-time snapshot of pool occupancy.
type Stats struct {
	Capacity  int
	Allocated int
}

// New creates a pool of the given fixed capacity. factory is called once
// per slot at construction to populate it; reset, if non-nil, is called on
// an object when it is released back to the pool.
func New[T any](capacity int, factory func() T, reset func(*T)) *Pool[T] {
	if capacity < 1 {
		panic("pool: capacity must be >= 1")
	}
	p := &Pool[T]{
		slots: make([]slot[T], capacity),
		reset: reset,
	}
	for i := range p.slots {
		if factory != nil {
			p.slots[i].value = factory()
		}
	}
	return p
}

// Acquire claims a free slot and returns a pointer to its value along with
// the slot index needed to Release it later. Returns ErrExhausted if every
// slot is currently held.
//
// The scan starts at a rotating hint index rather than always slot 0, so
// concurrent acquirers spread their CAS attempts across the slot array
// instead of converging on the same cache line.
func (p *Pool[T]) Acquire() (*T, int, error) {
	n := uint64(len(p.slots))
	start := p.hint.AddAcqRel(1) % n

	for i := uint64(0); i < n; i++ {
		idx := (start + i) % n
		s := &p.slots[idx]
		if s.occupied.CompareAndSwapAcqRel(false, true) {
			p.allocated.AddAcqRel(1)
			return &s.value, int(idx), nil
		}
	}
	return nil, -1, ErrExhausted
}

// Release returns the slot at idx (as returned by Acquire) to the pool.
// Calling Release on an already-free slot is a no-op.
func (p *Pool[T]) Release(idx int) {
	s := &p.slots[idx]
	if !s.occupied.CompareAndSwapAcqRel(true, false) {
		return
	}
	if p.reset != nil {
		p.reset(&s.value)
	}
	p.allocated.AddAcqRel(^uint64(0)) // -1
}

// AllocatedCount returns the number of slots currently held.
func (p *Pool[T]) AllocatedCount() int {
	return int(p.allocated.LoadAcquire())
}

// Cap returns the pool's fixed capacity.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Stats returns a point-in-time occupancy snapshot.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Capacity:  len(p.slots),
		Allocated: p.AllocatedCount(),
	}
}

// AcquireWait is like Acquire but spins until a slot frees up or the given
// number of spin rounds elapses, whichever comes first. Used by callers
// that would rather wait briefly than fall back to a fresh allocation.
func (p *Pool[T]) AcquireWait(rounds int) (*T, int, error) {
	sw := spin.Wait{}
	for r := 0; r < rounds; r++ {
		if v, idx, err := p.Acquire(); err == nil {
			return v, idx, nil
		}
		sw.Once()
	}
	return p.Acquire()
}
