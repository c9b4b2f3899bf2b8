// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPSC is an FAA-based (fetch-and-add) multi-producer single-consumer
// bounded ring buffer, used by the worker pool's task queue.
//
// Producers claim a slot by fetch-add on tail, independent of any other
// producer, then spin-wait on that slot's occupancy cycle before writing —
// this is the "reserve, then publish" split spec §4.A describes for MPSC.
// Because a slot can be claimed by a producer that hasn't published yet,
// MPSC needs 2n physical slots for n usable capacity.
//
// The single consumer observes commit order, not reservation order: a
// producer that reserved first but is slow to publish does not block a
// later producer's slot from becoming visible, but it does block the
// consumer once the consumer's read cursor reaches that still-unpublished
// slot (spec §5 "MPSC fairness").
type MPSC[T any] struct {
	_        pad
	head     atomix.Uint64 // consumer index; producers also read it to check capacity
	_        pad
	tail     atomix.Uint64 // producer index, advanced via fetch-add
	_        pad
	draining atomix.Bool // set by Drain(); Pop does not read it
	_        pad
	buffer   []mpscSlot[T]
	capacity uint64 // n, usable capacity
	size     uint64 // 2n, physical slots
	mask     uint64 // 2n - 1
}

type mpscSlot[T any] struct {
	cycle atomix.Uint64
	data  T
	_     padShort
}

// NewMPSC creates an MPSC ring of the given usable capacity, rounded up to
// the next power of 2. Panics if capacity < 2.
func NewMPSC[T any](capacity int) *MPSC[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	size := n * 2

	q := &MPSC[T]{
		buffer:   make([]mpscSlot[T], size),
		capacity: n,
		size:     size,
		mask:     size - 1,
	}
	for i := uint64(0); i < size; i++ {
		q.buffer[i].cycle.StoreRelaxed(i / n)
	}
	return q
}

// Drain records that no more Push calls will occur. Pop does not consult
// it and behaves the same before and after Drain: a shutting-down consumer
// drains whatever producers already published by calling Pop until it
// reports ErrWouldBlock. The caller must guarantee no further Push is
// attempted once called.
func (q *MPSC[T]) Drain() {
	q.draining.StoreRelease(true)
}

// Push adds an item to the ring. Safe for concurrent use by multiple
// producer goroutines. Returns ErrWouldBlock if the ring is full.
func (q *MPSC[T]) Push(item *T) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		head := q.head.LoadRelaxed()
		if tail >= head+q.capacity {
			return ErrWouldBlock
		}

		myTail := q.tail.AddAcqRel(1) - 1

		slot := &q.buffer[myTail&q.mask]
		expectedCycle := myTail / q.capacity

		slotCycle := slot.cycle.LoadAcquire()
		if slotCycle == expectedCycle {
			slot.data = *item
			slot.cycle.StoreRelease(expectedCycle + 1)
			return nil
		}
		if int64(slotCycle) < int64(expectedCycle) {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Pop removes and returns an item. Consumer goroutine only.
// Returns ErrWouldBlock if the ring is empty.
func (q *MPSC[T]) Pop() (T, error) {
	head := q.head.LoadRelaxed()
	cycle := head / q.capacity
	slot := &q.buffer[head&q.mask]

	slotCycle := slot.cycle.LoadAcquire()
	if slotCycle != cycle+1 {
		var zero T
		return zero, ErrWouldBlock
	}

	item := slot.data
	var zero T
	slot.data = zero
	nextEnqCycle := (head + q.size) / q.capacity
	slot.cycle.StoreRelease(nextEnqCycle)
	q.head.StoreRelaxed(head + 1)

	return item, nil
}

// Cap returns the ring's usable capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.capacity)
}
