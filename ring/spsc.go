// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/atomix"

// SPSC is a single-producer single-consumer bounded ring buffer.
//
// Based on Lamport's ring buffer with cached-index optimization: the
// producer caches the consumer's head index and vice versa, so the common
// case never touches the other side's atomic at all, reducing cross-core
// cache-line traffic. Producer and consumer indices live on separate cache
// lines (the pad fields) so advancing one never invalidates the other.
//
// Push is for the producer goroutine only; Pop is for the consumer goroutine
// only. Violating single-producer/single-consumer discipline corrupts state.
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // consumer reads from here
	_          pad
	cachedTail uint64 // consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // producer writes here
	_          pad
	cachedHead uint64 // producer's cached view of head
	_          pad
	buffer     []T
	mask       uint64
}

// NewSPSC creates an SPSC ring of the given capacity, rounded up to the next
// power of 2. Panics if capacity < 2.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	return &SPSC[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Push adds an item to the ring (producer only).
//
// On success item's payload is written to the slot before tail is
// release-stored, so the consumer's matching acquire-load of tail is
// guaranteed to observe the payload.
//
// Returns ErrWouldBlock if the ring is full.
func (q *SPSC[T]) Push(item *T) error {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead > q.mask {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead > q.mask {
			return ErrWouldBlock
		}
	}

	q.buffer[tail&q.mask] = *item
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Pop removes and returns an item (consumer only).
//
// Returns ErrWouldBlock if the ring is empty.
func (q *SPSC[T]) Pop() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	item := q.buffer[head&q.mask]
	var zero T
	q.buffer[head&q.mask] = zero
	q.head.StoreRelease(head + 1)
	return item, nil
}

// Cap returns the ring's capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.mask + 1)
}

// Size returns an approximate, possibly stale but never negative, count of
// items currently in the ring. Taken under acquire loads of both indices,
// per spec: useful for diagnostics, never for control flow.
func (q *SPSC[T]) Size() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	if tail < head {
		return 0
	}
	return int(tail - head)
}
