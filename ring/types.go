// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Queue is the combined producer/consumer interface shared by SPSC and MPSC.
//
// Length is intentionally not part of the interface: an exact count in a
// lock-free ring requires cross-core synchronization neither side can
// afford on the hot path. Size() on SPSC gives a best-effort snapshot;
// callers needing exact accounting should track it themselves.
type Queue[T any] interface {
	Push(item *T) error
	Pop() (T, error)
	Cap() int
}

// Drainer signals that no more Push calls will occur.
//
// MPSC implements Drainer: Drain records that the caller has ensured no
// further Push will be attempted. MPSC's Pop does not consult it, so a
// consumer drains the ring at shutdown by calling Pop until it reports
// ErrWouldBlock.
//
// SPSC does not implement Drainer.
type Drainer interface {
	Drain()
}
