// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock

import (
	"time"

	"code.hybscloud.com/atomix"
)

// PeriodicTimer fires a callback on a fixed cadence anchored to the instant
// Start was called, compensating for callback duration: the Nth fire
// targets anchor + N*interval, not "now + interval" measured after the
// previous callback returns. This prevents cadence drift when the callback
// occasionally runs long.
//
// Stop halts future fires but lets an in-progress callback run to
// completion — there is no preemption anywhere in this core (spec §5).
type PeriodicTimer struct {
	interval time.Duration
	callback func()

	running atomix.Bool
	stop    chan struct{}
	done    chan struct{}
}

// NewPeriodicTimer creates a timer that will invoke callback every interval
// once Start is called.
func NewPeriodicTimer(interval time.Duration, callback func()) *PeriodicTimer {
	return &PeriodicTimer{
		interval: interval,
		callback: callback,
	}
}

// Start begins firing the callback. Idempotent: calling Start while already
// running is a no-op, per spec §7 "double-start / double-stop".
func (t *PeriodicTimer) Start() {
	if !t.running.CompareAndSwapAcqRel(false, true) {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run()
}

func (t *PeriodicTimer) run() {
	defer close(t.done)

	anchor := time.Now()
	n := int64(1)
	nextFire := anchor.Add(t.interval)

	for {
		select {
		case <-t.stop:
			return
		case <-time.After(time.Until(nextFire)):
		}

		select {
		case <-t.stop:
			return
		default:
		}

		t.callback()

		n++
		nextFire = anchor.Add(time.Duration(n) * t.interval)
	}
}

// Stop halts further fires and waits for any in-progress callback to
// finish. Idempotent: calling Stop when not running is a no-op.
func (t *PeriodicTimer) Stop() {
	if !t.running.CompareAndSwapAcqRel(true, false) {
		return
	}
	close(t.stop)
	<-t.done
}
