// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package clock

import "golang.org/x/sys/unix"

// PinCurrentThread attempts to pin the calling OS thread to the given CPU
// core. The caller must have already called runtime.LockOSThread. This is a
// best-effort hint for reducing scheduling jitter on a latency-sensitive
// thread; no package in this core calls it. Failure is reported but never
// fatal (spec §4.B "affinity hints never block startup").
func PinCurrentThread(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}

// SetCurrentThreadPriority attempts to raise the calling OS thread's
// scheduling priority. Requires privileges the process may not have; a
// failure is returned but otherwise ignored by callers.
func SetCurrentThreadPriority(niceDelta int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, niceDelta)
}
