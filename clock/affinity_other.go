// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package clock

import "errors"

var errAffinityUnsupported = errors.New("clock: thread affinity/priority hints are not supported on this platform")

// PinCurrentThread is a no-op stub on platforms without a scheduling
// affinity API. It always fails, leaving the caller's thread unpinned
// rather than blocking startup (spec §4.B).
func PinCurrentThread(cpu int) error {
	return errAffinityUnsupported
}

// SetCurrentThreadPriority is a no-op stub on platforms without a thread
// priority API.
func SetCurrentThreadPriority(niceDelta int) error {
	return errAffinityUnsupported
}
