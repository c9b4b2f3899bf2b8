// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides bounded lock-free FIFO ring buffers for the
// single-producer/single-consumer and multi-producer/single-consumer
// hand-off patterns used by the market-data engine, the feed facade, and
// the worker pool.
package ring

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed immediately: the ring
// is full (Push) or empty (Pop). It is a control-flow signal, not a failure
// — callers retry with backoff rather than propagating it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// the rest of the lock-free stack this package is modeled on.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
