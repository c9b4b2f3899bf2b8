// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package model defines the core market-data and order types shared by the
// market-data engine, the feed facade, and the FIX codec.
//
// Design decisions:
//
// 1. Prices are float64, not fixed-point cents. The FIX wire format (see
//    package fix) is decimal-text, so there is no fixed-point representation
//    to round-trip against; carrying int64 cents here would only add a
//    conversion at every codec boundary for no precision benefit.
//
// 2. Timestamps are nanoseconds since the Unix epoch (int64), stamped from
//    package clock's monotonic Instant via UnixNano, never from wall time.
package model

import "fmt"

// Tick is a single market-data snapshot for one symbol: best bid, best ask,
// and the most recent trade print.
type Tick struct {
	Symbol    string
	Bid       float64
	Ask       float64
	BidSize   int64
	AskSize   int64
	LastPrice float64
	LastSize  int64
	Timestamp int64
}

// Valid reports whether t satisfies the invariants every tick produced or
// consumed in this core must hold: a bid of at least one cent, a
// one-cent-minimum spread, and positive sizes.
func (t Tick) Valid() bool {
	if t.Bid < 0.01 || t.Ask < t.Bid+0.01 {
		return false
	}
	if t.BidSize <= 0 || t.AskSize <= 0 {
		return false
	}
	return true
}

// Spread returns Ask - Bid.
func (t Tick) Spread() float64 {
	return t.Ask - t.Bid
}

// Mid returns the midpoint of the bid/ask spread.
func (t Tick) Mid() float64 {
	return (t.Bid + t.Ask) / 2
}

func (t Tick) String() string {
	return fmt.Sprintf("Tick{%s bid=%.2fx%d ask=%.2fx%d last=%.2fx%d}",
		t.Symbol, t.Bid, t.BidSize, t.Ask, t.AskSize, t.LastPrice, t.LastSize)
}
