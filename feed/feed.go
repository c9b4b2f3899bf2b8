// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package feed wraps a market-data engine with a subscription set, giving a
// single downstream consumer a filtered view of the ticks the engine
// generates: GetTick pops from the engine's ring and discards anything the
// caller hasn't subscribed to.
package feed

import (
	"sync"

	"github.com/hftsim-go/core/marketdata"
	"github.com/hftsim-go/core/model"
)

// Feed filters one engine's tick stream down to a subscribed symbol set.
type Feed struct {
	engine *marketdata.Engine

	mu   sync.RWMutex
	subs map[string]struct{}
	all  bool
}

// New wraps engine. With no subscriptions, GetTick discards every tick
// until Subscribe or SubscribeAll is called.
func New(engine *marketdata.Engine) *Feed {
	return &Feed{
		engine: engine,
		subs:   make(map[string]struct{}),
	}
}

// Subscribe adds symbol to the set GetTick will pass through.
func (f *Feed) Subscribe(symbol string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[symbol] = struct{}{}
}

// Unsubscribe removes symbol from the subscribed set.
func (f *Feed) Unsubscribe(symbol string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs, symbol)
}

// SubscribeAll passes every symbol's ticks through regardless of the
// per-symbol subscription set.
func (f *Feed) SubscribeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all = true
}

// UnsubscribeAll reverts SubscribeAll, returning to per-symbol filtering.
func (f *Feed) UnsubscribeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all = false
}

func (f *Feed) subscribed(symbol string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.all {
		return true
	}
	_, ok := f.subs[symbol]
	return ok
}

// GetTick pops at most one tick off the underlying engine's ring. If the
// ring is empty, or the popped tick's symbol isn't subscribed, it is
// discarded and GetTick reports false without popping again — filtering
// happens after the pop, keeping the producer's hot path free of
// per-symbol dispatch, at the cost of a filtered-out tick costing the
// caller one empty poll.
func (f *Feed) GetTick(out *model.Tick) bool {
	tk, err := f.engine.Ticks().Pop()
	if err != nil {
		return false
	}
	if !f.subscribed(tk.Symbol) {
		return false
	}
	*out = tk
	return true
}
