// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package marketdata synthesizes a market-data feed: one goroutine mutates
// a per-symbol bid/ask/last-trade state on a fixed cadence and pushes the
// resulting Tick into a bounded SPSC ring for a single downstream consumer.
package marketdata

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"code.hybscloud.com/atomix"

	"github.com/hftsim-go/core/clock"
	"github.com/hftsim-go/core/model"
	"github.com/hftsim-go/core/ring"
)

// ErrRunning is returned by AddSymbol once the engine has been started: the
// symbol table is fixed for the lifetime of a run rather than mutated
// concurrently with the tick-generation goroutine.
var ErrRunning = errors.New("marketdata: cannot add symbol after Start")

// symbolState is the mutable simulation state for one symbol. Only the tick
// goroutine touches the price/size fields; CurrentSnapshot reads them
// through the Tick copy published via the snapshot atomic.Pointer, the same
// value pushed into the ring.
type symbolState struct {
	symbol string
	rng    *rand.Rand

	bid, ask           float64
	bidSize, askSize   int64
	lastPrice          float64
	lastSize           int64

	snapshot atomic.Pointer[model.Tick]
}

// Engine owns the symbol table and the periodic tick-generation loop.
type Engine struct {
	mu      sync.Mutex
	states  []*symbolState
	running atomix.Bool

	out     *ring.SPSC[model.Tick]
	timer   *clock.PeriodicTimer
	dropped atomix.Uint64

	interval time.Duration
	logger   *log.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithInterval overrides the default 1ms tick cadence.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

// WithLogger overrides the default error sink (log.Default()) used to
// report ticks dropped because the output ring was full.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an Engine whose ticks are published into a ring of the given
// capacity.
func New(ringCapacity int, opts ...Option) *Engine {
	e := &Engine{
		out:      ring.NewSPSC[model.Tick](ringCapacity),
		interval: time.Millisecond,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.timer = clock.NewPeriodicTimer(e.interval, e.tick)
	return e
}

// AddSymbol registers a symbol with an initial bid/ask/last state. Must be
// called before Start; returns ErrRunning otherwise.
func (e *Engine) AddSymbol(symbol string, bid, ask float64, seed int64) error {
	if e.running.LoadAcquire() {
		return ErrRunning
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	rng := rand.New(rand.NewSource(seed))
	s := &symbolState{
		symbol:    symbol,
		rng:       rng,
		bid:       bid,
		ask:       ask,
		bidSize:   drawSize(rng),
		askSize:   drawSize(rng),
		lastPrice: (bid + ask) / 2,
		lastSize:  drawSize(rng),
	}
	s.snapshot.Store(s.toTick())
	e.states = append(e.states, s)
	return nil
}

// Start begins the tick-generation loop. Idempotent: a second Start on an
// already-running engine is a no-op.
func (e *Engine) Start() {
	if !e.running.CompareAndSwapAcqRel(false, true) {
		return
	}
	e.timer.Start()
}

// Stop halts the tick-generation loop and lets any in-flight tick finish.
// Idempotent.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwapAcqRel(true, false) {
		return
	}
	e.timer.Stop()
}

// Ticks returns the consumer-side ring the engine publishes into. There is
// exactly one consumer per engine, matching SPSC's contract.
func (e *Engine) Ticks() *ring.SPSC[model.Tick] {
	return e.out
}

// DroppedCount returns how many generated ticks were discarded because the
// output ring was full.
func (e *Engine) DroppedCount() uint64 {
	return e.dropped.LoadAcquire()
}

// CurrentSnapshot returns the most recently generated Tick for symbol, or
// the zero Tick and false if the symbol is unknown.
func (e *Engine) CurrentSnapshot(symbol string) (model.Tick, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.states {
		if s.symbol == symbol {
			return *s.snapshot.Load(), true
		}
	}
	return model.Tick{}, false
}

// tick mutates every symbol's state by one simulation step and publishes
// the resulting ticks. Runs on the PeriodicTimer's single goroutine, so no
// locking is needed against itself; AddSymbol is excluded once running.
func (e *Engine) tick() {
	e.mu.Lock()
	states := e.states
	e.mu.Unlock()

	for _, s := range states {
		s.step()
		snap := s.toTick()
		s.snapshot.Store(snap)

		if err := e.out.Push(snap); err != nil {
			e.dropped.AddAcqRel(1)
			e.logger.Printf("marketdata: dropped tick for %s: %v", s.symbol, err)
		}
	}
}

// step advances one symbol by a single simulation tick: a uniform price
// delta drives the mid, a fixed-fraction spread is reconstructed around it,
// quote sizes refresh with probability 1/10, and a trade print publishes
// with probability 1/5.
func (s *symbolState) step() {
	delta := (s.rng.Float64()*2 - 1) * 0.001
	_ = 0.8 + s.rng.Float64()*0.4 // volatility multiplier: drawn, currently informational

	mid := ((s.bid + s.ask) / 2) * (1 + delta)
	spread := mid * 0.001
	s.bid = math.Max(0.01, mid-spread/2)
	s.ask = math.Max(s.bid+0.01, mid+spread/2)

	if s.rng.Float64() < 0.1 {
		s.bidSize = drawSize(s.rng)
		s.askSize = drawSize(s.rng)
	}

	if s.rng.Float64() < 0.2 {
		if s.rng.Float64() < 0.5 {
			s.lastPrice = s.bid
		} else {
			s.lastPrice = s.ask
		}
		s.lastSize = drawSize(s.rng) / 10
	}
}

// drawSize returns an integer in [100, 10000], the size distribution used
// for both quote sizes and trade prints.
func drawSize(rng *rand.Rand) int64 {
	return int64(100 + rng.Intn(9901))
}

func (s *symbolState) toTick() *model.Tick {
	return &model.Tick{
		Symbol:    s.symbol,
		Bid:       s.bid,
		Ask:       s.ask,
		BidSize:   s.bidSize,
		AskSize:   s.askSize,
		LastPrice: s.lastPrice,
		LastSize:  s.lastSize,
		Timestamp: clock.Now().UnixNano(),
	}
}
