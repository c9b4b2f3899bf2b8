// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package feed_test

import (
	"testing"
	"time"

	"github.com/hftsim-go/core/feed"
	"github.com/hftsim-go/core/marketdata"
	"github.com/hftsim-go/core/model"
)

func TestGetTickFiltersUnsubscribedSymbols(t *testing.T) {
	e := marketdata.New(1024, marketdata.WithInterval(time.Millisecond))
	_ = e.AddSymbol("AAPL", 100.00, 100.02, 1)
	_ = e.AddSymbol("MSFT", 200.00, 200.02, 2)
	e.Start()
	defer e.Stop()

	f := feed.New(e)
	f.Subscribe("AAPL")

	time.Sleep(50 * time.Millisecond)

	// GetTick pops at most one ring entry per call, so a discarded MSFT
	// tick reports false without meaning the ring is empty: poll a bounded
	// number of times rather than stopping at the first false.
	var tk model.Tick
	seenAAPL := false
	for i := 0; i < 2000; i++ {
		if !f.GetTick(&tk) {
			continue
		}
		if tk.Symbol != "AAPL" {
			t.Fatalf("GetTick returned unsubscribed symbol %q", tk.Symbol)
		}
		seenAAPL = true
	}
	if !seenAAPL {
		t.Fatal("expected at least one AAPL tick")
	}
}

func TestGetTickEmptyWithNoSubscriptions(t *testing.T) {
	e := marketdata.New(64, marketdata.WithInterval(time.Millisecond))
	_ = e.AddSymbol("AAPL", 100.00, 100.02, 1)
	e.Start()
	defer e.Stop()

	time.Sleep(20 * time.Millisecond)

	f := feed.New(e)
	var tk model.Tick
	if f.GetTick(&tk) {
		t.Fatal("expected GetTick to find nothing matching with no subscriptions")
	}
}

func TestSubscribeAll(t *testing.T) {
	e := marketdata.New(1024, marketdata.WithInterval(time.Millisecond))
	_ = e.AddSymbol("AAPL", 100.00, 100.02, 1)
	_ = e.AddSymbol("MSFT", 200.00, 200.02, 2)
	e.Start()
	defer e.Stop()

	f := feed.New(e)
	f.SubscribeAll()

	time.Sleep(50 * time.Millisecond)

	symbols := map[string]bool{}
	var tk model.Tick
	for i := 0; i < 2000; i++ {
		if f.GetTick(&tk) {
			symbols[tk.Symbol] = true
		}
	}
	if !symbols["AAPL"] || !symbols["MSFT"] {
		t.Fatalf("expected ticks from both symbols, got %v", symbols)
	}
}
