// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

import "fmt"

// Trade is a single executed print, either synthesized by the market-data
// engine or reported as an execution against a submitted Order.
type Trade struct {
	Symbol    string
	Price     float64
	Quantity  int64
	Timestamp int64
	Buyer     string
	Seller    string
}

func (t Trade) String() string {
	return fmt.Sprintf("Trade{%s %d@%.2f buyer=%s seller=%s}",
		t.Symbol, t.Quantity, t.Price, t.Buyer, t.Seller)
}
