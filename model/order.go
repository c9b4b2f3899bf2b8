// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

import "fmt"

// Side is the side of an order or trade.
type Side int

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// OrderType is the execution semantics requested for an order.
type OrderType int

const (
	OrderTypeLimit OrderType = iota
	OrderTypeMarket
	OrderTypeStop
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// OrderStatus is the current lifecycle state of an Order.
//
// Legal transitions: Pending -> Filled, Pending -> PartiallyFilled,
// Pending -> Cancelled, Pending -> Rejected, PartiallyFilled -> Filled,
// PartiallyFilled -> Cancelled. There is no transition out of a terminal
// state (Filled, Cancelled, Rejected).
type OrderStatus int

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusPartiallyFilled
	OrderStatusFilled
	OrderStatusCancelled
	OrderStatusRejected
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "PENDING"
	case OrderStatusPartiallyFilled:
		return "PARTIALLY_FILLED"
	case OrderStatusFilled:
		return "FILLED"
	case OrderStatusCancelled:
		return "CANCELLED"
	case OrderStatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether s is a state an order cannot leave.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusFilled || s == OrderStatusCancelled || s == OrderStatusRejected
}

// Order represents one order submitted into the simulated core, whether
// synthesized internally or received over a FIX session.
type Order struct {
	ID            uint64
	ClientOrderID string
	Symbol        string
	Side          Side
	Type          OrderType
	Price         float64
	Quantity      int64
	FilledQty     int64
	Status        OrderStatus
	Timestamp     int64
}

// RemainingQty returns the unfilled quantity. Invariant: 0 <= FilledQty <=
// Quantity always holds, so this is never negative.
func (o *Order) RemainingQty() int64 {
	return o.Quantity - o.FilledQty
}

// Fill applies an execution of qty shares at price, advancing Status to
// Filled or PartiallyFilled as appropriate. Fill panics if qty would push
// FilledQty past Quantity: a caller that clamps to RemainingQty before
// calling Fill never hits this. Fill is otherwise a no-op on an order in a
// terminal state.
func (o *Order) Fill(qty int64) {
	if o.FilledQty+qty > o.Quantity {
		panic("model: fill quantity exceeds remaining order quantity")
	}
	if o.Status.Terminal() {
		return
	}
	o.FilledQty += qty
	if o.FilledQty == o.Quantity {
		o.Status = OrderStatusFilled
	} else {
		o.Status = OrderStatusPartiallyFilled
	}
}

// Cancel transitions a non-terminal order to Cancelled. No-op if already
// terminal.
func (o *Order) Cancel() {
	if o.Status.Terminal() {
		return
	}
	o.Status = OrderStatusCancelled
}

// Reject transitions a pending order to Rejected. No-op for any other
// status.
func (o *Order) Reject() {
	if o.Status != OrderStatusPending {
		return
	}
	o.Status = OrderStatusRejected
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{ID:%d %s %s %s %d@%.2f filled:%d status:%s}",
		o.ID, o.Side, o.Symbol, o.Type, o.Quantity, o.Price, o.FilledQty, o.Status)
}
