// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

import (
	"strconv"

	"github.com/hftsim-go/core/model"
)

// TickToMarketDataSnapshot renders a Tick as a MarketDataSnapshotFullRefresh
// (W) frame carrying three MD entries: bid, offer, and the last trade.
func TickToMarketDataSnapshot(t model.Tick) *Frame {
	f := NewFrame(MsgTypeMarketDataSnapshot)
	f.Set(TagSymbol, t.Symbol)

	f.Set(TagMdEntryType, MdEntryTypeBid)
	f.SetFloat(TagMdEntryPx, t.Bid)
	f.SetInt(TagMdEntrySize, t.BidSize)

	f.Set(TagMdEntryType, MdEntryTypeOffer)
	f.SetFloat(TagMdEntryPx, t.Ask)
	f.SetInt(TagMdEntrySize, t.AskSize)

	f.Set(TagMdEntryType, MdEntryTypeTrade)
	f.SetFloat(TagMdEntryPx, t.LastPrice)
	f.SetInt(TagMdEntrySize, t.LastSize)

	f.SetInt(TagMdEntryTime, t.Timestamp)
	return f
}

// TradeToExecutionReport renders a Trade as an ExecutionReport (8) frame
// reporting a fill at the given execution id.
func TradeToExecutionReport(tr model.Trade, execID, orderID string) *Frame {
	f := NewFrame(MsgTypeExecutionReport)
	f.Set(TagSymbol, tr.Symbol)
	f.Set(TagExecID, execID)
	f.Set(TagOrderID, orderID)
	f.Set(TagExecType, ExecTypeFill)
	f.SetFloat(TagLastPx, tr.Price)
	f.SetInt(TagLastQty, tr.Quantity)
	f.SetInt(TagTransactTime, tr.Timestamp)
	return f
}

// ExecTypeFill is the ExecType (tag 150) value for a trade print.
const ExecTypeFill = "1"

// OrderToNewOrderSingle renders an Order as a NewOrderSingle (D) frame.
func OrderToNewOrderSingle(o model.Order) *Frame {
	f := NewFrame(MsgTypeNewOrderSingle)
	f.Set(TagClOrdID, o.ClientOrderID)
	f.Set(TagSymbol, o.Symbol)
	f.Set(TagSide, sideToFIX(o.Side))
	f.Set(TagOrdType, ordTypeToFIX(o.Type))
	f.SetFloat(TagPrice, o.Price)
	f.SetInt(TagOrderQty, o.Quantity)
	f.SetInt(TagTransactTime, o.Timestamp)
	return f
}

// NewOrderSingleToOrder parses a NewOrderSingle (D) frame into an Order.
// The returned Order's ID and Status are left at their zero values: those
// are assigned by the receiving session, not carried on the wire.
func NewOrderSingleToOrder(f *Frame) (model.Order, bool) {
	if f.MsgType() != MsgTypeNewOrderSingle {
		return model.Order{}, false
	}
	clOrdID, ok := f.Get(TagClOrdID)
	if !ok {
		return model.Order{}, false
	}
	symbol, ok := f.Get(TagSymbol)
	if !ok {
		return model.Order{}, false
	}
	sideStr, ok := f.Get(TagSide)
	if !ok {
		return model.Order{}, false
	}
	typeStr, ok := f.Get(TagOrdType)
	if !ok {
		return model.Order{}, false
	}
	price, _ := f.GetFloat(TagPrice)
	qty, ok := f.GetInt(TagOrderQty)
	if !ok {
		return model.Order{}, false
	}
	transactTime, _ := f.GetInt(TagTransactTime)

	return model.Order{
		ClientOrderID: clOrdID,
		Symbol:        symbol,
		Side:          sideFromFIX(sideStr),
		Type:          ordTypeFromFIX(typeStr),
		Price:         price,
		Quantity:      qty,
		Timestamp:     transactTime,
		Status:        model.OrderStatusPending,
	}, true
}

func sideToFIX(s model.Side) string {
	if s == model.SideSell {
		return SideSell
	}
	return SideBuy
}

func sideFromFIX(s string) model.Side {
	if s == SideSell {
		return model.SideSell
	}
	return model.SideBuy
}

func ordTypeToFIX(t model.OrderType) string {
	switch t {
	case model.OrderTypeMarket:
		return OrdTypeMarket
	case model.OrderTypeStop:
		return OrdTypeStop
	default:
		return OrdTypeLimit
	}
}

func ordTypeFromFIX(t string) model.OrderType {
	switch t {
	case OrdTypeMarket:
		return model.OrderTypeMarket
	case OrdTypeStop:
		return model.OrderTypeStop
	default:
		return model.OrderTypeLimit
	}
}

// orderStatusToFIX maps an OrderStatus to its FIX OrdStatus (tag 39) code.
func orderStatusToFIX(s model.OrderStatus) string {
	switch s {
	case model.OrderStatusPartiallyFilled:
		return OrdStatusPartiallyFilled
	case model.OrderStatusFilled:
		return OrdStatusFilled
	case model.OrderStatusCancelled:
		return OrdStatusCanceled
	case model.OrderStatusRejected:
		return OrdStatusRejected
	default:
		return OrdStatusNew
	}
}

// OrderToExecutionReport renders an Order's current state as an
// ExecutionReport (8) frame, used to acknowledge or report status changes
// that aren't tied to a specific Trade print.
func OrderToExecutionReport(o model.Order, execID string) *Frame {
	f := NewFrame(MsgTypeExecutionReport)
	f.Set(TagOrderID, strconv.FormatUint(o.ID, 10))
	f.Set(TagClOrdID, o.ClientOrderID)
	f.Set(TagExecID, execID)
	f.Set(TagSymbol, o.Symbol)
	f.Set(TagOrdStatus, orderStatusToFIX(o.Status))
	f.SetFloat(TagPrice, o.Price)
	f.SetInt(TagOrderQty, o.Quantity)
	f.SetInt(TagCumQty, o.FilledQty)
	f.SetInt(TagLeavesQty, o.RemainingQty())
	return f
}
