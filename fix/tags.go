// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fix implements a minimal FIX 4.4 tag=value codec: frame
// serialization and parsing, body-length and checksum computation, and
// conversions between the core's domain types and the message types the
// simulator's FIX session speaks.
//
// This is a hand-rolled codec, not a session-managing FIX engine: it does
// not depend on quickfixgo/quickfix. Tag naming follows the conventions of
// that library's constants package, but the implementation underneath is
// our own wire-format reader/writer.
package fix

// Tag is a FIX field tag number.
type Tag int

// Standard header and body tags used by this core.
const (
	TagBeginString  Tag = 8
	TagBodyLength   Tag = 9
	TagMsgType      Tag = 35
	TagSenderCompID Tag = 49
	TagTargetCompID Tag = 56
	TagMsgSeqNum    Tag = 34
	TagSendingTime  Tag = 52
	TagCheckSum     Tag = 10

	TagSymbol      Tag = 55
	TagMdEntryType Tag = 269
	TagMdEntryPx   Tag = 270
	TagMdEntrySize Tag = 271
	TagMdEntryTime Tag = 273

	TagClOrdID      Tag = 11
	TagOrderID      Tag = 37
	TagExecID       Tag = 17
	TagExecType     Tag = 150
	TagOrdStatus    Tag = 39
	TagSide         Tag = 54
	TagOrdType      Tag = 40
	TagPrice        Tag = 44
	TagOrderQty     Tag = 38
	TagLastPx       Tag = 31
	TagLastQty      Tag = 32
	TagCumQty       Tag = 14
	TagLeavesQty    Tag = 151
	TagTransactTime Tag = 60

	TagHeartBtInt Tag = 108
	TagTestReqID  Tag = 112
	TagText       Tag = 58
)

// Message types this core produces or consumes.
const (
	MsgTypeLogon               = "A"
	MsgTypeLogout              = "5"
	MsgTypeHeartbeat           = "0"
	MsgTypeTestRequest         = "1"
	MsgTypeReject              = "3"
	MsgTypeMarketDataSnapshot  = "W"
	MsgTypeNewOrderSingle      = "D"
	MsgTypeExecutionReport     = "8"
)

// MD entry types (tag 269).
const (
	MdEntryTypeBid   = "0"
	MdEntryTypeOffer = "1"
	MdEntryTypeTrade = "2"
)

// Side values (tag 54).
const (
	SideBuy  = "1"
	SideSell = "2"
)

// Order type values (tag 40).
const (
	OrdTypeMarket = "1"
	OrdTypeLimit  = "2"
	OrdTypeStop   = "3"
)

// Order status values (tag 39), ExecType values (tag 150) reuse the same
// single-character codes per the FIX 4.4 spec.
const (
	OrdStatusNew             = "0"
	OrdStatusPartiallyFilled = "1"
	OrdStatusFilled          = "2"
	OrdStatusCanceled        = "4"
	OrdStatusRejected        = "8"
)
