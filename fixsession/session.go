// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixsession implements the session-level state machine on top of
// package fix's frame codec: logon/logout, outbound sequence stamping, and
// dispatch of inbound messages to handlers keyed by message type.
package fixsession

import (
	"errors"
	"log"
	"sync"

	"code.hybscloud.com/atomix"

	"github.com/hftsim-go/core/clock"
	"github.com/hftsim-go/core/fix"
)

// State is the session's logon state.
type State int

const (
	StateNotLoggedOn State = iota
	StateLoggedOn
)

func (s State) String() string {
	if s == StateLoggedOn {
		return "LOGGED_ON"
	}
	return "NOT_LOGGED_ON"
}

// ErrNotLoggedOn is returned by SendMessage when the session isn't logged
// on.
var ErrNotLoggedOn = errors.New("fixsession: not logged on")

// Handler processes one inbound frame of a specific message type.
type Handler func(s *Session, f *fix.Frame)

// Session tracks logon state, outbound sequence numbers, and routes
// inbound frames to registered handlers.
type Session struct {
	senderCompID string
	targetCompID string

	mu       sync.Mutex
	state    State
	outSeq   uint64
	inSeq    uint64
	handlers map[string]Handler

	errors atomix.Uint64
	logger *log.Logger

	send func([]byte) error
}

// New creates a session identified by the given sender/target comp IDs.
// send is called with the serialized bytes of every outbound frame; logger
// receives one line per malformed inbound frame (if nil, log.Default()).
func New(senderCompID, targetCompID string, send func([]byte) error, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		senderCompID: senderCompID,
		targetCompID: targetCompID,
		handlers:     make(map[string]Handler),
		send:         send,
		logger:       logger,
	}
	s.handlers[fix.MsgTypeLogon] = handleLogon
	s.handlers[fix.MsgTypeLogout] = handleLogout
	s.handlers[fix.MsgTypeTestRequest] = handleTestRequest
	return s
}

// OnMsgType registers (or overrides) the handler for a message type.
func (s *Session) OnMsgType(msgType string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[msgType] = h
}

// State returns the current logon state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ErrorCount returns the number of malformed inbound frames dropped so far.
func (s *Session) ErrorCount() uint64 {
	return s.errors.LoadAcquire()
}

// Logon sends a Logon frame and marks the session logged on. Idempotent:
// calling Logon while already logged on is a no-op.
func (s *Session) Logon(heartBtInt int64) error {
	s.mu.Lock()
	if s.state == StateLoggedOn {
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoggedOn
	s.mu.Unlock()

	f := fix.NewFrame(fix.MsgTypeLogon)
	f.SetInt(fix.TagHeartBtInt, heartBtInt)
	return s.SendMessage(f)
}

// Logout sends a Logout frame and marks the session logged off. Idempotent.
func (s *Session) Logout() error {
	s.mu.Lock()
	if s.state == StateNotLoggedOn {
		s.mu.Unlock()
		return nil
	}
	s.state = StateNotLoggedOn
	s.mu.Unlock()

	return s.SendMessage(fix.NewFrame(fix.MsgTypeLogout))
}

// SendMessage stamps sender/target comp IDs and the next sequence number
// onto f, serializes it, and passes it to the session's send function.
// Returns ErrNotLoggedOn for any message type other than Logon if the
// session isn't logged on.
func (s *Session) SendMessage(f *fix.Frame) error {
	s.mu.Lock()
	if s.state != StateLoggedOn && f.MsgType() != fix.MsgTypeLogon {
		s.mu.Unlock()
		return ErrNotLoggedOn
	}
	s.outSeq++
	seq := s.outSeq
	s.mu.Unlock()

	f.Set(fix.TagSenderCompID, s.senderCompID)
	f.Set(fix.TagTargetCompID, s.targetCompID)
	f.SetInt(fix.TagMsgSeqNum, int64(seq))
	f.SetInt(fix.TagSendingTime, clock.Now().UnixNano())

	return s.send(f.Serialize())
}

// ProcessMessage parses and validates raw, then dispatches it to the
// handler registered for its message type. Malformed frames are dropped
// and counted rather than propagated, matching the error-sink style used
// throughout this core's operational layer.
func (s *Session) ProcessMessage(raw []byte) {
	f, err := fix.Parse(raw)
	if err != nil {
		s.errors.AddAcqRel(1)
		s.logger.Printf("fixsession: dropping malformed frame: %v", err)
		return
	}

	s.mu.Lock()
	s.inSeq++
	h, ok := s.handlers[f.MsgType()]
	s.mu.Unlock()

	if !ok {
		s.logger.Printf("fixsession: dropping unknown message type %q", f.MsgType())
		return
	}
	h(s, f)
}

func handleLogon(s *Session, f *fix.Frame) {
	s.mu.Lock()
	s.state = StateLoggedOn
	s.mu.Unlock()
}

func handleLogout(s *Session, f *fix.Frame) {
	s.mu.Lock()
	s.state = StateNotLoggedOn
	s.mu.Unlock()
}

func handleTestRequest(s *Session, f *fix.Frame) {
	hb := fix.NewFrame(fix.MsgTypeHeartbeat)
	if id, ok := f.Get(fix.TagTestReqID); ok {
		hb.Set(fix.TagTestReqID, id)
	}
	_ = s.SendMessage(hb)
}
