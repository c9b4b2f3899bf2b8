// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixsession_test

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/hftsim-go/core/fix"
	"github.com/hftsim-go/core/fixsession"
)

type capture struct {
	mu   sync.Mutex
	sent [][]byte
}

func (c *capture) send(raw []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, raw)
	return nil
}

func (c *capture) last() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sent) == 0 {
		return nil
	}
	return c.sent[len(c.sent)-1]
}

func (c *capture) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func TestLogonLogoutIdempotent(t *testing.T) {
	c := &capture{}
	s := fixsession.New("SIM", "CLIENT", c.send, nil)

	if s.State() != fixsession.StateNotLoggedOn {
		t.Fatal("new session should start NOT_LOGGED_ON")
	}

	if err := s.Logon(30); err != nil {
		t.Fatalf("Logon: %v", err)
	}
	if s.State() != fixsession.StateLoggedOn {
		t.Fatal("state after Logon should be LOGGED_ON")
	}
	if err := s.Logon(30); err != nil {
		t.Fatalf("second Logon: %v", err)
	}
	if c.count() != 1 {
		t.Fatalf("sent %d logon frames, want 1 (idempotent)", c.count())
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.State() != fixsession.StateNotLoggedOn {
		t.Fatal("state after Logout should be NOT_LOGGED_ON")
	}
}

func TestSendMessageRejectedWhenNotLoggedOn(t *testing.T) {
	c := &capture{}
	s := fixsession.New("SIM", "CLIENT", c.send, nil)

	f := fix.NewFrame(fix.MsgTypeHeartbeat)
	if err := s.SendMessage(f); err != fixsession.ErrNotLoggedOn {
		t.Fatalf("SendMessage before Logon: got %v, want ErrNotLoggedOn", err)
	}
}

func TestSequenceNumbersMonotonic(t *testing.T) {
	c := &capture{}
	s := fixsession.New("SIM", "CLIENT", c.send, nil)
	_ = s.Logon(30)

	for i := 0; i < 5; i++ {
		_ = s.SendMessage(fix.NewFrame(fix.MsgTypeHeartbeat))
	}

	var lastSeq int64 = -1
	for i := 0; i < c.count(); i++ {
		f, err := fix.Parse(c.sent[i])
		if err != nil {
			t.Fatalf("Parse sent frame %d: %v", i, err)
		}
		seq, ok := f.GetInt(fix.TagMsgSeqNum)
		if !ok {
			t.Fatalf("frame %d missing MsgSeqNum", i)
		}
		if seq <= lastSeq {
			t.Fatalf("sequence not strictly increasing: %d after %d", seq, lastSeq)
		}
		lastSeq = seq
	}
}

func TestProcessMessageDispatchesTestRequest(t *testing.T) {
	c := &capture{}
	s := fixsession.New("SIM", "CLIENT", c.send, nil)
	_ = s.Logon(30)

	req := fix.NewFrame(fix.MsgTypeTestRequest)
	req.Set(fix.TagTestReqID, "TR-1")
	s.ProcessMessage(req.Serialize())

	last := c.last()
	f, err := fix.Parse(last)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.MsgType() != fix.MsgTypeHeartbeat {
		t.Fatalf("response MsgType = %q, want Heartbeat", f.MsgType())
	}
	if id, _ := f.Get(fix.TagTestReqID); id != "TR-1" {
		t.Fatalf("TestReqID echoed = %q, want TR-1", id)
	}
}

func TestProcessMessageCountsMalformedFrames(t *testing.T) {
	c := &capture{}
	s := fixsession.New("SIM", "CLIENT", c.send, nil)

	s.ProcessMessage([]byte("not a fix frame"))
	if got := s.ErrorCount(); got != 1 {
		t.Fatalf("ErrorCount = %d, want 1", got)
	}
}

func TestProcessMessageLogsUnknownMessageType(t *testing.T) {
	c := &capture{}
	var buf bytes.Buffer
	s := fixsession.New("SIM", "CLIENT", c.send, log.New(&buf, "", 0))
	_ = s.Logon(30)
	buf.Reset() // discard the Logon frame's own log noise, if any

	unknown := fix.NewFrame("Z")
	s.ProcessMessage(unknown.Serialize())

	if buf.Len() == 0 {
		t.Fatal("expected an unknown message type to be logged")
	}
	if c.count() != 1 {
		t.Fatalf("sent %d frames, want 1 (Logon only; unknown type must not trigger a reply)", c.count())
	}
}

func TestProcessMessageLogonTransitionsState(t *testing.T) {
	c := &capture{}
	s := fixsession.New("SIM", "CLIENT", c.send, nil)

	logon := fix.NewFrame(fix.MsgTypeLogon)
	logon.SetInt(fix.TagHeartBtInt, 30)
	s.ProcessMessage(logon.Serialize())

	if s.State() != fixsession.StateLoggedOn {
		t.Fatal("inbound Logon should transition session to LOGGED_ON")
	}
}
