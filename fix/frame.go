// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SOH is the FIX field delimiter, ASCII 0x01.
const SOH = "\x01"

const beginString = "FIX.4.4"

// ErrMalformed is returned by Parse when a frame does not have the
// required structure: a well-formed tag=value SOH-delimited body, a
// BeginString/BodyLength header, and a trailing checksum.
var ErrMalformed = errors.New("fix: malformed frame")

// ErrChecksum is returned by Parse when the trailing checksum does not
// match the recomputed value.
var ErrChecksum = errors.New("fix: checksum mismatch")

// field is one ordered tag=value pair. Frame preserves insertion order so
// Serialize reproduces a deterministic byte stream.
type field struct {
	tag   Tag
	value string
}

// Frame is an ordered FIX message: a sequence of tag=value fields. Three
// tags are reserved and managed by Serialize/Parse rather than set
// directly: BeginString (8), BodyLength (9), and CheckSum (10).
type Frame struct {
	msgType string
	fields  []field
}

// NewFrame creates an empty frame of the given message type (tag 35).
func NewFrame(msgType string) *Frame {
	return &Frame{msgType: msgType}
}

// MsgType returns the frame's message type.
func (f *Frame) MsgType() string {
	return f.msgType
}

// Set appends a tag=value field. Setting BeginString, BodyLength, or
// CheckSum directly is a no-op: those are computed by Serialize.
func (f *Frame) Set(tag Tag, value string) *Frame {
	if tag == TagBeginString || tag == TagBodyLength || tag == TagCheckSum {
		return f
	}
	f.fields = append(f.fields, field{tag, value})
	return f
}

// SetInt is a convenience wrapper around Set for integer fields.
func (f *Frame) SetInt(tag Tag, value int64) *Frame {
	return f.Set(tag, strconv.FormatInt(value, 10))
}

// SetFloat is a convenience wrapper around Set for decimal-text price/size
// fields, formatted with two decimal places.
func (f *Frame) SetFloat(tag Tag, value float64) *Frame {
	return f.Set(tag, strconv.FormatFloat(value, 'f', 2, 64))
}

// Get returns the value of the first field with the given tag, and whether
// it was present.
func (f *Frame) Get(tag Tag) (string, bool) {
	for _, fl := range f.fields {
		if fl.tag == tag {
			return fl.value, true
		}
	}
	return "", false
}

// GetInt is a convenience wrapper around Get for integer fields.
func (f *Frame) GetInt(tag Tag) (int64, bool) {
	v, ok := f.Get(tag)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetFloat is a convenience wrapper around Get for decimal-text fields.
func (f *Frame) GetFloat(tag Tag) (float64, bool) {
	v, ok := f.Get(tag)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Serialize renders the frame to its tag=value SOH-delimited wire form,
// computing BodyLength (9) and CheckSum (10) over the result.
//
// BodyLength is the byte count from immediately after the BodyLength field
// itself through the field immediately preceding CheckSum. CheckSum is the
// modulo-256 sum of every byte up to (but not including) the CheckSum
// field, rendered as a zero-padded three-digit decimal string.
func (f *Frame) Serialize() []byte {
	var body strings.Builder
	body.WriteString(tagValue(TagMsgType, f.msgType))
	for _, fl := range f.fields {
		body.WriteString(tagValue(fl.tag, fl.value))
	}
	bodyStr := body.String()

	var head strings.Builder
	head.WriteString(tagValue(TagBeginString, beginString))
	head.WriteString(tagValue(TagBodyLength, strconv.Itoa(len(bodyStr))))

	prefix := head.String() + bodyStr
	checksum := checksumOf(prefix)

	var out strings.Builder
	out.WriteString(prefix)
	out.WriteString(tagValue(TagCheckSum, fmt.Sprintf("%03d", checksum)))

	return []byte(out.String())
}

// Parse decodes a wire-format frame, validating BodyLength and CheckSum.
func Parse(raw []byte) (*Frame, error) {
	s := string(raw)
	parts := strings.Split(s, SOH)
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) < 4 {
		return nil, ErrMalformed
	}

	tag0, val0, err := splitField(parts[0])
	if err != nil || tag0 != TagBeginString {
		return nil, ErrMalformed
	}
	_ = val0

	tag1, bodyLenStr, err := splitField(parts[1])
	if err != nil || tag1 != TagBodyLength {
		return nil, ErrMalformed
	}
	bodyLen, err := strconv.Atoi(bodyLenStr)
	if err != nil {
		return nil, ErrMalformed
	}

	lastTag, checksumStr, err := splitField(parts[len(parts)-1])
	if err != nil || lastTag != TagCheckSum {
		return nil, ErrMalformed
	}
	wantChecksum, err := strconv.Atoi(checksumStr)
	if err != nil {
		return nil, ErrMalformed
	}

	// Reconstruct the prefix (everything up to but excluding the CheckSum
	// field) from the already-split parts, rather than searching the raw
	// string, so a coincidental "10=" substring inside a body value can't
	// confuse the boundary.
	prefix := strings.Join(parts[:len(parts)-1], SOH) + SOH
	if checksumOf(prefix) != wantChecksum {
		return nil, ErrChecksum
	}

	bodyFields := parts[2 : len(parts)-1]
	headLen := len(tagValue(TagBeginString, val0)) + len(tagValue(TagBodyLength, bodyLenStr))
	gotBodyLen := len(prefix) - headLen
	if gotBodyLen != bodyLen {
		return nil, ErrMalformed
	}

	if len(bodyFields) == 0 {
		return nil, ErrMalformed
	}
	msgTypeTag, msgType, err := splitField(bodyFields[0])
	if err != nil || msgTypeTag != TagMsgType {
		return nil, ErrMalformed
	}

	f := NewFrame(msgType)
	for _, p := range bodyFields[1:] {
		tag, val, err := splitField(p)
		if err != nil {
			return nil, ErrMalformed
		}
		f.Set(tag, val)
	}
	return f, nil
}

// IsValid reports whether raw parses and checksum-validates cleanly.
func IsValid(raw []byte) bool {
	_, err := Parse(raw)
	return err == nil
}

func tagValue(tag Tag, value string) string {
	return strconv.Itoa(int(tag)) + "=" + value + SOH
}

func splitField(raw string) (Tag, string, error) {
	eq := strings.IndexByte(raw, '=')
	if eq < 0 {
		return 0, "", ErrMalformed
	}
	n, err := strconv.Atoi(raw[:eq])
	if err != nil {
		return 0, "", ErrMalformed
	}
	return Tag(n), raw[eq+1:], nil
}

func checksumOf(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += int(s[i])
	}
	return sum % 256
}
