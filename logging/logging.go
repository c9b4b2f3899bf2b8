// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging builds a *log.Logger that the operational layer
// (workerpool, marketdata, fixsession) can be given in place of its default
// error sink, log.Default(). The backing io.Writer is a rotating file sink from agilira/lethe rather than
// a bare os.File, so long-running simulator processes don't grow an
// unbounded log file.
package logging

import (
	"log"

	"github.com/agilira/lethe"
)

// NewFileLogger returns a *log.Logger that writes through a lethe rotator
// at path, with sane defaults for a long-running process: 100MB rotation,
// 7-day age cutoff, 10 backups retained, compressed.
//
// Close must be called (via the returned closer) to flush and release the
// underlying file when the logger is no longer needed.
func NewFileLogger(path string, prefix string) (*log.Logger, func() error, error) {
	rotator, err := lethe.NewWithDefaults(path)
	if err != nil {
		return nil, nil, err
	}
	return log.New(rotator, prefix, log.LstdFlags|log.Lmicroseconds), rotator.Close, nil
}
