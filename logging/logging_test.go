// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hftsim-go/core/logging"
)

func TestNewFileLoggerWritesThroughRotator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.log")

	logger, closer, err := logging.NewFileLogger(path, "[test] ")
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	defer closer()

	logger.Printf("hello %d", 1)

	if err := closer(); err != nil {
		t.Fatalf("closer: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected rotator to have written data to the log file")
	}
}
