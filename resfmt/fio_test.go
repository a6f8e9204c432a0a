// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func fioJSON(rw string, readBW, writeBW int) string {
	return fmt.Sprintf(`{
		"jobs": [{
			"job options": {"rw": %q, "bs": "4k", "filename": "/dev/vdb"},
			"read": {"bw": %d},
			"write": {"bw": %d}
		}]
	}`, rw, readBW, writeBW)
}

func TestParseFio(t *testing.T) {
	check := func(input, wantMode string, wantBW float64) {
		t.Helper()
		res, err := ParseFio(strings.NewReader(input), "test")
		if err != nil {
			t.Errorf("unexpected error %s", err)
			return
		}
		if res.Mode != wantMode || res.Bandwidth != wantBW {
			t.Errorf("got mode %q bw %v, want %q %v", res.Mode, res.Bandwidth, wantMode, wantBW)
		}
		if res.Device != "/dev/vdb" || res.BlockSize != "4k" {
			t.Errorf("got device %q bs %q, want /dev/vdb 4k", res.Device, res.BlockSize)
		}
	}

	// fio reports KiB/s; the result is MiB/s.
	check(fioJSON("read", 102400, 0), "read", 100)
	check(fioJSON("randread", 51200, 0), "randread", 50)
	check(fioJSON("write", 0, 2048), "write", 2)
	check(fioJSON("randwrite", 0, 1024), "randwrite", 1)
}

func TestParseFioUnknownMode(t *testing.T) {
	_, err := ParseFio(strings.NewReader(fioJSON("trim", 1, 1)), "test")
	var merr *UnknownModeError
	if !errors.As(err, &merr) {
		t.Fatalf("got error %v, want UnknownModeError", err)
	}
	if merr.Mode != "trim" {
		t.Errorf("mode = %q, want trim", merr.Mode)
	}
}

func TestParseFioMalformed(t *testing.T) {
	checkErr := func(input string) {
		t.Helper()
		_, err := ParseFio(strings.NewReader(input), "test")
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("for %q, got error %v, want SyntaxError", input, err)
		}
	}
	checkErr("{truncated")
	checkErr(`{"jobs": []}`)
}
