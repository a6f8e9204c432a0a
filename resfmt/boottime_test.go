// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBoottime(t *testing.T) {
	check := func(input string, want float64) {
		t.Helper()
		got, err := ParseBoottime(strings.NewReader(input), "test")
		if err != nil {
			t.Errorf("for %q, unexpected error %s", input, err)
			return
		}
		if got != want {
			t.Errorf("for %q, got %v, want %v", input, got, want)
		}
	}
	checkErr := func(input string) {
		t.Helper()
		_, err := ParseBoottime(strings.NewReader(input), "test")
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("for %q, got error %v, want SyntaxError", input, err)
		}
	}

	check("total=12.34ms\n", 12.34)
	check("total=1234.56ms", 1234.56)
	// Whitespace around the value is stripped before the unit
	// suffix is dropped.
	check("total= 42.0ms \n", 42)
	// Only the first line matters.
	check("total=100.0ms\ngarbage\n", 100)

	checkErr("")
	checkErr("total 12.34ms")
	checkErr("total=ms")
	checkErr("total=xyzms")
}
