// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// unitLen is the length of the unit suffix on measured values.
// The harness always emits two-character units ("ms", "us").
const unitLen = 2

// ParseBoottime reads a boot-time report whose first line has the
// shape "total=<value>ms" and returns the value in milliseconds.
// fileName is used in error messages; it is purely diagnostic.
func ParseBoottime(r io.Reader, fileName string) (float64, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return 0, err
		}
		return 0, &SyntaxError{fileName, 1, "empty boot-time report"}
	}
	line := s.Text()
	_, val, ok := strings.Cut(line, "=")
	if !ok {
		return 0, &SyntaxError{fileName, 1, fmt.Sprintf("missing \"=\" in %q", line)}
	}
	val = strings.TrimSpace(val)
	if len(val) <= unitLen {
		return 0, &SyntaxError{fileName, 1, fmt.Sprintf("truncated value %q", val)}
	}
	ms, err := strconv.ParseFloat(val[:len(val)-unitLen], 64)
	if err != nil {
		return 0, &SyntaxError{fileName, 1, fmt.Sprintf("malformed value %q", val)}
	}
	return ms, nil
}
