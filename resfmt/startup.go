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

// ParseStartupTimes reads a process startup-time log where each
// benchmark line ends in a whitespace-delimited "<int>us" field and
// returns the values in microseconds, in line order. Unlike the
// boot-time report, one file carries many iterations, so the result is
// a sample list rather than a scalar. Blank lines are skipped.
func ParseStartupTimes(r io.Reader, fileName string) ([]float64, error) {
	var samples []float64
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		last := fields[len(fields)-1]
		if len(last) <= unitLen {
			return nil, &SyntaxError{fileName, n, fmt.Sprintf("truncated sample %q", last)}
		}
		us, err := strconv.Atoi(last[:len(last)-unitLen])
		if err != nil {
			return nil, &SyntaxError{fileName, n, fmt.Sprintf("malformed sample %q", last)}
		}
		samples = append(samples, float64(us))
	}
	return samples, s.Err()
}
