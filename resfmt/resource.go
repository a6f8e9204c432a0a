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

// A ResourceLog holds ordered per-name value series from a process
// resource-usage log. Series order per name is line order, which is
// iteration order.
type ResourceLog struct {
	names  []string
	series map[string][]int64
}

// ParseResourceLog reads a resource-usage log where each line is
// either "<name> <value>" or "<name> <seconds> <subseconds>". A
// two-field time value is combined into a single millisecond integer
// as seconds*1000+subseconds. Blank lines are skipped; any other line
// shape is an error.
func ParseResourceLog(r io.Reader, fileName string) (*ResourceLog, error) {
	l := &ResourceLog{series: make(map[string][]int64)}
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		var v int64
		switch len(fields) {
		case 2:
			val, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, n, fmt.Sprintf("malformed value %q", fields[1])}
			}
			v = val
		case 3:
			sec, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, n, fmt.Sprintf("malformed seconds %q", fields[1])}
			}
			sub, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, n, fmt.Sprintf("malformed subseconds %q", fields[2])}
			}
			v = sec*1000 + sub
		default:
			return nil, &SyntaxError{fileName, n, fmt.Sprintf("resource row has %d fields, need 2 or 3", len(fields))}
		}
		name := fields[0]
		if _, ok := l.series[name]; !ok {
			l.names = append(l.names, name)
		}
		l.series[name] = append(l.series[name], v)
	}
	return l, s.Err()
}

// Names returns the resource names in first-appearance order.
func (l *ResourceLog) Names() []string {
	return l.names
}

// Series returns the values recorded for name, in iteration order.
func (l *ResourceLog) Series(name string) []int64 {
	return l.series[name]
}
