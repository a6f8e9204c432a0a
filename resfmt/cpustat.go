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

// A CounterSnapshot is one row of CPU time-accounting counters for a
// single core at a single sampling tick, in the /proc/stat layout.
// Counters are cumulative ticks since boot.
type CounterSnapshot struct {
	User      int64
	Nice      int64
	System    int64
	Idle      int64
	IOWait    int64
	IRQ       int64
	SoftIRQ   int64
	Steal     int64
	Guest     int64
	GuestNice int64
}

// WorkTime is the ticks spent on non-idle, non-guest work. Guest time
// is already accounted in User/Nice, so it is subtracted back out.
func (c CounterSnapshot) WorkTime() int64 {
	return c.User + c.Nice + c.System + c.IRQ + c.SoftIRQ - c.Guest - c.GuestNice
}

// TotalTime is WorkTime plus idle, I/O-wait, guest, and steal ticks.
func (c CounterSnapshot) TotalTime() int64 {
	return c.WorkTime() + c.Idle + c.IOWait + c.Guest + c.GuestNice + c.Steal
}

// diff returns a-b when the counter advanced and def otherwise. A
// counter that moved backward means a reset or wraparound between the
// two snapshots; the fallback treats that tick as "no work observed"
// (def 0 for the numerator, 1 for the denominator) instead of
// producing a negative usage or dividing by zero.
func diff(a, b, def int64) int64 {
	if b < a {
		return a - b
	}
	return def
}

// Usage returns the CPU usage percentage between older and c, where c
// is the chronologically later snapshot of the same core.
func (c CounterSnapshot) Usage(older CounterSnapshot) float64 {
	work := diff(c.WorkTime(), older.WorkTime(), 0)
	total := diff(c.TotalTime(), older.TotalTime(), 1)
	return float64(work) / float64(total) * 100.0
}

// A CPULog is an ordered collection of counter snapshots per core
// identifier ("cpu" for the machine aggregate, "cpu0", "cpu1", ... for
// individual cores). Snapshot order per core is arrival order, which
// is sampling time order.
type CPULog struct {
	cores []string
	snaps map[string][]CounterSnapshot
}

// ParseCPULog reads a CPU accounting log: one whitespace-delimited row
// per core per sampling tick, a core identifier followed by the ten
// counters. The raw log double-spaces the aggregate "cpu" row, so
// fields are split on runs of whitespace. Rows may carry extra
// trailing fields (newer kernels append columns); the first ten
// counters are what the usage derivation is defined over.
func ParseCPULog(r io.Reader, fileName string) (*CPULog, error) {
	l := &CPULog{snaps: make(map[string][]CounterSnapshot)}
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 11 {
			return nil, &SyntaxError{fileName, n, fmt.Sprintf("counter row has %d fields, need at least 11", len(fields))}
		}
		var c [10]int64
		for i := range c {
			v, err := strconv.ParseInt(fields[1+i], 10, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, n, fmt.Sprintf("malformed counter %q", fields[1+i])}
			}
			c[i] = v
		}
		core := fields[0]
		if _, ok := l.snaps[core]; !ok {
			l.cores = append(l.cores, core)
		}
		l.snaps[core] = append(l.snaps[core], CounterSnapshot{
			User: c[0], Nice: c[1], System: c[2], Idle: c[3], IOWait: c[4],
			IRQ: c[5], SoftIRQ: c[6], Steal: c[7], Guest: c[8], GuestNice: c[9],
		})
	}
	return l, s.Err()
}

// Cores returns the core identifiers in first-appearance order.
func (l *CPULog) Cores() []string {
	return l.cores
}

// Snapshots returns the snapshots recorded for core, in sample order.
func (l *CPULog) Snapshots(core string) []CounterSnapshot {
	return l.snaps[core]
}

// UsageSeries returns the usage percentage over every consecutive
// snapshot pair for core. The series is one shorter than the snapshot
// sequence; a core with fewer than two snapshots yields nil.
func (l *CPULog) UsageSeries(core string) []float64 {
	snaps := l.snaps[core]
	if len(snaps) < 2 {
		return nil
	}
	usage := make([]float64, 0, len(snaps)-1)
	for i := 1; i < len(snaps); i++ {
		usage = append(usage, snaps[i].Usage(snaps[i-1]))
	}
	return usage
}
