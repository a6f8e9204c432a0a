// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	check := func(a, b, def, want int64) {
		t.Helper()
		if got := diff(a, b, def); got != want {
			t.Errorf("diff(%d, %d, %d) = %d, want %d", a, b, def, got, want)
		}
	}
	check(10, 5, 0, 5)
	// Counter went backward: fall back to the default.
	check(5, 10, 0, 0)
	check(5, 10, 1, 1)
	// No movement is also a fallback, not zero division fodder.
	check(5, 5, 1, 1)
}

func TestSnapshotUsage(t *testing.T) {
	older := CounterSnapshot{User: 10, System: 10, Idle: 100}
	newer := CounterSnapshot{User: 20, System: 20, Idle: 160}
	// work 20->40, total 120->200: 20 work ticks out of 80.
	if got := newer.Usage(older); got != 25.0 {
		t.Errorf("usage = %v, want 25", got)
	}

	// A reset numerator yields 0% rather than a negative usage.
	reset := CounterSnapshot{User: 1, Idle: 1}
	if got := reset.Usage(older); got != 0 {
		t.Errorf("usage after reset = %v, want 0", got)
	}
}

func TestSnapshotUsageBounded(t *testing.T) {
	// For monotonically non-decreasing counters, usage stays in
	// [0, 100].
	snaps := []CounterSnapshot{
		{User: 0, Idle: 0},
		{User: 50, Idle: 0},
		{User: 50, Idle: 100},
		{User: 80, Idle: 170, IOWait: 3, Steal: 2},
	}
	for i := 1; i < len(snaps); i++ {
		u := snaps[i].Usage(snaps[i-1])
		if u < 0 || u > 100 {
			t.Errorf("usage[%d] = %v, want within [0, 100]", i, u)
		}
	}
}

func TestParseCPULog(t *testing.T) {
	// The machine-aggregate row is double-spaced, like the raw log.
	input := "cpu  20 0 20 100 0 0 0 0 0 0\n" +
		"cpu0 10 0 10 50 0 0 0 0 0 0\n" +
		"cpu  40 0 40 180 0 0 0 0 0 0\n" +
		"cpu0 20 0 20 90 0 0 0 0 0 0\n"
	l, err := ParseCPULog(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if want := []string{"cpu", "cpu0"}; !reflect.DeepEqual(l.Cores(), want) {
		t.Errorf("cores = %v, want %v", l.Cores(), want)
	}
	if n := len(l.Snapshots("cpu")); n != 2 {
		t.Errorf("aggregate snapshots = %d, want 2", n)
	}

	// The usage series is one shorter than the snapshot sequence.
	usage := l.UsageSeries("cpu")
	if len(usage) != 1 {
		t.Fatalf("usage series length = %d, want 1", len(usage))
	}
	// work 40->80, total 140->260: 40 of 120.
	want := 40.0 / 120.0 * 100.0
	if usage[0] != want {
		t.Errorf("usage = %v, want %v", usage[0], want)
	}

	if got := l.UsageSeries("cpu7"); got != nil {
		t.Errorf("unknown core usage = %v, want nil", got)
	}
}

func TestParseCPULogErrors(t *testing.T) {
	checkErr := func(input string) {
		t.Helper()
		_, err := ParseCPULog(strings.NewReader(input), "test")
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("for %q, got error %v, want SyntaxError", input, err)
		}
	}
	checkErr("cpu 1 2 3\n")
	checkErr("cpu a 2 3 4 5 6 7 8 9 10\n")
}
