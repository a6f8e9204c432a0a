// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resproc

import (
	"errors"
	"reflect"
	"testing"
)

func TestAggregator(t *testing.T) {
	agg := NewAggregator[RunKey]()
	agg.Add(RunKey{"v1.3"}, 200)
	agg.Add(RunKey{"v1.2"}, 100)
	agg.Add(RunKey{"v1.3"}, 100)

	// Keys keep insertion order regardless of sample arrival.
	if want := []RunKey{{"v1.3"}, {"v1.2"}}; !reflect.DeepEqual(agg.Keys(), want) {
		t.Errorf("keys = %v, want %v", agg.Keys(), want)
	}
	if agg.Len() != 2 {
		t.Errorf("len = %d, want 2", agg.Len())
	}

	groups, err := agg.Finalize()
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if groups[0].Stat.Mean != 150 || groups[0].Stat.Std != 50 {
		t.Errorf("v1.3 mean/std = %v/%v, want 150/50", groups[0].Stat.Mean, groups[0].Stat.Std)
	}
	if groups[1].Stat.Mean != 100 || groups[1].Stat.N != 1 {
		t.Errorf("v1.2 mean/n = %v/%d, want 100/1", groups[1].Stat.Mean, groups[1].Stat.N)
	}
	// Finalize sorts each group's samples for order statistics.
	if want := []float64{100, 200}; !reflect.DeepEqual(groups[0].Sample.Values, want) {
		t.Errorf("v1.3 samples = %v, want %v", groups[0].Sample.Values, want)
	}
}

func TestAggregatorEmptyGroup(t *testing.T) {
	agg := NewAggregator[NetKey]()
	agg.Add(NetKey{Run: "v1.2_iperf", Direction: "h2g"}, 1, 2, 3)
	agg.Register(NetKey{Run: "v1.2_iperf", Direction: "g2h"})

	_, err := agg.Finalize()
	var gerr *EmptyGroupError
	if !errors.As(err, &gerr) {
		t.Fatalf("got error %v, want EmptyGroupError", err)
	}
	if gerr.Group != "v1.2_iperf g2h" {
		t.Errorf("group = %q, want %q", gerr.Group, "v1.2_iperf g2h")
	}
}

func TestKeyStrings(t *testing.T) {
	check := func(got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	check(RunKey{"v1.2_boottime"}.String(), "v1.2_boottime")
	check(DevKey{Run: "v1.2_boottime"}.String(), "v1.2_boottime")
	check(DevKey{Run: "v1.2_boottime", Device: "pmem"}.String(), "v1.2_boottime pmem")
	check(DiskKey{Run: "v1.2_fio", Device: "/dev/vdb", Mode: "read", BlockSize: "4k"}.String(),
		"v1.2_fio /dev/vdb read 4k")
	check(DiskKey{Run: "v1.2_fio", Mode: "read"}.Trial().String(), "v1.2_fio")
	check(NetKey{Run: "v1.2_iperf", Direction: "h2g"}.String(), "v1.2_iperf h2g")
}
