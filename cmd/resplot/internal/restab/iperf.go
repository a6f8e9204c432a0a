// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"log"

	"github.com/pkg/errors"

	"github.com/ShadowCurse/radiance-perf/resfmt"
	"github.com/ShadowCurse/radiance-perf/resmath"
	"github.com/ShadowCurse/radiance-perf/resproc"
)

// iperfDirections are the chart categories, in display order.
var iperfDirections = []resfmt.Direction{resfmt.HostToGuest, resfmt.GuestToHost}

// Iperf aggregates iperf3 JSON reports from result sets tagged
// "iperf". Every measurement interval of a trial contributes one
// throughput sample to its run and direction, so one file adds many
// samples. Both directions are registered for every run; a campaign
// that never ran one direction fails as an empty group.
func Iperf(root string) (*Table, error) {
	sets, err := resfmt.FindResultSets(root, "iperf")
	if err != nil {
		return nil, err
	}
	agg := resproc.NewAggregator[resproc.NetKey]()
	skipped := 0
	for _, set := range sets {
		for _, d := range iperfDirections {
			agg.Register(resproc.NetKey{Run: set.Name, Direction: d.String()})
		}
		for _, name := range set.Filtered("iperf") {
			res, err := parseFile(set.Path(name), resfmt.ParseIperf)
			if err != nil {
				log.Printf("skipping %s: %v", set.Path(name), err)
				skipped++
				continue
			}
			agg.Add(resproc.NetKey{Run: set.Name, Direction: res.Direction.String()}, res.Samples...)
		}
	}
	groups, err := agg.Finalize()
	if err != nil {
		return nil, err
	}
	stat := make(map[resproc.NetKey]resmath.Summary, len(groups))
	for _, g := range groups {
		stat[g.Key] = g.Stat
	}

	categories := make([]string, len(iperfDirections))
	for i, d := range iperfDirections {
		categories[i] = d.String()
	}
	t := &Table{Categories: categories, Skipped: skipped}
	for _, set := range sets {
		row := Row{Name: set.Name}
		for _, d := range iperfDirections {
			row.Stats = append(row.Stats, stat[resproc.NetKey{Run: set.Name, Direction: d.String()}])
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, errors.Errorf("no iperf results under %s", root)
	}
	return t, nil
}
