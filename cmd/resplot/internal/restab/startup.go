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

// Startup aggregates process startup-time logs. The logs live in the
// boot-time result sets under file names tagged "startup_time"; every
// file contributes its whole sample list, pooled per result set.
// Startup times are the one kind where the distribution tail matters,
// so rows carry p50/p90/p99 alongside mean and std.
func Startup(root string) (*Table, error) {
	sets, err := resfmt.FindResultSets(root, "boottime")
	if err != nil {
		return nil, err
	}
	agg := resproc.NewAggregator[resproc.RunKey]()
	skipped := 0
	for _, set := range sets {
		for _, name := range set.Filtered("startup_time") {
			samples, err := parseFile(set.Path(name), resfmt.ParseStartupTimes)
			if err != nil {
				log.Printf("skipping %s: %v", set.Path(name), err)
				skipped++
				continue
			}
			agg.Add(resproc.RunKey{Run: set.Name}, samples...)
		}
	}
	groups, err := agg.Finalize()
	if err != nil {
		return nil, err
	}
	t := &Table{Categories: []string{"startup time"}, Skipped: skipped}
	for _, g := range groups {
		q, err := g.Sample.Quantiles()
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, Row{
			Name:      g.Key.String(),
			Stats:     []resmath.Summary{g.Stat},
			Quantiles: []resmath.Quantiles{q},
		})
	}
	if len(t.Rows) == 0 {
		return nil, errors.Errorf("no startup-time results under %s", root)
	}
	return t, nil
}
