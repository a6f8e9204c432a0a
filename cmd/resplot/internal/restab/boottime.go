// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/ShadowCurse/radiance-perf/resfmt"
	"github.com/ShadowCurse/radiance-perf/resmath"
	"github.com/ShadowCurse/radiance-perf/resproc"
)

// Boottime aggregates boot-time reports: one scalar per file, one bar
// per result set tagged "boottime". When devices is non-empty, each
// set's files are partitioned by the first matching file-name
// substring (for example "drive" vs "pmem"), and each partition
// becomes its own bar.
func Boottime(root string, devices []string) (*Table, error) {
	sets, err := resfmt.FindResultSets(root, "boottime")
	if err != nil {
		return nil, err
	}
	agg := resproc.NewAggregator[resproc.DevKey]()
	skipped := 0
	for _, set := range sets {
		for _, name := range set.Files {
			ms, err := parseFile(set.Path(name), resfmt.ParseBoottime)
			if err != nil {
				log.Printf("skipping %s: %v", set.Path(name), err)
				skipped++
				continue
			}
			agg.Add(resproc.DevKey{Run: set.Name, Device: deviceTag(name, devices)}, ms)
		}
	}
	groups, err := agg.Finalize()
	if err != nil {
		return nil, err
	}
	t := &Table{Categories: []string{"boottime"}, Skipped: skipped}
	for _, g := range groups {
		t.Rows = append(t.Rows, Row{Name: g.Key.String(), Stats: []resmath.Summary{g.Stat}})
	}
	if len(t.Rows) == 0 {
		return nil, errors.Errorf("no boot-time results under %s", root)
	}
	return t, nil
}

// deviceTag returns the first device-kind substring appearing in name,
// or "" when none does (the file then counts toward the unpartitioned
// run group).
func deviceTag(name string, devices []string) string {
	for _, d := range devices {
		if strings.Contains(name, d) {
			return d
		}
	}
	return ""
}
