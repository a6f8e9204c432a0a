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

// fioModes are the chart categories, in display order. A campaign runs
// each trial configuration in all four modes.
var fioModes = []string{"read", "write", "randread", "randwrite"}

// Fio aggregates fio JSON reports from result sets tagged "fio", one
// bandwidth sample per file, grouped by run, device, mode, and block
// size. Rows are trial configurations (run/device/block size) with one
// bar per mode.
func Fio(root string) (*Table, error) {
	sets, err := resfmt.FindResultSets(root, "fio")
	if err != nil {
		return nil, err
	}
	agg := resproc.NewAggregator[resproc.DiskKey]()
	var trials []resproc.DiskKey
	seen := make(map[resproc.DiskKey]bool)
	skipped := 0
	for _, set := range sets {
		for _, name := range set.Filtered("fio") {
			res, err := parseFile(set.Path(name), resfmt.ParseFio)
			if err != nil {
				log.Printf("skipping %s: %v", set.Path(name), err)
				skipped++
				continue
			}
			key := resproc.DiskKey{
				Run:       set.Name,
				Device:    res.Device,
				Mode:      res.Mode,
				BlockSize: res.BlockSize,
			}
			if trial := key.Trial(); !seen[trial] {
				seen[trial] = true
				trials = append(trials, trial)
			}
			agg.Add(key, res.Bandwidth)
		}
	}

	// Every trial configuration is expected in all four modes;
	// register them so a mode that never ran fails as an empty
	// group instead of silently missing a bar.
	for _, trial := range trials {
		for _, mode := range fioModes {
			k := trial
			k.Mode = mode
			agg.Register(k)
		}
	}
	groups, err := agg.Finalize()
	if err != nil {
		return nil, err
	}
	stat := make(map[resproc.DiskKey]resmath.Summary, len(groups))
	for _, g := range groups {
		stat[g.Key] = g.Stat
	}

	t := &Table{Categories: fioModes, Skipped: skipped}
	for _, trial := range trials {
		row := Row{Name: trialLabel(trial, trials)}
		for _, mode := range fioModes {
			k := trial
			k.Mode = mode
			row.Stats = append(row.Stats, stat[k])
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, errors.Errorf("no fio results under %s", root)
	}
	return t, nil
}

// trialLabel labels a row by run name alone when the run has a single
// trial configuration, and by the full run/device/block-size tuple
// when it has several.
func trialLabel(trial resproc.DiskKey, trials []resproc.DiskKey) string {
	n := 0
	for _, t := range trials {
		if t.Run == trial.Run {
			n++
		}
	}
	if n == 1 {
		return trial.Run
	}
	return trial.String()
}
