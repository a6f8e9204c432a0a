// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ShadowCurse/radiance-perf/resfmt"
	"github.com/ShadowCurse/radiance-perf/reschart"
)

// CPU derives per-core usage-percentage series from one CPU
// accounting log. Series come out in core first-appearance order, and
// the machine-aggregate "cpu" series is marked for emphasis.
func CPU(path string) ([]reschart.Series, error) {
	cl, err := parseFile(path, resfmt.ParseCPULog)
	if err != nil {
		return nil, err
	}
	var series []reschart.Series
	for _, core := range cl.Cores() {
		series = append(series, reschart.Series{
			Name:   core,
			Values: cl.UsageSeries(core),
			Emph:   core == "cpu",
		})
	}
	if len(series) == 0 {
		return nil, errors.Errorf("no counter rows in %s", path)
	}
	return series, nil
}

// Resources reads one resource-usage log into per-name series, in
// line order. A non-empty values filter keeps only the names it
// contains, so "--values utime,stime" plots exactly those two.
func Resources(path, values string) ([]reschart.Series, error) {
	rl, err := parseFile(path, resfmt.ParseResourceLog)
	if err != nil {
		return nil, err
	}
	var series []reschart.Series
	for _, name := range rl.Names() {
		if values != "" && !strings.Contains(values, name) {
			continue
		}
		raw := rl.Series(name)
		vals := make([]float64, len(raw))
		for i, v := range raw {
			vals[i] = float64(v)
		}
		series = append(series, reschart.Series{Name: name, Values: vals})
	}
	if len(series) == 0 {
		return nil, errors.Errorf("no resource series selected from %s", path)
	}
	return series, nil
}
