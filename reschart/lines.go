// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reschart

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A Series is one line of a time-series chart: an ordered sequence of
// samples indexed by position. Emph draws the line heavier, used for
// the machine-aggregate "cpu" series so it stands out among per-core
// lines.
type Series struct {
	Name   string
	Values []float64
	Emph   bool
}

// LineChart renders the series as lines over their sample index to a
// PNG file at path. Options.Start and Options.End bound the plotted
// index window; both are clamped per series, so a series shorter than
// the window simply ends early. The x coordinate is the absolute
// sample index, not the window-relative one.
func LineChart(path string, series []Series, o Options) error {
	if len(series) == 0 {
		return errors.New("line chart has no series")
	}

	pl := plot.New()
	applyStyle(pl, o)

	for i, s := range series {
		start, end := window(o, len(s.Values))
		xys := make(plotter.XYs, 0, end-start)
		for j := start; j < end; j++ {
			xys = append(xys, plotter.XY{X: float64(j), Y: s.Values[j]})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return errors.Wrapf(err, "building line %s", s.Name)
		}
		line.LineStyle.Color = seriesColor(i)
		line.LineStyle.Width = vg.Points(1)
		if s.Emph {
			line.LineStyle.Width = vg.Points(3)
		}
		pl.Add(line)
		pl.Legend.Add(s.Name, line)
	}

	return save(pl, path, o, 40, 17)
}

// window clamps the configured start/end indices to a series of n
// samples. End 0 means the whole series.
func window(o Options, n int) (start, end int) {
	start, end = o.Start, o.End
	if end == 0 || end > n {
		end = n
	}
	if start > end {
		start = end
	}
	if start < 0 {
		start = 0
	}
	return start, end
}
