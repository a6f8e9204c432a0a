// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reschart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A BarRow is one legend entry of a grouped bar chart: one bar per
// category, each summarizing repeated measurements as mean and
// standard deviation.
type BarRow struct {
	Name  string
	Means []float64
	Stds  []float64
}

// bars draws one row's bars with error whiskers. Categories sit at
// integer x positions; each row draws a bar of the given width at its
// own offset within the category slot. Geometry is in data
// coordinates so whiskers, labels, and ticks line up exactly.
type bars struct {
	offset, width float64
	means, stds   []float64
	color         color.Color
	whiskerStyle  draw.LineStyle
}

func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, mean := range b.means {
		lo := trX(float64(i) + b.offset)
		hi := trX(float64(i) + b.offset + b.width)
		base := trY(0)
		top := trY(mean)

		pts := []vg.Point{
			{X: lo, Y: base},
			{X: lo, Y: top},
			{X: hi, Y: top},
			{X: hi, Y: base},
		}
		c.FillPolygon(b.color, c.ClipPolygonY(pts))

		mid := trX(float64(i) + b.offset + b.width/2)
		errLo := trY(mean - b.stds[i])
		errHi := trY(mean + b.stds[i])
		cap := (hi - lo) / 4
		whisks := c.ClipLinesY(
			[]vg.Point{{X: mid, Y: errLo}, {X: mid, Y: errHi}},
			[]vg.Point{{X: mid - cap, Y: errLo}, {X: mid + cap, Y: errLo}},
			[]vg.Point{{X: mid - cap, Y: errHi}, {X: mid + cap, Y: errHi}},
		)
		c.StrokeLines(b.whiskerStyle, whisks...)
	}
}

func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = b.offset - 0.5
	xmax = float64(len(b.means)-1) + b.offset + b.width + 0.5
	ymin = 0
	ymax = math.Inf(-1)
	for i, mean := range b.means {
		// Headroom for the value label above the whisker.
		ymax = math.Max(ymax, (mean+b.stds[i])*1.1)
	}
	return
}

// Thumbnail fills the legend swatch with the row color.
func (b *bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color, pts)
}

// BarChart renders a grouped bar chart to a PNG file at path. Every
// row must have one mean and one std per category. Each bar carries a
// "mean/std" value label above its whisker.
func BarChart(path string, categories []string, rows []BarRow, o Options) error {
	if len(rows) == 0 {
		return errors.New("bar chart has no rows")
	}
	for _, row := range rows {
		if len(row.Means) != len(categories) || len(row.Stds) != len(categories) {
			return errors.Errorf("row %s has %d/%d stats for %d categories",
				row.Name, len(row.Means), len(row.Stds), len(categories))
		}
	}

	pl := plot.New()
	fg := applyStyle(pl, o)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.NRGBA{0x50, 0x50, 0x50, 0xff}
	pl.Add(grid)

	groupWidth := o.GroupWidth
	if groupWidth == 0 {
		groupWidth = 0.25
	}
	w := groupWidth / float64(len(rows))

	var labelXYs plotter.XYs
	var labelTexts []string
	for i, row := range rows {
		b := &bars{
			offset: w * float64(i),
			width:  w,
			means:  row.Means,
			stds:   row.Stds,
			color:  seriesColor(i),
			whiskerStyle: draw.LineStyle{
				Color: fg,
				Width: vg.Points(1),
			},
		}
		pl.Add(b)
		pl.Legend.Add(row.Name, b)

		for j, mean := range row.Means {
			labelXYs = append(labelXYs, plotter.XY{
				X: float64(j) + b.offset + w/2,
				Y: mean + row.Stds[j],
			})
			labelTexts = append(labelTexts, fmt.Sprintf("%.2f/%.2f", mean, row.Stds[j]))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelTexts})
	if err != nil {
		return errors.Wrap(err, "building bar labels")
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = fg
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	pl.Add(labels)

	// One tick per category, centered under its group of bars.
	ticks := make([]plot.Tick, len(categories))
	for i, cat := range categories {
		ticks[i] = plot.Tick{
			Value: float64(i) + groupWidth/2,
			Label: cat,
		}
	}
	pl.X.Tick.Marker = plot.ConstantTicks(ticks)
	pl.X.Tick.Length = 0

	return save(pl, path, o, 24, 16)
}
