// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reschart renders comparative benchmark charts: grouped bar
// charts with error whiskers for repeated scalar measurements, and
// sample-index line charts for time series. Charts are written as PNG
// files, by default on the dark background the result dashboards use.
package reschart

import (
	"image/color"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Options configures chart identity and geometry. The zero value asks
// for per-chart defaults.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// Dark selects a black background with white foreground.
	Dark bool

	// SVG additionally writes an .svg sibling next to the PNG.
	SVG bool

	// GroupWidth is the fraction of one category slot spanned by a
	// full group of bars. 0 means 0.25. Bar charts only.
	GroupWidth float64

	// WidthCM and HeightCM are the image size in centimeters.
	// 0 picks a default suited to the chart type.
	WidthCM, HeightCM float64

	// DPI is the raster resolution. 0 means 150.
	DPI int

	// Start and End bound the sample-index window of line charts.
	// End 0 means the full series.
	Start, End int
}

// palette is the series color cycle, matching the default matplotlib
// cycle the dashboards grew up with.
var palette = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.NRGBA{0xd6, 0x27, 0x28, 0xff},
	color.NRGBA{0x94, 0x67, 0xbd, 0xff},
	color.NRGBA{0x8c, 0x56, 0x4b, 0xff},
	color.NRGBA{0xe3, 0x77, 0xc2, 0xff},
	color.NRGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.NRGBA{0xbc, 0xbd, 0x22, 0xff},
	color.NRGBA{0x17, 0xbe, 0xcf, 0xff},
}

func seriesColor(i int) color.Color {
	return palette[i%len(palette)]
}

// applyStyle sets labels and the fore/background colors on pl and
// returns the foreground color for plotters that draw text or lines.
func applyStyle(pl *plot.Plot, o Options) color.Color {
	var fg color.Color = color.Black
	if o.Dark {
		fg = color.White
		pl.BackgroundColor = color.Black
	}

	pl.Title.Text = o.Title
	pl.Title.TextStyle.Color = fg
	pl.X.Label.Text = o.XLabel
	pl.X.Label.TextStyle.Color = fg
	pl.X.LineStyle.Color = fg
	pl.X.Tick.LineStyle.Color = fg
	pl.X.Tick.Label.Color = fg
	pl.Y.Label.Text = o.YLabel
	pl.Y.Label.TextStyle.Color = fg
	pl.Y.LineStyle.Color = fg
	pl.Y.Tick.LineStyle.Color = fg
	pl.Y.Tick.Label.Color = fg
	pl.Legend.TextStyle.Color = fg
	pl.Legend.Top = true
	pl.Legend.Left = true
	return fg
}

// save renders pl into a PNG file at path, plus an SVG sibling when
// o.SVG is set.
func save(pl *plot.Plot, path string, o Options, defWidthCM, defHeightCM float64) error {
	width, height := o.WidthCM, o.HeightCM
	if width == 0 {
		width = defWidthCM
	}
	if height == 0 {
		height = defHeightCM
	}
	dpi := o.DPI
	if dpi == 0 {
		dpi = 150
	}
	var bg color.Color = color.White
	if o.Dark {
		bg = color.Black
	}
	w := vg.Length(width) * vg.Centimeter
	h := vg.Length(height) * vg.Centimeter

	do := func(path string, can vg.CanvasWriterTo) error {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "creating chart %s", path)
		}
		pl.Draw(draw.New(can))
		if _, err := can.WriteTo(f); err != nil {
			f.Close()
			return errors.Wrapf(err, "writing chart %s", path)
		}
		return f.Close()
	}

	png := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(bg),
	)}
	if err := do(path, png); err != nil {
		return err
	}
	if o.SVG {
		return do(strings.TrimSuffix(path, ".png")+".svg", vgsvg.New(w, h))
	}
	return nil
}
