// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ShadowCurse/radiance-perf/cmd/resplot/internal/restab"
	"github.com/ShadowCurse/radiance-perf/reschart"
)

var (
	flagResults string
	flagOut     string
	flagDark    bool
	flagSVG     bool
	flagWidth   float64
	flagHeight  float64
)

var rootCmd = &cobra.Command{
	Use:           "resplot",
	Short:         "aggregate and plot benchmark results",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagResults, "results", "r", "perf_results", "results root directory")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", ".", "directory to write charts into")
	rootCmd.PersistentFlags().BoolVar(&flagDark, "dark", true, "dark background style")
	rootCmd.PersistentFlags().BoolVar(&flagSVG, "svg", false, "also write an SVG next to each PNG")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", 0, "chart width in centimeters (0 = per-chart default)")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", 0, "chart height in centimeters (0 = per-chart default)")
}

// chartOptions builds renderer options from the global flags.
func chartOptions(xlabel, ylabel string) reschart.Options {
	return reschart.Options{
		XLabel:   xlabel,
		YLabel:   ylabel,
		Dark:     flagDark,
		SVG:      flagSVG,
		WidthCM:  flagWidth,
		HeightCM: flagHeight,
	}
}

// barRows converts a restab table into renderer rows.
func barRows(t *restab.Table) []reschart.BarRow {
	rows := make([]reschart.BarRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := reschart.BarRow{Name: r.Name}
		for _, s := range r.Stats {
			row.Means = append(row.Means, s.Mean)
			row.Stds = append(row.Stds, s.Std)
		}
		rows = append(rows, row)
	}
	return rows
}

func reportSkipped(n int) {
	if n > 0 {
		log.Printf("%d result files skipped", n)
	}
}
