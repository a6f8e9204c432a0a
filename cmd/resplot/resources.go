// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ShadowCurse/radiance-perf/cmd/resplot/internal/restab"
	"github.com/ShadowCurse/radiance-perf/reschart"
)

var (
	flagResPath   string
	flagResStart  int
	flagResEnd    int
	flagResValues string
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "plot process resource usage from a usage log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := restab.Resources(flagResPath, flagResValues)
		if err != nil {
			return err
		}
		opts := chartOptions("iteration", "resource")
		opts.Start, opts.End = flagResStart, flagResEnd
		out := filepath.Join(flagOut, "resource_usage.png")
		if err := reschart.LineChart(out, series, opts); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	resourcesCmd.Flags().StringVarP(&flagResPath, "path", "p", "", "path to the resource_usage.txt file")
	resourcesCmd.Flags().IntVarP(&flagResStart, "start", "s", 0, "first sample index to plot")
	resourcesCmd.Flags().IntVarP(&flagResEnd, "end", "e", 0, "sample index to plot up to (0 = end)")
	resourcesCmd.Flags().StringVarP(&flagResValues, "values", "v", "", "comma-separated resource names to plot (empty = all)")
	resourcesCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(resourcesCmd)
}
