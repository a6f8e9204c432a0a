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
	flagCPUPath  string
	flagCPUStart int
	flagCPUEnd   int
)

var cpuCmd = &cobra.Command{
	Use:   "cpu",
	Short: "plot per-core CPU utilization from a counter log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := restab.CPU(flagCPUPath)
		if err != nil {
			return err
		}
		opts := chartOptions("seconds", "cpu util %")
		opts.Start, opts.End = flagCPUStart, flagCPUEnd
		out := filepath.Join(flagOut, "cpu_usage.png")
		if err := reschart.LineChart(out, series, opts); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	cpuCmd.Flags().StringVarP(&flagCPUPath, "path", "p", "", "path to the cpu_usage.txt file")
	cpuCmd.Flags().IntVarP(&flagCPUStart, "start", "s", 0, "first sample index to plot")
	cpuCmd.Flags().IntVarP(&flagCPUEnd, "end", "e", 0, "sample index to plot up to (0 = end)")
	cpuCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(cpuCmd)
}
