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

var iperfCmd = &cobra.Command{
	Use:   "iperf",
	Short: "plot network throughput per result set and direction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := restab.Iperf(flagResults)
		if err != nil {
			return err
		}
		reportSkipped(t.Skipped)
		out := filepath.Join(flagOut, "iperf.png")
		if err := reschart.BarChart(out, t.Categories, barRows(t), chartOptions("", "mean/std: MBps")); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iperfCmd)
}
