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

var startupCmd = &cobra.Command{
	Use:   "startup",
	Short: "plot mean process startup time per result set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := restab.Startup(flagResults)
		if err != nil {
			return err
		}
		reportSkipped(t.Skipped)
		for _, r := range t.Rows {
			s, q := r.Stats[0], r.Quantiles[0]
			fmt.Printf("%s: n=%d p50=%.0fus p90=%.0fus p99=%.0fus\n",
				r.Name, s.N, q.P50, q.P90, q.P99)
		}
		out := filepath.Join(flagOut, "startup_time.png")
		if err := reschart.BarChart(out, t.Categories, barRows(t), chartOptions("", "mean/std us")); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startupCmd)
}
