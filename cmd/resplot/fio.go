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

var fioCmd = &cobra.Command{
	Use:   "fio",
	Short: "plot block-device bandwidth per result set and I/O mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := restab.Fio(flagResults)
		if err != nil {
			return err
		}
		reportSkipped(t.Skipped)
		opts := chartOptions("", "mean/std: MBps")
		// Four categories share the axis; let the bar groups use
		// most of each slot.
		opts.GroupWidth = 0.75
		out := filepath.Join(flagOut, "fio.png")
		if err := reschart.BarChart(out, t.Categories, barRows(t), opts); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fioCmd)
}
