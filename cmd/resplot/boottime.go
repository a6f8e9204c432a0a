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

var flagDevices []string

var boottimeCmd = &cobra.Command{
	Use:   "boottime",
	Short: "plot mean boot time per result set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := restab.Boottime(flagResults, flagDevices)
		if err != nil {
			return err
		}
		reportSkipped(t.Skipped)
		out := filepath.Join(flagOut, "boottime.png")
		if err := reschart.BarChart(out, t.Categories, barRows(t), chartOptions("", "mean time/std: ms")); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	boottimeCmd.Flags().StringSliceVar(&flagDevices, "devices", nil,
		"partition each set by device-kind file name substrings (e.g. drive,pmem)")
	rootCmd.AddCommand(boottimeCmd)
}
