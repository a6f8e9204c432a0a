// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Resplot aggregates and plots the benchmark artifacts written by the
// performance test campaigns.
//
// Usage:
//
//	resplot [--results DIR] [--out DIR] <kind> [flags]
//
// One subcommand per benchmark kind: boottime, startup, fio, and iperf
// discover result-set directories under the results root, aggregate
// repeated measurements per run, and render grouped bar charts with
// error whiskers; cpu and resources read a single log file and render
// its series as a line chart over the sample index.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetPrefix("resplot: ")
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
