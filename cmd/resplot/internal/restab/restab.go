// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package restab assembles benchmark result files into the tables and
// series the charts are drawn from: discovery, parsing, grouping, and
// aggregation for one benchmark kind per entry point.
//
// Per-file parse failures are not fatal. Every entry point logs the
// failing file, counts it, and carries on, so one corrupt trial never
// costs a whole campaign; the caller reports the skip count after
// aggregation. Discovery failures and groups that end up empty are
// fatal.
package restab

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ShadowCurse/radiance-perf/resmath"
)

// A Table is the input of one grouped bar chart: categories on the x
// axis and one row of per-category aggregates per legend entry.
type Table struct {
	Categories []string
	Rows       []Row

	// Skipped counts result files dropped due to per-file parse
	// failures.
	Skipped int
}

// A Row is one legend entry: a display label and one aggregate per
// category, in category order. Quantiles is non-nil only for benchmark
// kinds that report tail statistics (startup times).
type Row struct {
	Name      string
	Stats     []resmath.Summary
	Quantiles []resmath.Quantiles
}

// parseFile opens path and applies a resfmt parse function to it.
func parseFile[T any](path string, parse func(io.Reader, string) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return parse(f, path)
}
