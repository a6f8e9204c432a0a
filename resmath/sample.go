// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resmath computes statistics over repeated benchmark
// measurements.
//
// The summary statistics match what the measurement harness has always
// reported: the arithmetic mean, the population standard deviation
// (denominator N, not N-1), and quantiles by linear interpolation
// between order statistics.
package resmath

import (
	"errors"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// ErrNoSamples is returned when a statistic is requested over an empty
// sample. Statistics over nothing are undefined and must not leak out
// as NaN.
var ErrNoSamples = errors.New("no samples")

// A Sample is a set of repeated measurements of a given benchmark.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements.
// It sorts values in place.
func NewSample(values []float64) *Sample {
	// Sort values for fast order statistics.
	sort.Float64s(values)
	return &Sample{values}
}

// A Summary holds the per-group statistics handed to the renderer.
type Summary struct {
	// Mean is the arithmetic mean of the sample.
	Mean float64

	// Std is the population standard deviation of the sample.
	Std float64

	// N is the sample size.
	N int

	// Min and Max are the sample bounds.
	Min, Max float64
}

// Summary computes the summary statistics of s.
// It returns ErrNoSamples for an empty sample.
func (s *Sample) Summary() (Summary, error) {
	if len(s.Values) == 0 {
		return Summary{}, ErrNoSamples
	}
	mean := stats.Mean(s.Values)
	var sq float64
	for _, v := range s.Values {
		d := v - mean
		sq += d * d
	}
	min, max := stats.Bounds(s.Values)
	return Summary{
		Mean: mean,
		Std:  math.Sqrt(sq / float64(len(s.Values))),
		N:    len(s.Values),
		Min:  min,
		Max:  max,
	}, nil
}

// Quantile returns the q'th quantile of s, 0 <= q <= 1, by linear
// interpolation between adjacent order statistics.
func (s *Sample) Quantile(q float64) (float64, error) {
	xs := s.Values
	if len(xs) == 0 {
		return 0, ErrNoSamples
	}
	h := float64(len(xs)-1) * q
	lo := int(math.Floor(h))
	if lo >= len(xs)-1 {
		return xs[len(xs)-1], nil
	}
	if lo < 0 {
		return xs[0], nil
	}
	return xs[lo] + (h-float64(lo))*(xs[lo+1]-xs[lo]), nil
}

// Quantiles are the tail statistics reported for sample lists where
// the distribution shape matters (startup times).
type Quantiles struct {
	P50, P90, P99 float64
}

// Quantiles computes the p50/p90/p99 quantiles of s.
func (s *Sample) Quantiles() (Quantiles, error) {
	if len(s.Values) == 0 {
		return Quantiles{}, ErrNoSamples
	}
	p50, _ := s.Quantile(0.50)
	p90, _ := s.Quantile(0.90)
	p99, _ := s.Quantile(0.99)
	return Quantiles{P50: p50, P90: p90, P99: p99}, nil
}
