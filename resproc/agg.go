// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resproc

import (
	"fmt"

	"github.com/ShadowCurse/radiance-perf/resmath"
)

// A Key is a group key: a comparable tuple of dimensions with a label
// rendering.
type Key interface {
	comparable
	fmt.Stringer
}

// An EmptyGroupError reports a group that was registered but never
// received a sample, for example a benchmark mode that never ran.
// Statistics over the group would be undefined, so finalization fails
// instead of handing the renderer a NaN bar.
type EmptyGroupError struct {
	Group string
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("group %q has no samples", e.Group)
}

// An Aggregator accumulates samples per group key and produces one
// immutable aggregate per group. Keys keep insertion order, so chart
// rows come out in discovery order no matter how the samples arrived.
//
// The zero Aggregator is not ready to use; call NewAggregator.
type Aggregator[K Key] struct {
	keys    []K
	samples map[K][]float64
}

// NewAggregator returns an empty Aggregator for keys of type K.
func NewAggregator[K Key]() *Aggregator[K] {
	return &Aggregator[K]{samples: make(map[K][]float64)}
}

// Add appends samples vs to the group identified by k, registering the
// group if this is its first appearance.
func (a *Aggregator[K]) Add(k K, vs ...float64) {
	a.register(k)
	a.samples[k] = append(a.samples[k], vs...)
}

// Register adds k as a group without contributing samples. Callers
// with a fixed category set (the four fio modes, the two iperf
// directions) register every category up front so a category that
// never ran surfaces as an *EmptyGroupError instead of silently
// missing from the chart.
func (a *Aggregator[K]) Register(k K) {
	a.register(k)
}

func (a *Aggregator[K]) register(k K) {
	if _, ok := a.samples[k]; !ok {
		a.keys = append(a.keys, k)
		a.samples[k] = nil
	}
}

// Keys returns the group keys in insertion order.
func (a *Aggregator[K]) Keys() []K {
	return a.keys
}

// Len returns the number of registered groups.
func (a *Aggregator[K]) Len() int {
	return len(a.keys)
}

// A Group is one finalized group: its key, its samples in ascending
// order, and their summary statistics.
type Group[K Key] struct {
	Key    K
	Sample *resmath.Sample
	Stat   resmath.Summary
}

// Finalize computes the aggregate of every registered group, in key
// insertion order. It fails with an *EmptyGroupError naming the first
// group that has no samples. Sample slices are sorted in place; the
// Aggregator should not be added to afterward.
func (a *Aggregator[K]) Finalize() ([]Group[K], error) {
	groups := make([]Group[K], 0, len(a.keys))
	for _, k := range a.keys {
		s := resmath.NewSample(a.samples[k])
		stat, err := s.Summary()
		if err != nil {
			return nil, &EmptyGroupError{Group: k.String()}
		}
		groups = append(groups, Group[K]{Key: k, Sample: s, Stat: stat})
	}
	return groups, nil
}
