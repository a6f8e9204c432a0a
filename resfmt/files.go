// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resfmt reads the benchmark result files written by the
// performance test campaigns: boot-time and startup-time text logs,
// fio and iperf3 JSON reports, /proc/stat-shaped CPU accounting logs,
// and per-iteration resource usage logs.
//
// Each format gets its own parse function that consumes a single file
// and produces numbers in the unit fixed for that benchmark kind
// (milliseconds, microseconds, MiB/s, percent). Unit conversion
// happens here, at parse time, so the aggregation and rendering layers
// only ever see comparable values.
package resfmt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// A ResultSet is one directory of benchmark artifacts from a single
// test campaign. The directory name doubles as the run name in charts
// and carries the benchmark-kind tag ("boottime", "fio", "iperf").
type ResultSet struct {
	// Name is the directory name, used as the run label.
	Name string

	// Dir is the full path of the directory.
	Dir string

	// Files are the member file names, sorted by name.
	Files []string
}

// FindResultSets enumerates the immediate subdirectories of root whose
// name contains tag, in name order. Entries that do not match are
// skipped silently; a results root routinely mixes campaigns of
// several benchmark kinds.
func FindResultSets(root, tag string) ([]ResultSet, error) {
	ents, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "discovering result sets under %s", root)
	}
	var sets []ResultSet
	for _, ent := range ents {
		if !ent.IsDir() || !strings.Contains(ent.Name(), tag) {
			continue
		}
		set := ResultSet{Name: ent.Name(), Dir: filepath.Join(root, ent.Name())}
		files, err := os.ReadDir(set.Dir)
		if err != nil {
			return nil, errors.Wrapf(err, "listing result set %s", set.Name)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			set.Files = append(set.Files, f.Name())
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Filtered returns the member file names containing tag, preserving
// order. An empty tag returns all files. The same substring match used
// to pick directories disambiguates artifact kinds within a set when a
// campaign writes mixed outputs into one directory.
func (s *ResultSet) Filtered(tag string) []string {
	if tag == "" {
		return s.Files
	}
	var names []string
	for _, name := range s.Files {
		if strings.Contains(name, tag) {
			names = append(names, name)
		}
	}
	return names
}

// Path returns the full path of the named member file.
func (s *ResultSet) Path(name string) string {
	return filepath.Join(s.Dir, name)
}
