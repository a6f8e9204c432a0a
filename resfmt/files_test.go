// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFindResultSets(t *testing.T) {
	root := t.TempDir()
	mkdir := func(name string, files ...string) {
		t.Helper()
		dir := filepath.Join(root, name)
		if err := os.Mkdir(dir, 0777); err != nil {
			t.Fatal(err)
		}
		for _, f := range files {
			if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0666); err != nil {
				t.Fatal(err)
			}
		}
	}
	mkdir("v1.2_boottime", "boottime_0.txt", "startup_time_0.txt")
	mkdir("v1.3_boottime", "boottime_0.txt")
	mkdir("v1.2_fio", "fio_read.json")
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0666); err != nil {
		t.Fatal(err)
	}

	sets, err := FindResultSets(root, "boottime")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range sets {
		names = append(names, s.Name)
	}
	// Non-matching directories and plain files are skipped
	// silently; matches come back in name order.
	if want := []string{"v1.2_boottime", "v1.3_boottime"}; !reflect.DeepEqual(names, want) {
		t.Errorf("sets = %v, want %v", names, want)
	}

	if got, want := sets[0].Filtered("startup_time"), []string{"startup_time_0.txt"}; !reflect.DeepEqual(got, want) {
		t.Errorf("filtered = %v, want %v", got, want)
	}
	if got := sets[0].Filtered(""); !reflect.DeepEqual(got, sets[0].Files) {
		t.Errorf("empty filter = %v, want all files %v", got, sets[0].Files)
	}
	if got, want := sets[0].Path("boottime_0.txt"), filepath.Join(root, "v1.2_boottime", "boottime_0.txt"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestFindResultSetsMissingRoot(t *testing.T) {
	_, err := FindResultSets(filepath.Join(t.TempDir(), "nope"), "boottime")
	if err == nil {
		t.Fatal("got success, want error for missing root")
	}
}
