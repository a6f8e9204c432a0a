// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import "fmt"

// A SyntaxError represents a syntax error on a particular line of a
// benchmark results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// An UnknownModeError reports an fio job whose rw mode names neither a
// read nor a write workload. The file carries a bandwidth figure the
// pipeline cannot attribute, so the caller should skip it.
type UnknownModeError struct {
	FileName string
	Mode     string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("%s: unknown fio mode %q", e.FileName, e.Mode)
}
