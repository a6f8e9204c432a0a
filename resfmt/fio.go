// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// A FioResult is the bandwidth figure of one fio trial, tagged with
// the job dimensions that identify its series.
type FioResult struct {
	// Device is the block device under test (job option "filename").
	Device string

	// Mode is the I/O pattern (job option "rw"):
	// read, write, randread, or randwrite.
	Mode string

	// BlockSize is the I/O block size (job option "bs").
	BlockSize string

	// Bandwidth is the measured throughput in MiB/s.
	Bandwidth float64
}

// The slice of the fio JSON report the pipeline consumes. fio reports
// bandwidth in KiB/s under the direction matching the job's rw mode.
type fioFile struct {
	Jobs []fioJob `json:"jobs"`
}

type fioJob struct {
	Options fioOptions  `json:"job options"`
	Read    fioDirStats `json:"read"`
	Write   fioDirStats `json:"write"`
}

type fioOptions struct {
	RW       string `json:"rw"`
	BS       string `json:"bs"`
	Filename string `json:"filename"`
}

type fioDirStats struct {
	BW float64 `json:"bw"`
}

// ParseFio reads one fio JSON report and returns the first job's
// bandwidth in MiB/s along with its identifying dimensions. The
// bandwidth is taken from the read stats when the rw mode names a read
// workload and from the write stats when it names a write workload;
// any other mode yields an *UnknownModeError. A document that does not
// decode yields a *SyntaxError so a single corrupt trial can be
// skipped without aborting the batch.
func ParseFio(r io.Reader, fileName string) (*FioResult, error) {
	var doc fioFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &SyntaxError{fileName, 0, fmt.Sprintf("malformed fio JSON: %v", err)}
	}
	if len(doc.Jobs) == 0 {
		return nil, &SyntaxError{fileName, 0, "fio report has no jobs"}
	}
	job := doc.Jobs[0]
	res := &FioResult{
		Device:    job.Options.Filename,
		Mode:      job.Options.RW,
		BlockSize: job.Options.BS,
	}
	switch {
	case strings.Contains(job.Options.RW, "read"):
		res.Bandwidth = job.Read.BW / 1024
	case strings.Contains(job.Options.RW, "write"):
		res.Bandwidth = job.Write.BW / 1024
	default:
		return nil, &UnknownModeError{FileName: fileName, Mode: job.Options.RW}
	}
	return res, nil
}
