// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resfmt

import (
	"encoding/json"
	"fmt"
	"io"
)

// A Direction classifies an iperf3 trial by who sends. The harness
// runs the server on the host, so a normal trial streams host to guest
// and a reverse trial streams guest to host.
type Direction int

const (
	HostToGuest Direction = iota
	GuestToHost
)

func (d Direction) String() string {
	switch d {
	case HostToGuest:
		return "h2g"
	case GuestToHost:
		return "g2h"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// An IperfResult is the per-interval throughput series of one iperf3
// trial. One trial contributes one sample per measurement interval,
// not one sample per file.
type IperfResult struct {
	Direction Direction

	// Samples are the per-interval throughputs in MiB/s, in
	// interval order.
	Samples []float64
}

type iperfFile struct {
	Start struct {
		TestStart struct {
			Reverse int `json:"reverse"`
		} `json:"test_start"`
	} `json:"start"`
	Intervals []struct {
		Sum struct {
			BitsPerSecond float64 `json:"bits_per_second"`
		} `json:"sum"`
	} `json:"intervals"`
}

// ParseIperf reads one iperf3 JSON report. The trial direction comes
// from start.test_start.reverse (0 means host to guest); every
// element of intervals contributes sum.bits_per_second converted to
// MiB/s.
func ParseIperf(r io.Reader, fileName string) (*IperfResult, error) {
	var doc iperfFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &SyntaxError{fileName, 0, fmt.Sprintf("malformed iperf JSON: %v", err)}
	}
	res := &IperfResult{Direction: HostToGuest}
	if doc.Start.TestStart.Reverse != 0 {
		res.Direction = GuestToHost
	}
	for _, iv := range doc.Intervals {
		res.Samples = append(res.Samples, iv.Sum.BitsPerSecond/8/1024/1024)
	}
	return res, nil
}
