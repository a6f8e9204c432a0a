// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resproc groups benchmark samples and computes per-group
// aggregates.
//
// A group key is the tuple of dimensions identifying one comparable
// series of samples: minimally the run name, extended with the device
// for partitioned boot-time sets, with device, mode, and block size
// for fio, and with the transfer direction for iperf. The key types
// are fixed structs rather than open-ended maps so that an unexpected
// dimension value is caught when the key is built, not when a chart
// comes out wrong.
package resproc

import "strings"

// A RunKey identifies samples by run name alone.
type RunKey struct {
	Run string
}

func (k RunKey) String() string { return k.Run }

// A DevKey identifies samples by run name and device kind. It is the
// key for boot-time sets that mix device-backed and pmem-backed
// trials; Device is empty when the set is not partitioned.
type DevKey struct {
	Run    string
	Device string
}

func (k DevKey) String() string {
	return joinKey(k.Run, k.Device)
}

// A DiskKey identifies one fio series: run name, block device, I/O
// mode, and block size.
type DiskKey struct {
	Run       string
	Device    string
	Mode      string
	BlockSize string
}

func (k DiskKey) String() string {
	return joinKey(k.Run, k.Device, k.Mode, k.BlockSize)
}

// Trial returns the key without its mode dimension. fio charts use one
// bar row per trial configuration with one bar per mode, so rows are
// grouped by this reduced key.
func (k DiskKey) Trial() DiskKey {
	k.Mode = ""
	return k
}

// A NetKey identifies one iperf series: run name and direction.
type NetKey struct {
	Run       string
	Direction string
}

func (k NetKey) String() string {
	return joinKey(k.Run, k.Direction)
}

// joinKey renders non-empty key dimensions space-separated, the same
// way group labels appear in chart legends.
func joinKey(parts ...string) string {
	buf := new(strings.Builder)
	for _, p := range parts {
		if p == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(p)
	}
	return buf.String()
}
