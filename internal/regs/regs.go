// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regs captures the general-purpose registers of the calling
// thread into a process-global buffer.
//
// The buffer is a static symbol so the assembly can address it with
// memory operands (x86) or through a single staging register (ARM)
// without dirtying any of the values being captured. Because the
// buffer is global, two threads must not snapshot concurrently; the
// collector is single-threaded by design.
package regs

import "unsafe"

// bufWords is sized for the largest layout (arm64's 31 slots).
const bufWords = 32

// buf receives the snapshot. Assembly writes it in the per-arch
// order listed in Names.
var buf [bufWords]uintptr

// A Register is one captured register value.
type Register struct {
	Name  string
	Value uintptr
}

// Words returns the captured register words. The slice aliases the
// global buffer; the next Save overwrites it.
func Words() []uintptr {
	return buf[:numRegs]
}

// Registers returns the snapshot as name/value pairs, for diagnostics.
func Registers() []Register {
	rs := make([]Register, numRegs)
	for i := range rs {
		rs[i] = Register{Name: names[i], Value: buf[i]}
	}
	return rs
}

// SP returns the captured stack pointer, adjusted to the caller of
// Save. It is the low bound of the stack scan. Zero means no
// snapshot support on this architecture.
func SP() uintptr {
	i := spIndex
	if i < 0 {
		return 0
	}
	return buf[i]
}

// Buffer returns the snapshot buffer's own address range, so the
// buffer can be walked like any other root region.
func Buffer() (lo, hi uintptr) {
	lo = uintptr(unsafe.Pointer(&buf[0]))
	return lo, lo + uintptr(numRegs)*unsafe.Sizeof(uintptr(0))
}

// Supported reports whether this architecture has a snapshot
// implementation.
func Supported() bool {
	return numRegs > 0
}
