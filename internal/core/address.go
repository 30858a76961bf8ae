// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The core library provides the vocabulary for talking about the
// current process's address space: addresses, half-open regions, and
// raw word reads. There's nothing collector-specific about it; the
// platform probes and the mark engine both build on it.
package core

import "unsafe"

// An Address is a location in the current process's virtual address space.
type Address uintptr

// PtrSize is the size in bytes of a pointer in this process.
const PtrSize = unsafe.Sizeof(uintptr(0))

// Add adds x to address a.
func (a Address) Add(x int64) Address {
	return a + Address(x)
}

// Sub subtracts b from a. Requires a >= b.
func (a Address) Sub(b Address) int64 {
	return int64(a - b)
}

// Align rounds a up to a multiple of x.
// x must be a power of 2.
func (a Address) Align(x int64) Address {
	return (a + Address(x) - 1) & ^(Address(x) - 1)
}

// Min returns the minimum of a and b.
func (a Address) Min(b Address) Address {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func (a Address) Max(b Address) Address {
	if a > b {
		return a
	}
	return b
}

// ReadWord reads the pointer-sized word at a. The caller is
// responsible for a being mapped and aligned.
func ReadWord(a Address) uintptr {
	return *(*uintptr)(unsafe.Pointer(uintptr(a)))
}
