// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix && !linux

package platform

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/valerio-afk/gc/internal/core"
)

// These platforms use the unix.Mmap slice wrappers. The wrappers
// keep a Go-heap registry of live mappings, which heap scanning
// would treat as roots — tolerable here because none of these
// platforms has a heap-region enumerator, so ScanHeaps is already a
// no-op on them.

// Alloc obtains n bytes of zeroed memory from the platform, outside
// any runtime-managed heap.
func Alloc(n int) (core.Address, error) {
	b, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}
	return core.Address(uintptr(unsafe.Pointer(&b[0]))), nil
}

// Free returns an allocation of n bytes at a to the platform.
// Munmap identifies the mapping by the slice it handed out;
// rebuilding one with the same base and length resolves to the same
// registry entry.
func Free(a core.Address, n int) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(a))), n)
	return unix.Munmap(b)
}
