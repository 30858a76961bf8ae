// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/valerio-afk/gc/internal/core"
)

// The raw syscalls are deliberate: unix.Mmap and friends register
// every live mapping in a Go-heap table of slice headers, and under
// heap scanning those headers would conservatively retain every
// payload forever. Raw calls keep the collector's addresses out of
// runtime-visible memory.

// Alloc obtains n bytes of zeroed memory from the platform, outside
// any runtime-managed heap. The mapping is anonymous and private, so
// nothing but the collector's own bookkeeping keeps track of it.
func Alloc(n int) (core.Address, error) {
	p, _, errno := unix.Syscall6(mmapTrap,
		0, uintptr(n),
		uintptr(unix.PROT_READ|unix.PROT_WRITE),
		uintptr(unix.MAP_PRIVATE|unix.MAP_ANON),
		^uintptr(0), // fd -1
		0)
	if errno != 0 {
		return 0, errno
	}
	return core.Address(p), nil
}

// Free returns an allocation of n bytes at a to the platform.
func Free(a core.Address, n int) error {
	_, _, errno := unix.Syscall(unix.SYS_MUNMAP, uintptr(a), uintptr(n), 0)
	if errno != 0 {
		return errno
	}
	return nil
}
