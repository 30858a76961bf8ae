// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package platform

import (
	"golang.org/x/sys/windows"

	"github.com/valerio-afk/gc/internal/core"
)

// Alloc obtains n bytes of zeroed, committed private memory.
func Alloc(n int) (core.Address, error) {
	p, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return 0, err
	}
	return core.Address(p), nil
}

// Free releases the allocation at a. VirtualFree releases the whole
// reservation, so n is not consulted.
func Free(a core.Address, n int) error {
	_ = n
	return windows.VirtualFree(uintptr(a), 0, windows.MEM_RELEASE)
}
