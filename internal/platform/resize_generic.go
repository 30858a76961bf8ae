// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (unix && !linux) || windows

package platform

import (
	"unsafe"

	"github.com/valerio-afk/gc/internal/core"
)

// Resize reallocates by map-copy-unmap on platforms without a remap
// primitive. On failure the original allocation is left intact.
func Resize(a core.Address, oldn, newn int) (core.Address, error) {
	b, err := Alloc(newn)
	if err != nil {
		return 0, err
	}
	n := oldn
	if newn < n {
		n = newn
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(uintptr(b))), n),
		unsafe.Slice((*byte)(unsafe.Pointer(uintptr(a))), n))
	// The copy is already live at b; failing to unmap the stale
	// pages leaks them but keeps the registry consistent.
	_ = Free(a, oldn)
	return b, nil
}
