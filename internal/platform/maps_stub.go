// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package platform

import "github.com/valerio-afk/gc/internal/core"

// HeapRegions has no portable implementation here (Mach requires the
// vm_region_recurse interface, which pure Go cannot reach); the heap
// root set is empty on these platforms.
func HeapRegions() ([]core.Region, error) {
	return nil, nil
}

// StackBase is unknown on these platforms; the stack root must come
// from the host instead.
func StackBase() core.Address {
	return 0
}
