// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/valerio-afk/gc/internal/core"
)

// Resize grows or shrinks the allocation at a from oldn to newn
// bytes, relocating it if the kernel cannot extend it in place. On
// failure the original allocation is left intact. Raw for the same
// reason as Alloc: the wrapper would register the mapping on the
// runtime heap.
func Resize(a core.Address, oldn, newn int) (core.Address, error) {
	p, _, errno := unix.Syscall6(unix.SYS_MREMAP,
		uintptr(a), uintptr(oldn), uintptr(newn),
		unix.MREMAP_MAYMOVE,
		0, 0)
	if errno != 0 {
		return 0, errno
	}
	return core.Address(p), nil
}
