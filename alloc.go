// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"unsafe"

	"github.com/valerio-afk/gc/internal/core"
	"github.com/valerio-afk/gc/internal/platform"
)

// Alloc returns size bytes of tracked memory, or nil if the platform
// refuses either the payload or its record; a failed record never
// leaves a half-registered payload behind. When zero is set the
// payload is zero-filled.
//
// Every threshold-th allocation triggers a collection before Alloc
// returns. The fresh allocation is subject to it like any other: it
// survives only if its base is visible in an enabled root region
// (with stack scanning on, Alloc's own frame qualifies).
func (c *Collector) Alloc(size int, zero bool) unsafe.Pointer {
	s := c.s
	if size <= 0 {
		return nil
	}
	p, err := platform.Alloc(size)
	if err != nil {
		return nil
	}
	ra, err := platform.Alloc(int(recordSize))
	if err != nil {
		platform.Free(p, size)
		return nil
	}
	r := recordAt(uintptr(ra))
	r.tag = recordTag
	r.base = p
	r.size = uintptr(size)
	r.reachable = false
	s.push(r)
	s.allocs++
	tracef("gc: alloc %d bytes at %#x (record %#x)", size, uintptr(p), r.addr())

	if zero {
		clear(unsafe.Slice((*byte)(unsafe.Pointer(uintptr(p))), size))
	}
	if s.threshold != 0 && s.allocs%s.threshold == 0 {
		c.Collect()
	}
	return unsafe.Pointer(uintptr(p))
}

// Realloc resizes the tracked allocation at p to size bytes,
// relocating it if necessary, and returns the (possibly new) base.
// Realloc(nil, size) is Alloc(size, false); Realloc(p, 0) is Free(p)
// and returns nil. A pointer the collector does not track yields nil
// and leaves the registry unchanged, as does a platform failure —
// in that case the old allocation is still intact and registered.
func (c *Collector) Realloc(p unsafe.Pointer, size int) unsafe.Pointer {
	s := c.s
	if p == nil {
		return c.Alloc(size, false)
	}
	if size == 0 {
		c.Free(p)
		return nil
	}
	r := s.lookup(core.Address(uintptr(p)))
	if r == nil {
		return nil
	}
	np, err := platform.Resize(r.base, int(r.size), size)
	if err != nil {
		return nil
	}
	tracef("gc: realloc %#x -> %#x (%d -> %d bytes)", uintptr(r.base), uintptr(np), r.size, size)
	r.base = np
	r.size = uintptr(size)
	return unsafe.Pointer(uintptr(np))
}

// Free releases the tracked allocation at p. A nil or untracked
// pointer is a silent no-op.
func (c *Collector) Free(p unsafe.Pointer) {
	s := c.s
	if p == nil {
		return
	}
	a := core.Address(uintptr(p))
	s.forEach(func(r *record) {
		if r.base != a {
			return
		}
		tracef("gc: free %#x (%d bytes)", uintptr(r.base), r.size)
		s.unlink(r)
		platform.Free(r.base, int(r.size))
		platform.Free(core.Address(r.addr()), int(recordSize))
	})
}
