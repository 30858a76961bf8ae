// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"github.com/valerio-afk/gc/internal/core"
	"github.com/valerio-afk/gc/internal/platform"
	"github.com/valerio-afk/gc/internal/regs"
)

// maxStackSpan bounds the stack scan. The captured stack pointer and
// the stack base must belong to the same stack; when the base came
// from the wrong thread's metadata (or a stale anchor) the distance
// between the two is absurd, and scanning across would walk unmapped
// space. No real thread stack here is larger than this.
const maxStackSpan = 64 << 20

// Collect runs a full mark-and-sweep cycle and returns the number of
// allocations reclaimed.
//
// The register snapshot is taken first, before any of the collection
// machinery runs: entering further calls would spill and reuse the
// very registers being captured, and a payload address living only
// in a callee-saved register at this call site has no other way into
// the root set.
func (c *Collector) Collect() int {
	regs.Save()
	return c.collect()
}

// collect assembles the root set in a fixed order, marks, then
// sweeps. Every enabled root region is scanned before the sweep
// begins.
func (c *Collector) collect() int {
	s := c.s

	s.forEach(func(r *record) {
		r.reachable = false
		r.foundAt = 0
	})

	if s.flags&ScanRegisters != 0 && regs.Supported() {
		lo, hi := regs.Buffer()
		s.mark(core.Address(lo), core.Address(hi), false)
	}
	if s.flags&ScanStack != 0 {
		top := core.Address(regs.SP())
		if top != 0 && s.stackBase > top && s.stackBase.Sub(top) <= maxStackSpan {
			s.mark(top, s.stackBase, false)
		}
	}
	if s.flags&ScanData != 0 && !s.data.Empty() {
		s.markGlobal(s.data)
	}
	if s.flags&ScanBSS != 0 && !s.bss.Empty() {
		s.markGlobal(s.bss)
	}
	if s.flags&ScanHeaps != 0 {
		if regions, err := platform.HeapRegions(); err == nil {
			for _, r := range regions {
				s.mark(r.Min, r.Max, true)
			}
		}
	}

	freed := s.sweep()
	s.collections++
	s.freed += uint64(freed)
	tracef("gc: cycle %d reclaimed %d allocations", s.collections, freed)
	return freed
}

// markGlobal scans a static-data region, stepping around the
// register-snapshot buffer if it lies inside. The buffer is
// collector state, not host data: scanning it as a global would
// resurrect whatever addresses the previous snapshot happened to
// hold. It participates in the root set only as the explicit
// register root.
func (s *state) markGlobal(r core.Region) {
	bufLo, bufHi := regs.Buffer()
	if r.Contains(core.Address(bufLo)) && core.Address(bufHi) <= r.Max {
		s.mark(r.Min, core.Address(bufLo), false)
		s.mark(core.Address(bufHi), r.Max, false)
		return
	}
	s.mark(r.Min, r.Max, false)
}

// sweep frees every record the mark phase did not reach. Reached
// records keep their flag as-is; the next cycle resets it before
// scanning (its value is meaningless between cycles).
func (s *state) sweep() int {
	n := 0
	e := s.head
	for e != 0 {
		r := recordAt(e)
		e = r.next
		if r.reachable {
			continue
		}
		tracef("gc: sweep %#x (%d bytes)", uintptr(r.base), r.size)
		s.unlink(r)
		platform.Free(r.base, int(r.size))
		platform.Free(core.Address(r.addr()), int(recordSize))
		n++
	}
	return n
}
