// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/valerio-afk/gc/internal/regs"
)

// Stats is a point-in-time summary of a Collector.
type Stats struct {
	Live        int    // tracked allocations
	LiveBytes   int64  // sum of their requested sizes
	Allocs      uint64 // allocations ever made
	Collections uint64 // cycles run
	Freed       uint64 // allocations reclaimed by cycles
	Threshold   uint64
	Flags       Flag
}

// Stats walks the registry and returns current counts.
func (c *Collector) Stats() Stats {
	s := c.s
	st := Stats{
		Allocs:      s.allocs,
		Collections: s.collections,
		Freed:       s.freed,
		Threshold:   s.threshold,
		Flags:       s.flags,
	}
	s.forEach(func(r *record) {
		st.Live++
		st.LiveBytes += int64(r.size)
	})
	return st
}

// A Record describes one tracked allocation.
type Record struct {
	Base uintptr
	Size int
	// FoundAt is where the most recent scan discovered the base, or 0
	// if the record has not been reached since. Meaningful only
	// between a collection and the next mutation.
	FoundAt uintptr
}

// ForEachRecord calls fn for each tracked allocation, newest first.
// If fn returns false, ForEachRecord returns immediately. fn must
// not allocate through or otherwise mutate the Collector.
func (c *Collector) ForEachRecord(fn func(Record) bool) {
	for e := c.s.head; e != 0; e = recordAt(e).next {
		r := recordAt(e)
		if !fn(Record{Base: uintptr(r.base), Size: int(r.size), FoundAt: uintptr(r.foundAt)}) {
			return
		}
	}
}

// DumpTo writes a human-readable description of the collector state:
// the configured roots, the counters, and one line per tracked
// allocation.
func (c *Collector) DumpTo(w io.Writer) {
	s := c.s
	t := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(t, "flags\t%#x\n", uint32(s.flags))
	fmt.Fprintf(t, "threshold\t%d\n", s.threshold)
	fmt.Fprintf(t, "stack base\t%#x\n", uintptr(s.stackBase))
	fmt.Fprintf(t, "data\t%s\n", s.data)
	fmt.Fprintf(t, "bss\t%s\n", s.bss)
	fmt.Fprintf(t, "allocs\t%d\n", s.allocs)
	fmt.Fprintf(t, "collections\t%d\n", s.collections)
	fmt.Fprintf(t, "freed\t%d\n", s.freed)
	t.Flush()

	t = tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(t, "base\tsize\tseen at\t\n")
	c.ForEachRecord(func(r Record) bool {
		fmt.Fprintf(t, "%x\t%d\t%x\t\n", r.Base, r.Size, r.FoundAt)
		return true
	})
	t.Flush()
}

// DumpRegisters writes the most recent register snapshot. The
// snapshot is refreshed by every collection; between them it holds
// the previous cycle's values.
func (c *Collector) DumpRegisters(w io.Writer) {
	t := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	for _, r := range regs.Registers() {
		fmt.Fprintf(t, "%s\t%x\t\n", r.Name, r.Value)
	}
	t.Flush()
}

func (c *Collector) String() string {
	st := c.Stats()
	return fmt.Sprintf("gc: %d live (%d bytes), %d allocs, %d collections, %d freed",
		st.Live, st.LiveBytes, st.Allocs, st.Collections, st.Freed)
}
