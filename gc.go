// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gc is a conservative, stop-the-world, mark-and-sweep
// collector for memory obtained outside the Go runtime.
//
// Hosts allocate through the collector instead of the platform
// allocator; every allocation is tracked in the collector's own
// registry. A collection scans the process's memory — CPU registers,
// the calling thread's stack, the executable's static data, and
// optionally the writable private heap-like regions — for bit patterns that
// equal the base address of a tracked allocation, marks what it
// finds transitively, and frees the rest.
//
// The scan is conservative: any word that happens to equal a tracked
// base retains that allocation, type information is never consulted,
// and interior pointers are not recognised. Payloads, records, and
// the collector state all live in anonymous private mappings; the Go
// garbage collector neither sees nor moves them.
//
// The collector is single-threaded. Collection runs synchronously on
// the thread that asked for it, and the register-snapshot buffer is
// process-global; hosts with more than one mutator need an external
// barrier.
package gc

import (
	"fmt"
	"unsafe"

	"github.com/valerio-afk/gc/internal/core"
	"github.com/valerio-afk/gc/internal/platform"
)

// DefaultThreshold is the allocation-count period of automatic
// collections. Every DefaultThreshold-th allocation triggers one.
const DefaultThreshold = 128

// state is the collector's root structure. Like the records it
// heads, it lives in a raw platform allocation with its tag in the
// leading bytes, so a heap-region scan steps over it.
type state struct {
	tag       [tagLen]byte
	stackBase core.Address // high end of the owning thread's stack, 0 if unknown
	data      core.Region  // initialised static data
	bss       core.Region  // zero-initialised static data
	head      uintptr      // most recently allocated record
	allocs    uint64       // allocations ever made
	threshold uint64       // collect every threshold-th allocation; 0 disables
	flags     Flag

	collections uint64 // cycles run
	freed       uint64 // records swept over all cycles
}

// A Collector owns a registry of tracked allocations and the policy
// for scanning roots. Create one with New; every method must be
// called from the goroutine that created it.
type Collector struct {
	s *state
}

// An Option adjusts a Collector at creation.
type Option func(*state)

// WithThreshold sets the automatic-collection period. Zero disables
// automatic collection entirely.
func WithThreshold(n uint64) Option {
	return func(s *state) { s.threshold = n }
}

// WithStackRoot sets the high bound of the stack scan to addr,
// overriding the platform probe. Goroutine stacks are invisible to
// thread metadata, so a goroutine-resident host passes the address
// of a variable in its outermost frame, the way conservative
// collectors have always taken &argc:
//
//	var anchor uintptr
//	c, err := gc.New(gc.ScanStack, gc.WithStackRoot(uintptr(unsafe.Pointer(&anchor))))
//
// The parameter is a uintptr on purpose: an unsafe.Pointer argument
// would make the anchor escape to the runtime heap, and the whole
// point is that it stays in the host's frame. That frame must
// outlive the Collector, and the goroutine's stack must not grow
// past it between collections.
func WithStackRoot(addr uintptr) Option {
	return func(s *state) { s.stackBase = core.Address(addr) }
}

// New creates a Collector that scans the root regions selected by
// flags. The stack base and the static-section ranges are captured
// once, here; probes that cannot answer leave the corresponding root
// empty and collection proceeds on the rest.
func New(flags Flag, opts ...Option) (*Collector, error) {
	a, err := platform.Alloc(int(stateSize))
	if err != nil {
		return nil, fmt.Errorf("gc: allocating collector state: %w", err)
	}
	s := (*state)(unsafe.Pointer(uintptr(a)))
	s.tag = stateTag
	s.flags = flags
	s.threshold = DefaultThreshold
	s.stackBase = platform.StackBase()
	s.data, s.bss, _ = platform.Sections()
	for _, opt := range opts {
		opt(s)
	}
	return &Collector{s: s}, nil
}

// Close frees every remaining tracked payload, the registry, and the
// collector state. The Collector must not be used afterwards.
func (c *Collector) Close() error {
	s := c.s
	if s == nil {
		return nil
	}
	c.s = nil
	var firstErr error
	e := s.head
	for e != 0 {
		r := recordAt(e)
		e = r.next
		if err := platform.Free(r.base, int(r.size)); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := platform.Free(core.Address(r.addr()), int(recordSize)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := platform.Free(core.Address(uintptr(unsafe.Pointer(s))), int(stateSize)); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// Flags returns the scan policy the Collector was created with.
func (c *Collector) Flags() Flag {
	return c.s.flags
}
