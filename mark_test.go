// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio-afk/gc/internal/core"
	"github.com/valerio-afk/gc/internal/platform"
)

// scratch returns a raw region the tests can fill with synthetic
// scan input, and its bounds.
func scratch(t *testing.T, n int) (core.Address, core.Address) {
	t.Helper()
	a, err := platform.Alloc(n)
	require.NoError(t, err)
	t.Cleanup(func() { platform.Free(a, n) })
	return a, a.Add(int64(n))
}

func putWord(a core.Address, v uintptr) {
	*(*uintptr)(unsafe.Pointer(uintptr(a))) = v
}

func putTag(a core.Address, tag [tagLen]byte) {
	*(*[tagLen]byte)(unsafe.Pointer(uintptr(a))) = tag
}

func (s *state) resetAll() {
	s.forEach(func(r *record) {
		r.reachable = false
		r.foundAt = 0
	})
}

func newTestCollector(t *testing.T, flags Flag, opts ...Option) *Collector {
	t.Helper()
	opts = append([]Option{WithThreshold(0)}, opts...)
	c, err := New(flags, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMarkFindsExactBase(t *testing.T) {
	c := newTestCollector(t, 0)
	p := c.Alloc(32, true)
	require.NotNil(t, p)
	r := c.s.lookup(core.Address(uintptr(p)))
	require.NotNil(t, r)

	lo, hi := scratch(t, 4096)
	putWord(lo.Add(64), uintptr(p))

	c.s.mark(lo, hi, false)
	assert.True(t, r.reachable, "exact base not marked")
	assert.Equal(t, lo.Add(64), r.foundAt, "discovered-at address wrong")
}

func TestMarkIgnoresInteriorPointer(t *testing.T) {
	c := newTestCollector(t, 0)
	p := c.Alloc(32, true)
	r := c.s.lookup(core.Address(uintptr(p)))

	lo, hi := scratch(t, 4096)
	putWord(lo, uintptr(p)+8)

	c.s.mark(lo, hi, false)
	assert.False(t, r.reachable, "interior pointer must not mark")
}

func TestMarkTransitive(t *testing.T) {
	c := newTestCollector(t, 0)
	outer := c.Alloc(16, true)
	inner := c.Alloc(16, true)
	*(*uintptr)(outer) = uintptr(inner)
	ro := c.s.lookup(core.Address(uintptr(outer)))
	ri := c.s.lookup(core.Address(uintptr(inner)))

	lo, hi := scratch(t, 4096)
	putWord(lo, uintptr(outer))

	c.s.mark(lo, hi, false)
	assert.True(t, ro.reachable)
	assert.True(t, ri.reachable, "payload-held pointer not followed")
}

func TestMarkTerminatesOnCycle(t *testing.T) {
	c := newTestCollector(t, 0)
	a := c.Alloc(16, true)
	b := c.Alloc(16, true)
	*(*uintptr)(a) = uintptr(b)
	*(*uintptr)(b) = uintptr(a)

	lo, hi := scratch(t, 4096)
	putWord(lo, uintptr(a))

	c.s.mark(lo, hi, false) // must return
	assert.True(t, c.s.lookup(core.Address(uintptr(a))).reachable)
	assert.True(t, c.s.lookup(core.Address(uintptr(b))).reachable)
}

func TestMarkSkipsRecordTag(t *testing.T) {
	c := newTestCollector(t, 0)
	p1 := c.Alloc(16, true)
	p2 := c.Alloc(16, true)
	r1 := c.s.lookup(core.Address(uintptr(p1)))
	r2 := c.s.lookup(core.Address(uintptr(p2)))

	lo, hi := scratch(t, 4096)
	// A record image: tag, then a tracked base inside the struct's
	// footprint. The scanner must hop over the whole struct.
	putTag(lo, recordTag)
	putWord(lo.Add(tagLen), uintptr(p1))
	// Just past the struct, a base that must still be seen.
	putWord(lo.Add(int64(recordSize)), uintptr(p2))

	c.s.mark(lo, hi, true)
	assert.False(t, r1.reachable, "base inside a tagged record must be skipped")
	assert.True(t, r2.reachable, "word after the skipped record must be scanned")

	// Without tag checking the same image marks both.
	c.s.resetAll()
	c.s.mark(lo, hi, false)
	assert.True(t, r1.reachable)
	assert.True(t, r2.reachable)
}

func TestMarkSkipsStateTag(t *testing.T) {
	c := newTestCollector(t, 0)
	p := c.Alloc(16, true)
	r := c.s.lookup(core.Address(uintptr(p)))

	lo, hi := scratch(t, 4096)
	putTag(lo, stateTag)
	putWord(lo.Add(tagLen), uintptr(p))
	putWord(lo.Add(int64(stateSize)), uintptr(p))

	c.s.mark(lo, hi, true)
	assert.True(t, r.reachable)
	assert.Equal(t, lo.Add(int64(stateSize)), r.foundAt,
		"base must be discovered after the skipped state, not inside it")
}

func TestMarkAlignsRaggedBounds(t *testing.T) {
	c := newTestCollector(t, 0)
	p := c.Alloc(16, true)
	r := c.s.lookup(core.Address(uintptr(p)))

	lo, hi := scratch(t, 4096)
	putWord(lo.Add(8), uintptr(p))
	// Misaligned low bound must round up, not fault or misread.
	c.s.mark(lo.Add(1), hi.Add(-3), false)
	assert.True(t, r.reachable)
}
