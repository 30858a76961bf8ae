// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"unsafe"

	"github.com/valerio-afk/gc/internal/core"
)

const ptrSize = int64(core.PtrSize)

// tagAt reports whether the tagLen bytes at p equal tag.
func tagAt(p core.Address, tag *[tagLen]byte) bool {
	return *(*[tagLen]byte)(unsafe.Pointer(uintptr(p))) == *tag
}

// mark scans [lo, hi-ptrSize] at pointer stride, marking every
// not-yet-reachable record whose base equals a scanned word, and
// descends into each newly marked payload.
//
// With checkTags set, a word matching one of the collector's own
// tags skips the full struct behind it. This is what makes scanning
// heap regions safe at all: records carry the very base addresses
// being searched for, and without the skip the registry would retain
// itself and every sweep would find nothing.
//
// Termination on cyclic payload graphs follows from descending only
// on a false→true transition of the reachable flag.
func (s *state) mark(lo, hi core.Address, checkTags bool) {
	for p := lo.Align(ptrSize); p.Add(ptrSize) <= hi; p = p.Add(ptrSize) {
		if checkTags && p.Add(tagLen) <= hi {
			if tagAt(p, &stateTag) {
				p = p.Add(int64(stateSize) - ptrSize)
				continue
			}
			if tagAt(p, &recordTag) {
				p = p.Add(int64(recordSize) - ptrSize)
				continue
			}
		}
		v := core.ReadWord(p)
		if v == 0 {
			continue
		}
		for e := s.head; e != 0; e = recordAt(e).next {
			r := recordAt(e)
			if r.reachable || uintptr(r.base) != v {
				continue
			}
			r.reachable = true
			r.foundAt = p
			tracef("gc: marked %#x (%d bytes), seen at %#x", uintptr(r.base), r.size, uintptr(p))
			s.mark(r.base, r.base.Add(int64(r.size)), true)
		}
	}
}
