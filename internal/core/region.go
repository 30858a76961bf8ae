// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "fmt"

// A Region is a contiguous subset of the address space, [Min, Max).
type Region struct {
	Min Address
	Max Address
}

// Size returns int64(Max-Min).
func (r Region) Size() int64 {
	return r.Max.Sub(r.Min)
}

// Empty reports whether the region contains no addresses.
// The zero Region is empty; probes that cannot resolve a range
// return it.
func (r Region) Empty() bool {
	return r.Max <= r.Min
}

// Contains reports whether a lies in the region.
func (r Region) Contains(a Address) bool {
	return r.Min <= a && a < r.Max
}

// Union returns the smallest region covering both r and s.
// An empty operand does not widen the result.
func (r Region) Union(s Region) Region {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Region{Min: r.Min.Min(s.Min), Max: r.Max.Max(s.Max)}
}

func (r Region) String() string {
	return fmt.Sprintf("[%x %x)", uintptr(r.Min), uintptr(r.Max))
}
