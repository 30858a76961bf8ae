// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "testing"

func TestAlign(t *testing.T) {
	tests := []struct {
		a    Address
		x    int64
		want Address
	}{
		{0, 8, 0},
		{1, 8, 8},
		{7, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{0x1001, 4, 0x1004},
	}
	for _, test := range tests {
		if got := test.a.Align(test.x); got != test.want {
			t.Errorf("%#x.Align(%d) = %#x, want %#x", uintptr(test.a), test.x, uintptr(got), uintptr(test.want))
		}
	}
}

func TestRegion(t *testing.T) {
	r := Region{Min: 0x1000, Max: 0x2000}
	if r.Empty() {
		t.Error("nonempty region reported empty")
	}
	if r.Size() != 0x1000 {
		t.Errorf("size = %#x, want 0x1000", r.Size())
	}
	if !r.Contains(0x1000) || !r.Contains(0x1fff) {
		t.Error("region does not contain its own bounds")
	}
	if r.Contains(0x2000) {
		t.Error("region contains its exclusive max")
	}
	var zero Region
	if !zero.Empty() {
		t.Error("zero region reported nonempty")
	}
	if got := zero.Union(r); got != r {
		t.Errorf("empty.Union = %v, want %v", got, r)
	}
	s := Region{Min: 0x3000, Max: 0x4000}
	if got := r.Union(s); got.Min != 0x1000 || got.Max != 0x4000 {
		t.Errorf("union = %v", got)
	}
}
