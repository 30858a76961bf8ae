// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regs

import (
	"testing"
	"unsafe"
)

func TestSaveCapturesStackPointer(t *testing.T) {
	if !Supported() {
		t.Skip("no register snapshot on this architecture")
	}
	var local byte
	here := uintptr(unsafe.Pointer(&local))

	Save()
	sp := SP()
	if sp == 0 {
		t.Fatal("captured stack pointer is zero")
	}
	// The captured sp belongs to this frame's call to Save: at or
	// below the local, and within a sane distance of it.
	if sp > here {
		t.Errorf("captured sp %#x above frame local %#x", sp, here)
	}
	if here-sp > 1<<16 {
		t.Errorf("captured sp %#x implausibly far from frame local %#x", sp, here)
	}
}

func TestWordsAliasesBuffer(t *testing.T) {
	if !Supported() {
		t.Skip("no register snapshot on this architecture")
	}
	Save()
	w := Words()
	if len(w) != numRegs {
		t.Fatalf("Words returned %d words, want %d", len(w), numRegs)
	}
	lo, hi := Buffer()
	if got := uintptr(unsafe.Pointer(&w[0])); got != lo {
		t.Errorf("Words does not alias the buffer: %#x != %#x", got, lo)
	}
	if hi-lo != uintptr(numRegs)*unsafe.Sizeof(uintptr(0)) {
		t.Errorf("buffer span %d words, want %d", (hi-lo)/unsafe.Sizeof(uintptr(0)), numRegs)
	}
}

func TestRegisterNames(t *testing.T) {
	rs := Registers()
	if len(rs) != numRegs {
		t.Fatalf("Registers returned %d entries, want %d", len(rs), numRegs)
	}
	seen := make(map[string]bool)
	for _, r := range rs {
		if r.Name == "" {
			t.Error("register with empty name")
		}
		if seen[r.Name] {
			t.Errorf("duplicate register name %q", r.Name)
		}
		seen[r.Name] = true
	}
}
