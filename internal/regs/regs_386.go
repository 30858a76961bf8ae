// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build 386

package regs

const (
	numRegs = 8
	spIndex = 7
)

var names = [numRegs]string{
	"eax", "ebx", "ecx", "edx", "esi", "edi", "ebp", "esp",
}

// Save stores the calling thread's general-purpose registers into
// the global buffer; see regs_386.s. The stored esp is the caller's.
func Save()
