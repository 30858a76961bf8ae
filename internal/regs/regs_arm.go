// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build arm

package regs

const (
	numRegs = 14
	spIndex = 12
)

var names = [numRegs]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "sp", "lr",
}

// Save stores the calling thread's general-purpose registers into
// the global buffer; see regs_arm.s. The buffer address is staged in
// r12 (ip), the one register the snapshot gives up: the procedure
// call itself is allowed to clobber it, so no client value survives
// there across the call anyway.
func Save()
