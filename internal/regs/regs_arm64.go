// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build arm64

package regs

const (
	numRegs = 31
	spIndex = 30
)

var names = [numRegs]string{
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
	"x8", "x9", "x10", "x11", "x12", "x13", "x14", "x15",
	"x16", "x17", "x18", "x19", "x20", "x21", "x22", "x23",
	"x24", "x25", "x26", "x28", "fp", "lr", "sp",
}

// Save stores the calling thread's general-purpose registers into
// the global buffer; see regs_arm64.s. The buffer address is staged
// in x27, the one register the snapshot gives up (it is the
// assembler's scratch register and never carries client values
// across a call). x26 is borrowed to store sp and restored after.
func Save()
