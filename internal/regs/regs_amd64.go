// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package regs

const (
	numRegs = 16
	spIndex = 7
)

var names = [numRegs]string{
	"rax", "rbx", "rcx", "rdx", "rsi", "rdi", "rbp", "rsp",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

// Save stores the calling thread's general-purpose registers into
// the global buffer. It must be the first thing a collection does:
// any intervening call may spill or reuse the registers being
// captured. The stored rsp is the caller's, one word above the
// return address the call to Save pushed.
//
// Implemented in regs_amd64.s with memory-operand stores only, so no
// scratch register is needed to address the buffer.
func Save()
