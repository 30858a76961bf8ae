// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !386 && !arm64 && !arm

package regs

const (
	numRegs = 0
	spIndex = -1
)

var names [0]string

// Save is a no-op on architectures without a snapshot
// implementation. SP reports 0 and the collector skips both the
// register and stack roots.
func Save() {}
