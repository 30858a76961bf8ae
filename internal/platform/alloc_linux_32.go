// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && (386 || arm)

package platform

import "golang.org/x/sys/unix"

// The legacy mmap number takes its arguments in memory; mmap2 has
// the modern register convention and counts its offset in pages.
// The collector always maps at offset 0, so the two are
// interchangeable here.
const mmapTrap = unix.SYS_MMAP2
