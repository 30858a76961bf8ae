// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !386 && !arm

package platform

import "golang.org/x/sys/unix"

const mmapTrap = unix.SYS_MMAP
