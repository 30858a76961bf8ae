// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gctrace

package gc

import (
	"fmt"
	"os"
)

// Built with -tags gctrace, the collector narrates allocations,
// marks, and sweeps to stderr.
func tracef(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
