// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !gctrace

package gc

// tracef compiles away unless the gctrace build tag is set.
func tracef(format string, args ...any) {}
