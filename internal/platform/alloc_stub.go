// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix && !windows

package platform

import "github.com/valerio-afk/gc/internal/core"

// Platforms without raw page mappings cannot host the collector;
// every allocation fails cleanly instead of half-working.

func Alloc(n int) (core.Address, error) {
	return 0, ErrUnsupported
}

func Free(a core.Address, n int) error {
	return ErrUnsupported
}

func Resize(a core.Address, oldn, newn int) (core.Address, error) {
	return 0, ErrUnsupported
}
