// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !darwin && !windows

package platform

import "github.com/valerio-afk/gc/internal/core"

// Sections has no implementation for this platform's executable
// format; the global root set is empty here.
func Sections() (data, bss core.Region, err error) {
	return core.Region{}, core.Region{}, nil
}
