// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform holds the per-OS probes the collector is built on:
// the raw page allocator, the writable-region enumerator, the static
// section extractor, and the stack-base probe.
//
// Every probe has a documented fallback on platforms it does not
// support. A probe that cannot answer returns its zero value (nil
// region slice, empty Region, Address 0); the collector treats such
// answers as "this root set is empty" and keeps going.
package platform

import "errors"

var (
	// ErrNoMaps indicates that the process's memory map could not be read.
	ErrNoMaps = errors.New("platform: cannot read process memory map")

	// ErrBadMaps indicates a memory-map entry that could not be parsed.
	ErrBadMaps = errors.New("platform: malformed memory map entry")

	// ErrNoExec indicates that the running executable could not be opened.
	ErrNoExec = errors.New("platform: cannot open executable")

	// ErrUnsupported indicates a platform with no raw allocator; the
	// collector cannot run at all there.
	ErrUnsupported = errors.New("platform: no raw allocator on this platform")
)
