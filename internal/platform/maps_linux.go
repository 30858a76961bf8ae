// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package platform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/valerio-afk/gc/internal/core"
)

// mapsPath is a variable so tests can point the probes at a canned map.
var mapsPath = "/proc/self/maps"

// A mapsEntry is one parsed line of /proc/pid/maps.
type mapsEntry struct {
	region core.Region
	perms  string
	off    uint64
	path   string
}

// parseMaps reads a /proc/pid/maps-style listing. Each line is
// "start-end perms offset dev inode [path]"; the path column may be
// absent for anonymous mappings.
func parseMaps(r io.Reader) ([]mapsEntry, error) {
	var entries []mapsEntry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return nil, fmt.Errorf("%w: %q", ErrBadMaps, line)
		}
		lo, hi, ok := strings.Cut(fields[0], "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadMaps, line)
		}
		min, err := strconv.ParseUint(lo, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadMaps, line)
		}
		max, err := strconv.ParseUint(hi, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadMaps, line)
		}
		off, err := strconv.ParseUint(fields[2], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadMaps, line)
		}
		path := ""
		if len(fields) > 5 {
			path = fields[5]
		}
		entries = append(entries, mapsEntry{
			region: core.Region{Min: core.Address(min), Max: core.Address(max)},
			perms:  fields[1],
			off:    off,
			path:   path,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// heapLike reports whether a mapping should be scanned as a heap
// region: writable, private, not shared, and backed by nothing but
// the process itself (the [heap] break, a pathless anonymous mapping,
// or a named anonymous mapping).
func heapLike(e mapsEntry) bool {
	if e.perms != "rw-p" {
		return false
	}
	return e.path == "" || e.path == "[heap]" || strings.HasPrefix(e.path, "[anon:")
}

// HeapRegions returns the writable heap-like regions of the current
// process. The caller owns the returned slice.
func HeapRegions() ([]core.Region, error) {
	f, err := os.Open(mapsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoMaps, err)
	}
	defer f.Close()
	entries, err := parseMaps(f)
	if err != nil {
		return nil, err
	}
	var regions []core.Region
	for _, e := range entries {
		if heapLike(e) {
			regions = append(regions, e.region)
		}
	}
	return regions, nil
}

// StackBase returns the high address of the calling thread's stack.
//
// Only the process's initial thread has a [stack] entry in its memory
// map; goroutines run on runtime-allocated stacks that the map does
// not distinguish. The probe therefore answers only when the caller
// is running on the initial thread (it does not check that the
// goroutine is locked there), and returns 0 ("unknown") otherwise. Callers holding 0 must skip the stack root.
func StackBase() core.Address {
	if unix.Gettid() != os.Getpid() {
		return 0
	}
	f, err := os.Open(mapsPath)
	if err != nil {
		return 0
	}
	defer f.Close()
	entries, err := parseMaps(f)
	if err != nil {
		return 0
	}
	for _, e := range entries {
		if e.path == "[stack]" {
			return e.region.Max
		}
	}
	return 0
}
