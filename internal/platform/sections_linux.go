// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package platform

import (
	"debug/elf"
	"fmt"
	"os"
	"path/filepath"

	"github.com/valerio-afk/gc/internal/core"
)

// Sections returns the address ranges of the running executable's
// initialised and zero-initialised static data.
//
// The linker splits both classes in two: pointerful data lands in
// .data/.bss and pointer-free data (which is exactly where a host
// keeps a uintptr-typed handle) in .noptrdata/.noptrbss. Each pair is
// laid out adjacently, so the probe returns the union of each pair.
//
// Position-independent executables are loaded at an arbitrary base;
// the bias is recovered by comparing the executable's first loadable
// segment with its mapping in /proc/self/maps.
func Sections() (data, bss core.Region, err error) {
	exe, err := os.Executable()
	if err != nil {
		return core.Region{}, core.Region{}, fmt.Errorf("%w: %v", ErrNoExec, err)
	}
	f, err := elf.Open(exe)
	if err != nil {
		return core.Region{}, core.Region{}, fmt.Errorf("%w: %v", ErrNoExec, err)
	}
	defer f.Close()

	bias, err := loadBias(f, exe)
	if err != nil {
		return core.Region{}, core.Region{}, err
	}

	data = sectionRegion(f, ".data", bias).Union(sectionRegion(f, ".noptrdata", bias))
	bss = sectionRegion(f, ".bss", bias).Union(sectionRegion(f, ".noptrbss", bias))
	return data, bss, nil
}

func sectionRegion(f *elf.File, name string, bias int64) core.Region {
	s := f.Section(name)
	if s == nil || s.Size == 0 {
		return core.Region{}
	}
	min := core.Address(s.Addr).Add(bias)
	return core.Region{Min: min, Max: min.Add(int64(s.Size))}
}

// loadBias returns the difference between the executable's mapped
// base and its linked base. Fixed-position executables have bias 0.
func loadBias(f *elf.File, exe string) (int64, error) {
	if f.Type != elf.ET_DYN {
		return 0, nil
	}
	var linked core.Address
	found := false
	for _, p := range f.Progs {
		if p.Type == elf.PT_LOAD && (!found || core.Address(p.Vaddr) < linked) {
			linked = core.Address(p.Vaddr)
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: no loadable segment", ErrNoExec)
	}

	mf, err := os.Open(mapsPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoMaps, err)
	}
	defer mf.Close()
	entries, err := parseMaps(mf)
	if err != nil {
		return 0, err
	}
	resolved, rerr := filepath.EvalSymlinks(exe)
	for _, e := range entries {
		if e.off != 0 {
			continue
		}
		if e.path == exe || (rerr == nil && e.path == resolved) {
			return e.region.Min.Sub(linked), nil
		}
	}
	return 0, fmt.Errorf("%w: executable not found in memory map", ErrNoMaps)
}
