// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package platform

import (
	"debug/pe"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/valerio-afk/gc/internal/core"
)

// moduleAnchor is any static symbol of this image; the allocation
// that VirtualQuery reports for its address starts at the module's
// load base.
var moduleAnchor byte

func moduleBase() (uintptr, error) {
	var mbi windows.MemoryBasicInformation
	err := windows.VirtualQuery(uintptr(unsafe.Pointer(&moduleAnchor)), &mbi, unsafe.Sizeof(mbi))
	if err != nil {
		return 0, err
	}
	return mbi.AllocationBase, nil
}

// Sections walks the NT section table of the current module and
// returns the .data and .bss ranges, rebased on the module's actual
// load address. PE images linked by the Go toolchain fold
// zero-initialised data into .data's virtual tail, so an absent .bss
// simply yields an empty region.
func Sections() (data, bss core.Region, err error) {
	exe, err := os.Executable()
	if err != nil {
		return core.Region{}, core.Region{}, fmt.Errorf("%w: %v", ErrNoExec, err)
	}
	f, err := pe.Open(exe)
	if err != nil {
		return core.Region{}, core.Region{}, fmt.Errorf("%w: %v", ErrNoExec, err)
	}
	defer f.Close()

	base, err := moduleBase()
	if err != nil {
		return core.Region{}, core.Region{}, fmt.Errorf("%w: %v", ErrNoExec, err)
	}
	return peSection(f, ".data", base), peSection(f, ".bss", base), nil
}

func peSection(f *pe.File, name string, base uintptr) core.Region {
	for _, s := range f.Sections {
		if s.Name == name && s.VirtualSize != 0 {
			min := core.Address(base + uintptr(s.VirtualAddress))
			return core.Region{Min: min, Max: min.Add(int64(s.VirtualSize))}
		}
	}
	return core.Region{}
}
