// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/valerio-afk/gc/internal/core"
)

const writableMask = windows.PAGE_READWRITE |
	windows.PAGE_WRITECOPY |
	windows.PAGE_EXECUTE_READWRITE |
	windows.PAGE_EXECUTE_WRITECOPY

// memPrivate is MEMORY_BASIC_INFORMATION.Type for mappings backed by
// neither an image nor a section object; x/sys/windows does not
// define it.
const memPrivate = 0x20000

// minApplicationAddress is the conventional first usable address;
// VirtualQuery itself reports failure past the last one.
const minApplicationAddress = 0x10000

// HeapRegions walks the application address range with VirtualQuery
// and returns every committed private writable region. The caller
// owns the returned slice.
func HeapRegions() ([]core.Region, error) {
	var regions []core.Region
	addr := uintptr(minApplicationAddress)
	for {
		var mbi windows.MemoryBasicInformation
		if err := windows.VirtualQuery(addr, &mbi, unsafe.Sizeof(mbi)); err != nil {
			break
		}
		if mbi.RegionSize == 0 {
			break
		}
		if mbi.State == windows.MEM_COMMIT &&
			mbi.Type == memPrivate &&
			mbi.Protect&writableMask != 0 {
			regions = append(regions, core.Region{
				Min: core.Address(mbi.BaseAddress),
				Max: core.Address(mbi.BaseAddress + mbi.RegionSize),
			})
		}
		next := mbi.BaseAddress + mbi.RegionSize
		if next <= addr {
			break
		}
		addr = next
	}
	return regions, nil
}

// StackBase is unknown on Windows without reading the TEB; the stack
// root must come from the host instead.
func StackBase() core.Address {
	return 0
}
