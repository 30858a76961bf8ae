// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package platform

import (
	"debug/macho"
	"fmt"
	"os"

	"github.com/valerio-afk/gc/internal/core"
)

// mhPIE marks a Mach-O image the kernel loads at a random slide.
const mhPIE = 0x200000

// Sections returns the __DATA segment's __data and __bss section
// ranges of the running executable.
//
// Position-independent images get an ASLR slide that pure Go cannot
// query (the dyld APIs are C-only), so for those the probe reports
// empty ranges and the global root set degrades to empty.
func Sections() (data, bss core.Region, err error) {
	exe, err := os.Executable()
	if err != nil {
		return core.Region{}, core.Region{}, fmt.Errorf("%w: %v", ErrNoExec, err)
	}
	f, err := macho.Open(exe)
	if err != nil {
		return core.Region{}, core.Region{}, fmt.Errorf("%w: %v", ErrNoExec, err)
	}
	defer f.Close()

	if f.Flags&mhPIE != 0 {
		return core.Region{}, core.Region{}, nil
	}
	return machoSection(f, "__data"), machoSection(f, "__bss"), nil
}

func machoSection(f *macho.File, name string) core.Region {
	for _, s := range f.Sections {
		if s.Seg == "__DATA" && s.Name == name && s.Size != 0 {
			return core.Region{
				Min: core.Address(s.Addr),
				Max: core.Address(s.Addr + s.Size),
			}
		}
	}
	return core.Region{}
}
