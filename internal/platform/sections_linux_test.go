// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package platform

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio-afk/gc/internal/core"
)

// The linker separates pointerful from pointer-free globals; one
// probe variable of each class per section exercises the merged
// ranges.
var (
	dataInt = 3                        // .noptrdata
	dataPtr = unsafe.Pointer(&dataInt) // .data
	bssInt  int                        // .noptrbss
	bssPtr  unsafe.Pointer             // .bss
	bssArr  [128]byte                  // .noptrbss
)

func addrOf(p unsafe.Pointer) core.Address {
	return core.Address(uintptr(p))
}

func TestSections(t *testing.T) {
	data, bss, err := Sections()
	require.NoError(t, err)
	require.False(t, data.Empty(), "data range empty")
	require.False(t, bss.Empty(), "bss range empty")

	assert.True(t, data.Contains(addrOf(unsafe.Pointer(&dataInt))), "initialised int not in data range %s", data)
	assert.True(t, data.Contains(addrOf(unsafe.Pointer(&dataPtr))), "initialised pointer not in data range %s", data)
	assert.True(t, bss.Contains(addrOf(unsafe.Pointer(&bssInt))), "zero int not in bss range %s", bss)
	assert.True(t, bss.Contains(addrOf(unsafe.Pointer(&bssPtr))), "zero pointer not in bss range %s", bss)
	assert.True(t, bss.Contains(addrOf(unsafe.Pointer(&bssArr))), "zero array not in bss range %s", bss)

	// A stack address belongs to neither.
	var local int
	assert.False(t, data.Contains(addrOf(unsafe.Pointer(&local))))
	assert.False(t, bss.Contains(addrOf(unsafe.Pointer(&local))))
}
