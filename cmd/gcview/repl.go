// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/valerio-afk/gc"
)

const replSlots = 256

// replRoot holds the REPL's one stack-independent root: a block
// allocated through the collector itself, whose payload is the slot
// table. Slots hold the bases of user allocations, so a collection
// reaches them through the root block — the same transitive path any
// host data structure would provide.
var replRoot unsafe.Pointer = unsafe.Pointer(&replRootInit)
var replRootInit byte

func replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "drive a live collector interactively",
		Long: `Drive a live collector interactively.

Commands:
  alloc SIZE     allocate SIZE bytes into the next free slot
  free SLOT      release the allocation in SLOT immediately
  drop SLOT      null the slot but do not free; the next collect reclaims it
  realloc SLOT SIZE
  collect        run a collection cycle
  stat           print collector statistics
  dump           print every tracked allocation
  quit`,
		Run: runRepl,
	}
}

func runRepl(cmd *cobra.Command, args []string) {
	c, err := gc.New(gc.ScanData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	root := c.Alloc(replSlots*int(unsafe.Sizeof(uintptr(0))), true)
	if root == nil {
		fmt.Fprintln(os.Stderr, "cannot allocate slot table")
		os.Exit(1)
	}
	replRoot = root
	slots := (*[replSlots]uintptr)(root)

	rl, err := readline.New("(gc) ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return
		case "alloc":
			n, ok := intArg(fields, 1)
			if !ok {
				continue
			}
			i := freeSlot(slots)
			if i < 0 {
				fmt.Println("no free slot")
				continue
			}
			p := c.Alloc(n, true)
			if p == nil {
				fmt.Println("allocation failed")
				continue
			}
			slots[i] = uintptr(p)
			fmt.Printf("slot %d = %#x (%d bytes)\n", i, uintptr(p), n)
		case "free":
			i, ok := slotArg(fields, 1, slots)
			if !ok {
				continue
			}
			c.Free(unsafe.Pointer(slots[i]))
			slots[i] = 0
		case "drop":
			i, ok := slotArg(fields, 1, slots)
			if !ok {
				continue
			}
			slots[i] = 0
		case "realloc":
			i, ok := slotArg(fields, 1, slots)
			if !ok {
				continue
			}
			n, ok := intArg(fields, 2)
			if !ok {
				continue
			}
			p := c.Realloc(unsafe.Pointer(slots[i]), n)
			if p == nil && n != 0 {
				fmt.Println("realloc failed")
				continue
			}
			slots[i] = uintptr(p)
			fmt.Printf("slot %d = %#x (%d bytes)\n", i, uintptr(p), n)
		case "collect":
			fmt.Printf("reclaimed %d\n", c.Collect())
		case "stat":
			fmt.Println(c)
		case "dump":
			c.DumpTo(os.Stdout)
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func intArg(fields []string, i int) (int, bool) {
	if i >= len(fields) {
		fmt.Println("missing argument")
		return 0, false
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil || n < 0 {
		fmt.Printf("bad argument %q\n", fields[i])
		return 0, false
	}
	return n, true
}

func slotArg(fields []string, i int, slots *[replSlots]uintptr) (int, bool) {
	n, ok := intArg(fields, i)
	if !ok {
		return 0, false
	}
	if n >= replSlots || slots[n] == 0 {
		fmt.Printf("slot %d is empty\n", n)
		return 0, false
	}
	return n, true
}

func freeSlot(slots *[replSlots]uintptr) int {
	for i, v := range slots {
		if v == 0 {
			return i
		}
	}
	return -1
}
