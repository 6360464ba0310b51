/*
   PSX: virtual address to device mapping.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

package memmap

import "fmt"

/*
   The R3000 sees a 32 bit virtual address space cut into four segments.
   KUSEG, KSEG0 and KSEG1 are mirrors of the same 256MB physical window
   with different cache semantics; KSEG2 holds only the cache control
   ports. Device ranges below are offsets into the folded window.
*/

// Segment of the virtual address space.
type Segment int

const (
	KUSEG Segment = iota // User segment, cached, first 2GB
	KSEG0                // Kernel mirror, cached
	KSEG1                // Kernel mirror, uncached
	KSEG2                // Cache and IO control
)

// Device selects which bus device an address resolves to.
type Device int

const (
	RAM        Device = iota // Main 2MB RAM
	Expansion1               // Expansion region 1
	Scratch                  // 1KB scratchpad data cache
	MemCtrl                  // Memory control registers
	Peripheral               // Peripheral IO (serial, memory card)
	RAMSize                  // RAM size register
	IntCtrl                  // Interrupt controller
	DMA                      // DMA controller
	Timers                   // Timer controller
	GPU                      // GPU control ports
	SPU                      // Sound processing unit
	Expansion2               // Expansion region 2
	Expansion3               // Expansion region 3
	BIOS                     // 512KB BIOS ROM
	CacheCtrl                // KSEG2 cache control port
	VMem                     // KUSEG address beyond the memory map
)

var segmentNames = map[Segment]string{
	KUSEG: "KUSEG",
	KSEG0: "KSEG0",
	KSEG1: "KSEG1",
	KSEG2: "KSEG2",
}

var deviceNames = map[Device]string{
	RAM:        "RAM",
	Expansion1: "Expansion1",
	Scratch:    "Scratch",
	MemCtrl:    "MemCtrl",
	Peripheral: "Peripheral",
	RAMSize:    "RAMSize",
	IntCtrl:    "IntCtrl",
	DMA:        "DMA",
	Timers:     "Timers",
	GPU:        "GPU",
	SPU:        "SPU",
	Expansion2: "Expansion2",
	Expansion3: "Expansion3",
	BIOS:       "BIOS",
	CacheCtrl:  "CacheCtrl",
	VMem:       "VMem",
}

func (s Segment) String() string {
	return segmentNames[s]
}

func (d Device) String() string {
	return deviceNames[d]
}

type addrRange struct {
	start  uint32
	length uint32
}

func (r addrRange) contains(addr uint32) bool {
	return addr >= r.start && addr < r.start+r.length
}

// Segment boundaries.
const (
	kseg0Start uint32 = 0x8000_0000
	kseg1Start uint32 = 0xa000_0000
	kseg2Start uint32 = 0xc000_0000

	// Mask folding KUSEG/KSEG0/KSEG1 onto the physical window.
	foldMask uint32 = 0x0fff_ffff
)

// Cache control port range, local to KSEG2.
var cacheCtrlRange = addrRange{0x3ffe_0000, 512}

// Device ranges within the folded 256MB window. Addresses come from
// No$Psx; the first containing range wins.
var ranges = []struct {
	dev Device
	rng addrRange
}{
	{RAM, addrRange{0x0000_0000, 2048 * 1024}},
	{Expansion1, addrRange{0x0f00_0000, 8192 * 1024}},
	{Scratch, addrRange{0x0f80_0000, 1024}},
	{MemCtrl, addrRange{0x0f80_1000, 0x24}},
	{Peripheral, addrRange{0x0f80_1040, 0x20}},
	{RAMSize, addrRange{0x0f80_1060, 4}},
	{IntCtrl, addrRange{0x0f80_1070, 8}},
	{DMA, addrRange{0x0f80_1080, 128}},
	{Timers, addrRange{0x0f80_1100, 0x30}},
	{GPU, addrRange{0x0f80_1810, 8}},
	{SPU, addrRange{0x0f80_1c00, 640}},
	{Expansion2, addrRange{0x0f80_2000, 8 * 1024}},
	{Expansion3, addrRange{0x0fa0_0000, 2048 * 1024}},
	{BIOS, addrRange{0x0fc0_0000, 512 * 1024}},
}

// Map resolves a virtual address to its segment, the device that claims
// it and the device local offset. Addresses that hit no device are fatal.
func Map(addr uint32) (Segment, Device, uint32) {
	var segment Segment
	switch {
	case addr < kseg0Start:
		segment = KUSEG
	case addr < kseg1Start:
		segment = KSEG0
	case addr < kseg2Start:
		segment = KSEG1
	default:
		segment = KSEG2
	}

	// KSEG2 holds nothing but the cache control ports.
	if segment == KSEG2 {
		local := addr - kseg2Start
		if !cacheCtrlRange.contains(local) {
			panic(fmt.Sprintf("invalid KSEG2 address: %08x", addr))
		}
		return segment, CacheCtrl, local - cacheCtrlRange.start
	}

	// The three remaining segments mirror each other.
	folded := addr & foldMask
	if segment == KUSEG && folded > 0x2000_0000 {
		return segment, VMem, folded
	}

	for _, r := range ranges {
		if r.rng.contains(folded) {
			// The scratchpad sits behind the cache and is not
			// visible from the uncached mirror.
			if segment == KSEG1 && r.dev == Scratch {
				panic(fmt.Sprintf("scratchpad not reachable from KSEG1: %08x", addr))
			}
			return segment, r.dev, folded - r.rng.start
		}
	}
	panic(fmt.Sprintf("invalid memory location in %s: %08x / %08x", segment, addr, folded))
}
