/*
   PSX: address mapping tests.

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

import "testing"

func TestMapsToBIOS(t *testing.T) {
	seg, dev, local := Map(0xbfc0_0000)
	if seg != KSEG1 || dev != BIOS || local != 0 {
		t.Errorf("reset vector mapped to %s %s %08x", seg, dev, local)
	}
	seg, dev, local = Map(0xbfc0_0001)
	if seg != KSEG1 || dev != BIOS || local != 1 {
		t.Errorf("reset vector +1 mapped to %s %s %08x", seg, dev, local)
	}
}

// KUSEG, KSEG0 and KSEG1 mirror the same window.
func TestMapsSegmentMirrors(t *testing.T) {
	base := uint32(0x1fc0_0000)
	for _, tc := range []struct {
		addr uint32
		seg  Segment
	}{
		{base, KUSEG},
		{base | 0x8000_0000, KSEG0},
		{base | 0xa000_0000, KSEG1},
	} {
		seg, dev, local := Map(tc.addr)
		if seg != tc.seg || dev != BIOS || local != 0 {
			t.Errorf("%08x mapped to %s %s %08x", tc.addr, seg, dev, local)
		}
	}
}

func TestMapIdempotentOverMirrors(t *testing.T) {
	addrs := []uint32{0x0000_0000, 0x0010_0040, 0x1f80_1070, 0x1f80_1080, 0x1fc7_fffc}
	for _, addr := range addrs {
		_, dev0, local0 := Map(addr)
		_, dev1, local1 := Map(addr ^ 0x8000_0000)
		_, dev2, local2 := Map(addr ^ 0xa000_0000)
		if dev0 != dev1 || dev0 != dev2 || local0 != local1 || local0 != local2 {
			t.Errorf("%08x not idempotent over mirrors", addr)
		}
	}
}

func TestMapsExpansionRegions(t *testing.T) {
	for _, tc := range []struct {
		addr uint32
		dev  Device
	}{
		{0x1f00_0000, Expansion1},
		{0x1f80_2000, Expansion2},
		{0x1fa0_0000, Expansion3},
	} {
		seg, dev, local := Map(tc.addr)
		if seg != KUSEG || dev != tc.dev || local != 0 {
			t.Errorf("%08x mapped to %s %s %08x", tc.addr, seg, dev, local)
		}
	}
}

func TestMapsControlPorts(t *testing.T) {
	for _, tc := range []struct {
		addr  uint32
		dev   Device
		local uint32
	}{
		{0x1f80_1000, MemCtrl, 0},
		{0x1f80_1060, RAMSize, 0},
		{0x1f80_1074, IntCtrl, 4},
		{0x1f80_1080, DMA, 0},
		{0x1f80_1810, GPU, 0},
		{0x1f80_1c00, SPU, 0},
	} {
		_, dev, local := Map(tc.addr)
		if dev != tc.dev || local != tc.local {
			t.Errorf("%08x mapped to %s %08x", tc.addr, dev, local)
		}
	}
}

func TestMapsCacheControl(t *testing.T) {
	seg, dev, local := Map(0xfffe_0000)
	if seg != KSEG2 || dev != CacheCtrl || local != 0 {
		t.Errorf("cache control mapped to %s %s %08x", seg, dev, local)
	}
	seg, dev, local = Map(0xfffe_0130)
	if seg != KSEG2 || dev != CacheCtrl || local != 0x130 {
		t.Errorf("cache control port mapped to %s %s %08x", seg, dev, local)
	}
}

func TestMapsScratchpadInCachedSegments(t *testing.T) {
	seg, dev, local := Map(0x9f80_0000)
	if seg != KSEG0 || dev != Scratch || local != 0 {
		t.Errorf("scratchpad mapped to %s %s %08x", seg, dev, local)
	}
}

func TestScratchpadUnreachableFromKSEG1(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic mapping scratchpad through KSEG1")
		}
	}()
	Map(0xbf80_0000)
}

func TestInvalidKSEG2Fatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic mapping bogus KSEG2 address")
		}
	}()
	Map(0xc000_0000)
}

func TestUnmappedWindowFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic mapping hole in device window")
		}
	}()
	// Just past the end of main RAM, before expansion 1.
	Map(0x8020_0000)
}
