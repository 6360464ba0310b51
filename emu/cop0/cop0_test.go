/*
   PSX: system control coprocessor tests.

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

package cop0

import "testing"

func TestPowerOnState(t *testing.T) {
	c := New()
	if c.SR()&srBEV == 0 {
		t.Error("BEV should be set at power on")
	}
	if c.IsCacheIsolated() {
		t.Error("cache should not be isolated at power on")
	}
}

func TestCacheIsolation(t *testing.T) {
	c := New()
	c.MTC(regSR, srIsolateCache)
	if !c.IsCacheIsolated() {
		t.Error("cache isolation not latched")
	}
	c.MTC(regSR, 0)
	if c.IsCacheIsolated() {
		t.Error("cache isolation not cleared")
	}
}

func TestEnterRecordsCauseAndEPC(t *testing.T) {
	c := New()
	c.MTC(regSR, 0) // BEV off
	v := c.Enter(ExcSyscall, 0x8001_0040, false)
	if v != miscVector {
		t.Errorf("vector got %08x want %08x", v, miscVector)
	}
	if c.Cause() != uint32(ExcSyscall)<<2 {
		t.Errorf("cause got %08x", c.Cause())
	}
	if c.EPC() != 0x8001_0040 {
		t.Errorf("epc got %08x", c.EPC())
	}
}

func TestEnterInDelaySlot(t *testing.T) {
	c := New()
	v := c.Enter(ExcOverflow, 0x8000_1004, true)
	if v != miscVectorBEV {
		t.Errorf("vector got %08x want %08x", v, miscVectorBEV)
	}
	if c.Cause()&causeBD == 0 {
		t.Error("BD bit not set for delay slot fault")
	}
	// EPC points at the branch, one instruction back.
	if c.EPC() != 0x8000_1000 {
		t.Errorf("epc got %08x", c.EPC())
	}
}

func TestTLBVectors(t *testing.T) {
	c := New()
	if v := c.Enter(ExcTLBLoad, 0, false); v != tlbVectorBEV {
		t.Errorf("BEV TLB vector got %08x", v)
	}
	c = New()
	c.MTC(regSR, 0)
	if v := c.Enter(ExcTLBStore, 0, false); v != tlbVector {
		t.Errorf("TLB vector got %08x", v)
	}
}

func TestModeStack(t *testing.T) {
	c := New()
	c.MTC(regSR, 0x0000_003f)
	c.Enter(ExcSyscall, 0, false)
	if mode := c.SR() & srModeMask; mode != 0x3c {
		t.Errorf("mode stack after push got %02x want 3c", mode)
	}
	c.Operation(copRFE)
	if mode := c.SR() & srModeMask; mode != 0x0f {
		t.Errorf("mode stack after pop got %02x want 0f", mode)
	}
}

func TestBreakpointRegistersInert(t *testing.T) {
	c := New()
	for _, reg := range []int{regBPC, regBDA, regJumpDest, regDCIC, regBDAM, regBPCM} {
		c.MTC(reg, 0) // zero writes are fine
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic enabling hardware breakpoint")
		}
	}()
	c.MTC(regBPC, 0x8000_0000)
}

func TestTLBOperationsFatal(t *testing.T) {
	c := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on TLBP")
		}
	}()
	c.Operation(copTLBP)
}
