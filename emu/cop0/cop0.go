/*
   PSX: system control coprocessor.

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

import (
	"fmt"
	"log/slog"
)

/*
   The PSX runs everything in kernel mode, so very little of the R3000
   cop0 matters to shipped software beyond exception management. The
   status register, cause and EPC are modeled; the hardware breakpoint
   registers accept zero writes and abort on anything else so that
   software relying on them is visible rather than silently broken.
*/

// Exception codes as stored in the Cause register.
type Exception uint32

const (
	ExcInterrupt     Exception = 0x0 // External interrupt
	ExcTLBMod        Exception = 0x1 // TLB modification
	ExcTLBLoad       Exception = 0x2 // TLB load miss
	ExcTLBStore      Exception = 0x3 // TLB store miss
	ExcAddrLoad      Exception = 0x4 // Unmapped virtual address on load
	ExcAddrStore     Exception = 0x5 // Unmapped virtual address on store
	ExcBusFetch      Exception = 0x6 // Bus error on instruction fetch
	ExcBusLoad       Exception = 0x7 // Bus error on data load
	ExcSyscall       Exception = 0x8 // SYSCALL instruction
	ExcBreakpoint    Exception = 0x9 // BREAK instruction
	ExcReservedInstr Exception = 0xa // Reserved instruction
	ExcCopUnusable   Exception = 0xb // Unusable coprocessor
	ExcOverflow      Exception = 0xc // Signed arithmetic overflow
)

// Exception and reset vectors.
const (
	ResetVector   uint32 = 0xbfc0_0000
	tlbVector     uint32 = 0x8000_0000
	tlbVectorBEV  uint32 = 0xbfc0_0100
	miscVector    uint32 = 0x8000_0080
	miscVectorBEV uint32 = 0xbfc0_0180
)

// Status register bits.
const (
	srIsolateCache uint32 = 1 << 16 // Memory ops hit only the cache
	srBEV          uint32 = 1 << 22 // Boot exception vectors (ROM)
	srModeMask     uint32 = 0x3f    // KU/IE mode stack, 3 deep
)

// Register numbers software addresses through MTC0/MFC0.
const (
	regBPC      = 3  // Breakpoint on execute
	regBDA      = 5  // Breakpoint on data access
	regJumpDest = 6  // Randomly memorized jump address
	regDCIC     = 7  // Breakpoint control
	regBadVaddr = 8  // Bad virtual address
	regBDAM     = 9  // Data access breakpoint mask
	regBPCM     = 11 // Execute breakpoint mask
	regSR       = 12 // Status register
	regCause    = 13 // Exception cause
	regEPC      = 14 // Exception PC
)

// Cop0 operation function codes.
const (
	copTLBR  = 0x01
	copTLBWI = 0x02
	copTLBWR = 0x06
	copTLBP  = 0x08
	copRFE   = 0x10
)

const causeBD uint32 = 1 << 31 // Faulting instruction was in a delay slot

type Cop0 struct {
	sr    uint32 // R12 status register
	cause uint32 // R13 cause register
	epc   uint32 // R14 exception PC
}

// Create a cop0 in its power-on state. BEV starts set so exceptions
// vector through the BIOS until the kernel flips it.
func New() *Cop0 {
	return &Cop0{sr: srBEV}
}

// Report whether memory stores should be swallowed by the cache.
func (c *Cop0) IsCacheIsolated() bool {
	return c.sr&srIsolateCache != 0
}

// SR returns the status register.
func (c *Cop0) SR() uint32 {
	return c.sr
}

// Cause returns the cause register.
func (c *Cop0) Cause() uint32 {
	return c.cause
}

// EPC returns the exception PC.
func (c *Cop0) EPC() uint32 {
	return c.epc
}

// MTC handles a move to a cop0 register.
func (c *Cop0) MTC(reg int, data uint32) {
	switch reg {
	case regSR:
		c.sr = data
	case regBPC, regBDA, regJumpDest, regDCIC, regBDAM, regBPCM:
		// Hardware breakpoints are not modeled. Zero writes come from
		// BIOS housekeeping; anything else means software wants them.
		if data != 0 {
			panic(fmt.Sprintf("hardware breakpoint enable via cop0 r%d = %08x", reg, data))
		}
	case regCause, regEPC:
		if data != 0 {
			panic(fmt.Sprintf("software exception trigger via cop0 r%d = %08x", reg, data))
		}
		slog.Debug(fmt.Sprintf("cop0: ignoring zero write to r%d", reg))
	default:
		panic(fmt.Sprintf("unimplemented cop0 register write: r%d = %08x", reg, data))
	}
}

// MFC handles a move from a cop0 register.
func (c *Cop0) MFC(reg int) uint32 {
	switch reg {
	case regSR:
		return c.sr
	case regCause:
		return c.cause
	case regEPC:
		return c.epc
	default:
		panic(fmt.Sprintf("unimplemented cop0 register read: r%d", reg))
	}
}

// Operation dispatches a COP0 coprocessor operation by function code.
func (c *Cop0) Operation(funct uint32) {
	switch funct {
	case copRFE:
		c.rfe()
	case copTLBR, copTLBWI, copTLBWR, copTLBP:
		panic(fmt.Sprintf("TLB operation unimplemented: funct %02x", funct))
	default:
		panic(fmt.Sprintf("unknown cop0 operation: funct %02x", funct))
	}
}

// Enter an exception. Records cause and EPC, pushes the mode stack and
// returns the vector address execution resumes at. pc is the address of
// the faulting instruction; delaySlot reports whether it sat in a
// branch delay slot.
func (c *Cop0) Enter(exc Exception, pc uint32, delaySlot bool) uint32 {
	c.cause = uint32(exc) << 2
	if delaySlot {
		// EPC has to point at the branch so RFE replays it.
		c.cause |= causeBD
		c.epc = pc - 4
	} else {
		c.epc = pc
	}

	// Push the KU/IE stack: kernel mode, interrupts off.
	mode := c.sr & srModeMask
	c.sr = (c.sr &^ srModeMask) | ((mode << 2) & srModeMask)

	return c.vector(exc)
}

// Pop the KU/IE mode stack on return from exception.
func (c *Cop0) rfe() {
	mode := c.sr & srModeMask
	c.sr = (c.sr &^ srModeMask) | (mode >> 2)
}

func (c *Cop0) vector(exc Exception) uint32 {
	tlb := exc == ExcTLBLoad || exc == ExcTLBStore || exc == ExcTLBMod
	bev := c.sr&srBEV != 0
	switch {
	case tlb && bev:
		return tlbVectorBEV
	case tlb:
		return tlbVector
	case bev:
		return miscVectorBEV
	default:
		return miscVector
	}
}
