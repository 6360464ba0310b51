/*
   PSX: coprocessor move and operation instructions.

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

package cpu

import (
	"fmt"

	"github.com/rcornwell/PSX/emu/cop0"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

/*
   Coprocessor 0 is the system control coprocessor. Coprocessor 2 is
   the GTE, which is not implemented yet; touching it is fatal rather
   than an exception so its absence is loud. Coprocessors 1 and 3 do
   not exist on this machine and raise the architectural exception.
*/

// Coprocessor number from the low two opcode bits.
func coproc(instr op.Instruction) uint32 {
	return instr.Op() & 0b11
}

// Move to coprocessor register.
func (cpu *CPU) opMTC(instr op.Instruction) cop0.Exception {
	data := cpu.regs[instr.Rt()]
	switch coproc(instr) {
	case 0:
		cpu.cop0.MTC(int(instr.Rd()), data)
		return noException
	case 2:
		panic(fmt.Sprintf("GTE unimplemented: MTC2 %08x", uint32(instr)))
	default:
		return cop0.ExcCopUnusable
	}
}

// Move from coprocessor register. Arrives with load delay semantics.
func (cpu *CPU) opMFC(instr op.Instruction) cop0.Exception {
	switch coproc(instr) {
	case 0:
		cpu.pendLoad(instr.Rt(), cpu.cop0.MFC(int(instr.Rd())))
		return noException
	case 2:
		panic(fmt.Sprintf("GTE unimplemented: MFC2 %08x", uint32(instr)))
	default:
		return cop0.ExcCopUnusable
	}
}

// Move control to coprocessor. Cop0 has no control registers.
func (cpu *CPU) opCTC(instr op.Instruction) cop0.Exception {
	switch coproc(instr) {
	case 2:
		panic(fmt.Sprintf("GTE unimplemented: CTC2 %08x", uint32(instr)))
	default:
		return cop0.ExcCopUnusable
	}
}

// Move control from coprocessor. Cop0 has no control registers.
func (cpu *CPU) opCFC(instr op.Instruction) cop0.Exception {
	switch coproc(instr) {
	case 2:
		panic(fmt.Sprintf("GTE unimplemented: CFC2 %08x", uint32(instr)))
	default:
		return cop0.ExcCopUnusable
	}
}

// Coprocessor operation. On cop0 this is RFE and the TLB placeholders.
func (cpu *CPU) opCOP(instr op.Instruction) cop0.Exception {
	switch coproc(instr) {
	case 0:
		cpu.cop0.Operation(instr.Funct())
		return noException
	case 2:
		panic(fmt.Sprintf("GTE unimplemented: COP2 %08x", uint32(instr)))
	default:
		return cop0.ExcCopUnusable
	}
}

// Load word to coprocessor. Cop0 has no load port.
func (cpu *CPU) opLWC(instr op.Instruction) cop0.Exception {
	switch coproc(instr) {
	case 2:
		panic(fmt.Sprintf("GTE unimplemented: LWC2 %08x", uint32(instr)))
	default:
		return cop0.ExcCopUnusable
	}
}

// Store word from coprocessor. Cop0 has no store port.
func (cpu *CPU) opSWC(instr op.Instruction) cop0.Exception {
	switch coproc(instr) {
	case 2:
		panic(fmt.Sprintf("GTE unimplemented: SWC2 %08x", uint32(instr)))
	default:
		return cop0.ExcCopUnusable
	}
}
