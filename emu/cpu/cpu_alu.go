/*
   PSX: integer arithmetic, logical, shift and compare instructions.

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
	"math"

	"github.com/rcornwell/PSX/emu/cop0"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Signed add with overflow check. Destination is untouched on overflow.
func addOverflow(a, b uint32) (uint32, bool) {
	sum := a + b
	// Overflow when both operands share a sign the result doesn't.
	overflow := (^(a ^ b) & (a ^ sum) & 0x8000_0000) != 0
	return sum, overflow
}

// Add.
func (cpu *CPU) opADD(instr op.Instruction) cop0.Exception {
	sum, overflow := addOverflow(cpu.regs[instr.Rs()], cpu.regs[instr.Rt()])
	if overflow {
		return cop0.ExcOverflow
	}
	cpu.setReg(instr.Rd(), sum)
	return noException
}

// Add immediate. The immediate is sign extended.
func (cpu *CPU) opADDI(instr op.Instruction) cop0.Exception {
	sum, overflow := addOverflow(cpu.regs[instr.Rs()], signExtend(instr.Immediate()))
	if overflow {
		return cop0.ExcOverflow
	}
	cpu.setReg(instr.Rt(), sum)
	return noException
}

// Add immediate unsigned. Despite the name the immediate is still sign
// extended; only the overflow trap is gone.
func (cpu *CPU) opADDIU(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rt(), cpu.regs[instr.Rs()]+signExtend(instr.Immediate()))
	return noException
}

// Add unsigned.
func (cpu *CPU) opADDU(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rs()]+cpu.regs[instr.Rt()])
	return noException
}

// Subtract with overflow trap.
func (cpu *CPU) opSUB(instr op.Instruction) cop0.Exception {
	a := cpu.regs[instr.Rs()]
	b := cpu.regs[instr.Rt()]
	diff := a - b
	if ((a^b)&(a^diff)&0x8000_0000) != 0 {
		return cop0.ExcOverflow
	}
	cpu.setReg(instr.Rd(), diff)
	return noException
}

// Subtract unsigned.
func (cpu *CPU) opSUBU(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rs()]-cpu.regs[instr.Rt()])
	return noException
}

// Logical and.
func (cpu *CPU) opAND(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rs()]&cpu.regs[instr.Rt()])
	return noException
}

// Logical and immediate. Logical immediates are zero extended.
func (cpu *CPU) opANDI(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rt(), cpu.regs[instr.Rs()]&instr.Immediate())
	return noException
}

// Logical or.
func (cpu *CPU) opOR(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rs()]|cpu.regs[instr.Rt()])
	return noException
}

// Logical or immediate.
func (cpu *CPU) opORI(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rt(), cpu.regs[instr.Rs()]|instr.Immediate())
	return noException
}

// Logical exclusive or.
func (cpu *CPU) opXOR(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rs()]^cpu.regs[instr.Rt()])
	return noException
}

// Logical exclusive or immediate.
func (cpu *CPU) opXORI(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rt(), cpu.regs[instr.Rs()]^instr.Immediate())
	return noException
}

// Logical nor.
func (cpu *CPU) opNOR(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), ^(cpu.regs[instr.Rs()] | cpu.regs[instr.Rt()]))
	return noException
}

// Load upper immediate. Low 16 bits are zero.
func (cpu *CPU) opLUI(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rt(), instr.Immediate()<<16)
	return noException
}

// Shift left logical, fixed amount.
func (cpu *CPU) opSLL(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rt()]<<instr.Shamt())
	return noException
}

// Shift left logical, amount from register.
func (cpu *CPU) opSLLV(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rt()]<<(cpu.regs[instr.Rs()]&0x1f))
	return noException
}

// Shift right logical, fixed amount.
func (cpu *CPU) opSRL(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rt()]>>instr.Shamt())
	return noException
}

// Shift right logical, amount from register.
func (cpu *CPU) opSRLV(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.regs[instr.Rt()]>>(cpu.regs[instr.Rs()]&0x1f))
	return noException
}

// Shift right arithmetic, fixed amount.
func (cpu *CPU) opSRA(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), uint32(int32(cpu.regs[instr.Rt()])>>instr.Shamt()))
	return noException
}

// Shift right arithmetic, amount from register.
func (cpu *CPU) opSRAV(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), uint32(int32(cpu.regs[instr.Rt()])>>(cpu.regs[instr.Rs()]&0x1f)))
	return noException
}

// Set on less than, signed.
func (cpu *CPU) opSLT(instr op.Instruction) cop0.Exception {
	var result uint32
	if int32(cpu.regs[instr.Rs()]) < int32(cpu.regs[instr.Rt()]) {
		result = 1
	}
	cpu.setReg(instr.Rd(), result)
	return noException
}

// Set on less than immediate, signed.
func (cpu *CPU) opSLTI(instr op.Instruction) cop0.Exception {
	var result uint32
	if int32(cpu.regs[instr.Rs()]) < int32(signExtend(instr.Immediate())) {
		result = 1
	}
	cpu.setReg(instr.Rt(), result)
	return noException
}

// Set on less than immediate unsigned. The immediate is sign extended
// and then compared unsigned.
func (cpu *CPU) opSLTIU(instr op.Instruction) cop0.Exception {
	var result uint32
	if cpu.regs[instr.Rs()] < signExtend(instr.Immediate()) {
		result = 1
	}
	cpu.setReg(instr.Rt(), result)
	return noException
}

// Set on less than, unsigned.
func (cpu *CPU) opSLTU(instr op.Instruction) cop0.Exception {
	var result uint32
	if cpu.regs[instr.Rs()] < cpu.regs[instr.Rt()] {
		result = 1
	}
	cpu.setReg(instr.Rd(), result)
	return noException
}

// Multiply signed; 64 bit product split across HI/LO.
func (cpu *CPU) opMULT(instr op.Instruction) cop0.Exception {
	product := int64(int32(cpu.regs[instr.Rs()])) * int64(int32(cpu.regs[instr.Rt()]))
	cpu.hi = uint32(uint64(product) >> 32)
	cpu.lo = uint32(uint64(product))
	return noException
}

// Multiply unsigned.
func (cpu *CPU) opMULTU(instr op.Instruction) cop0.Exception {
	product := uint64(cpu.regs[instr.Rs()]) * uint64(cpu.regs[instr.Rt()])
	cpu.hi = uint32(product >> 32)
	cpu.lo = uint32(product)
	return noException
}

// Divide signed. Divide by zero never traps; the hardware leaves
// defined garbage in HI/LO instead, as does INT_MIN / -1.
func (cpu *CPU) opDIV(instr op.Instruction) cop0.Exception {
	numerator := int32(cpu.regs[instr.Rs()])
	denominator := int32(cpu.regs[instr.Rt()])

	if denominator == 0 {
		cpu.hi = uint32(numerator)
		if numerator >= 0 {
			cpu.lo = 0xffff_ffff
		} else {
			cpu.lo = 0x0000_0001
		}
		return noException
	}

	// The only signed quotient that does not fit in 32 bits.
	if numerator == math.MinInt32 && denominator == -1 {
		cpu.hi = 0
		cpu.lo = uint32(numerator)
		return noException
	}

	cpu.hi = uint32(numerator % denominator)
	cpu.lo = uint32(numerator / denominator)
	return noException
}

// Divide unsigned.
func (cpu *CPU) opDIVU(instr op.Instruction) cop0.Exception {
	numerator := cpu.regs[instr.Rs()]
	denominator := cpu.regs[instr.Rt()]

	if denominator == 0 {
		cpu.hi = numerator
		cpu.lo = 0xffff_ffff
		return noException
	}

	cpu.hi = numerator % denominator
	cpu.lo = numerator / denominator
	return noException
}

// Move from HI.
func (cpu *CPU) opMFHI(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.hi)
	return noException
}

// Move from LO.
func (cpu *CPU) opMFLO(instr op.Instruction) cop0.Exception {
	cpu.setReg(instr.Rd(), cpu.lo)
	return noException
}

// Move to HI.
func (cpu *CPU) opMTHI(instr op.Instruction) cop0.Exception {
	cpu.hi = cpu.regs[instr.Rs()]
	return noException
}

// Move to LO.
func (cpu *CPU) opMTLO(instr op.Instruction) cop0.Exception {
	cpu.lo = cpu.regs[instr.Rs()]
	return noException
}
