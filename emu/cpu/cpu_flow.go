/*
   PSX: branch, jump and trap instructions.

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
	"github.com/rcornwell/PSX/emu/cop0"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Take a branch. The target is relative to the delay slot address,
// which is the current PC; minus 4 compensates for the advance after
// the handler returns.
func (cpu *CPU) branch(offset uint32) {
	cpu.PC += signExtend(offset) << 2
	cpu.PC -= 4
	cpu.branchDelay = true
}

// Branch on equal.
func (cpu *CPU) opBEQ(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	if cpu.regs[instr.Rs()] == cpu.regs[instr.Rt()] {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Branch on not equal.
func (cpu *CPU) opBNE(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	if cpu.regs[instr.Rs()] != cpu.regs[instr.Rt()] {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Branch on greater than or equal zero.
func (cpu *CPU) opBGEZ(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	if int32(cpu.regs[instr.Rs()]) >= 0 {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Branch on greater than or equal zero and link. The link register is
// written before the compare, whether or not the branch is taken.
func (cpu *CPU) opBGEZAL(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	cpu.setReg(31, cpu.PC)
	if int32(cpu.regs[instr.Rs()]) >= 0 {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Branch on greater than zero.
func (cpu *CPU) opBGTZ(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	if int32(cpu.regs[instr.Rs()]) > 0 {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Branch on less than or equal zero.
func (cpu *CPU) opBLEZ(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	if int32(cpu.regs[instr.Rs()]) <= 0 {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Branch on less than zero.
func (cpu *CPU) opBLTZ(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	if int32(cpu.regs[instr.Rs()]) < 0 {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Branch on less than zero and link.
func (cpu *CPU) opBLTZAL(instr op.Instruction) cop0.Exception {
	cpu.branchDelay = true
	cpu.setReg(31, cpu.PC)
	if int32(cpu.regs[instr.Rs()]) < 0 {
		cpu.branch(instr.Immediate())
	}
	return noException
}

// Jump: 28 bit target replaces the low bits of PC, keeping the top 4.
func (cpu *CPU) opJ(instr op.Instruction) cop0.Exception {
	cpu.PC = (instr.Target() << 2) | (cpu.PC & 0xf000_0000)
	cpu.PC -= 4
	cpu.branchDelay = true
	return noException
}

// Jump and link. r31 gets the address after the delay slot.
func (cpu *CPU) opJAL(instr op.Instruction) cop0.Exception {
	cpu.setReg(31, cpu.PC+4)
	return cpu.opJ(instr)
}

// Jump register.
func (cpu *CPU) opJR(instr op.Instruction) cop0.Exception {
	cpu.PC = cpu.regs[instr.Rs()] - 4
	cpu.branchDelay = true
	return noException
}

// Jump and link register.
func (cpu *CPU) opJALR(instr op.Instruction) cop0.Exception {
	target := cpu.regs[instr.Rs()]
	cpu.setReg(31, cpu.PC+4)
	cpu.PC = target - 4
	cpu.branchDelay = true
	return noException
}

// System call trap.
func (cpu *CPU) opSYSCALL(_ op.Instruction) cop0.Exception {
	return cop0.ExcSyscall
}

// Breakpoint trap.
func (cpu *CPU) opBREAK(_ op.Instruction) cop0.Exception {
	return cop0.ExcBreakpoint
}

// Reserved instruction word.
func (cpu *CPU) opIllegal(_ op.Instruction) cop0.Exception {
	return cop0.ExcReservedInstr
}
