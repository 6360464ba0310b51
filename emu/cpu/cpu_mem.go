/*
   PSX: load and store instructions.

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
	"github.com/rcornwell/PSX/emu/bus"
	"github.com/rcornwell/PSX/emu/cop0"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Effective address for loads and stores: base register plus sign
// extended displacement.
func (cpu *CPU) effAddr(instr op.Instruction) uint32 {
	return cpu.regs[instr.Rs()] + signExtend(instr.Immediate())
}

// Load byte, sign extended.
func (cpu *CPU) opLB(instr op.Instruction) cop0.Exception {
	data := cpu.read(bus.Byte, cpu.effAddr(instr))
	cpu.pendLoad(instr.Rt(), uint32(int32(int8(data))))
	return noException
}

// Load byte unsigned.
func (cpu *CPU) opLBU(instr op.Instruction) cop0.Exception {
	data := cpu.read(bus.Byte, cpu.effAddr(instr))
	cpu.pendLoad(instr.Rt(), data)
	return noException
}

// Load half word, sign extended.
func (cpu *CPU) opLH(instr op.Instruction) cop0.Exception {
	data := cpu.read(bus.Half, cpu.effAddr(instr))
	cpu.pendLoad(instr.Rt(), uint32(int32(int16(data))))
	return noException
}

// Load half word unsigned.
func (cpu *CPU) opLHU(instr op.Instruction) cop0.Exception {
	data := cpu.read(bus.Half, cpu.effAddr(instr))
	cpu.pendLoad(instr.Rt(), data)
	return noException
}

// Load word.
func (cpu *CPU) opLW(instr op.Instruction) cop0.Exception {
	data := cpu.read(bus.Word, cpu.effAddr(instr))
	cpu.pendLoad(instr.Rt(), data)
	return noException
}

// Load word left: merge the high bytes of an unaligned word into the
// register. Bypasses the load delay; the write-back is immediate.
func (cpu *CPU) opLWL(instr op.Instruction) cop0.Exception {
	addr := cpu.effAddr(instr)
	current := cpu.regs[instr.Rt()]
	aligned := cpu.read(bus.Word, addr&^uint32(3))

	var data uint32
	switch addr & 3 {
	case 0:
		data = (current & 0x00ff_ffff) | (aligned << 24)
	case 1:
		data = (current & 0x0000_ffff) | (aligned << 16)
	case 2:
		data = (current & 0x0000_00ff) | (aligned << 8)
	case 3:
		data = aligned
	}
	cpu.setReg(instr.Rt(), data)
	return noException
}

// Load word right: merge the low bytes of an unaligned word. Bypasses
// the load delay like LWL.
func (cpu *CPU) opLWR(instr op.Instruction) cop0.Exception {
	addr := cpu.effAddr(instr)
	current := cpu.regs[instr.Rt()]
	aligned := cpu.read(bus.Word, addr&^uint32(3))

	var data uint32
	switch addr & 3 {
	case 0:
		data = aligned
	case 1:
		data = (current & 0xff00_0000) | (aligned >> 8)
	case 2:
		data = (current & 0xffff_0000) | (aligned >> 16)
	case 3:
		data = (current & 0xffff_ff00) | (aligned >> 24)
	}
	cpu.setReg(instr.Rt(), data)
	return noException
}

// Store byte.
func (cpu *CPU) opSB(instr op.Instruction) cop0.Exception {
	cpu.write(bus.Byte, cpu.effAddr(instr), cpu.regs[instr.Rt()]&0xff)
	return noException
}

// Store half word.
func (cpu *CPU) opSH(instr op.Instruction) cop0.Exception {
	cpu.write(bus.Half, cpu.effAddr(instr), cpu.regs[instr.Rt()]&0xffff)
	return noException
}

// Store word.
func (cpu *CPU) opSW(instr op.Instruction) cop0.Exception {
	cpu.write(bus.Word, cpu.effAddr(instr), cpu.regs[instr.Rt()])
	return noException
}

// Store word left: store the high bytes of the register into an
// unaligned word.
func (cpu *CPU) opSWL(instr op.Instruction) cop0.Exception {
	addr := cpu.effAddr(instr)
	reg := cpu.regs[instr.Rt()]
	current := cpu.read(bus.Word, addr&^uint32(3))

	var data uint32
	switch addr & 3 {
	case 0:
		data = (current & 0xffff_ff00) | (reg >> 24)
	case 1:
		data = (current & 0xffff_0000) | (reg >> 16)
	case 2:
		data = (current & 0xff00_0000) | (reg >> 8)
	case 3:
		data = reg
	}
	cpu.write(bus.Word, addr&^uint32(3), data)
	return noException
}

// Store word right: store the low bytes of the register into an
// unaligned word.
func (cpu *CPU) opSWR(instr op.Instruction) cop0.Exception {
	addr := cpu.effAddr(instr)
	reg := cpu.regs[instr.Rt()]
	current := cpu.read(bus.Word, addr&^uint32(3))

	var data uint32
	switch addr & 3 {
	case 0:
		data = reg
	case 1:
		data = (current & 0x0000_00ff) | (reg << 8)
	case 2:
		data = (current & 0x0000_ffff) | (reg << 16)
	case 3:
		data = (current & 0x00ff_ffff) | (reg << 24)
	}
	cpu.write(bus.Word, addr&^uint32(3), data)
	return noException
}
