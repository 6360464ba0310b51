/*
   PSX: CPU state definitions.

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
	"log/slog"

	"github.com/rcornwell/PSX/emu/bus"
	"github.com/rcornwell/PSX/emu/cop0"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Sentinel for handlers that complete without raising an exception.
const noException cop0.Exception = 0xff

// Debug mask bits.
const (
	debugTrace = 1 << iota // Trace every executed instruction
)

type opFunc func(*CPU, op.Instruction) cop0.Exception

// CPU holds the execution state of the R3000 core.
type CPU struct {
	regs [32]uint32 // General registers, r0 reads as zero
	hi   uint32     // Division remainder / product high word
	lo   uint32     // Division quotient / product low word
	PC   uint32     // Program counter

	// The pipelined next instruction, paired with the address it was
	// fetched from. This is what makes branch delay slots fall out of
	// the step ordering.
	nextInstr op.Instruction
	nextPC    uint32

	// A pending register load from the previous instruction. Index 0
	// means none, since r0 is a write sink.
	loadReg uint32
	loadVal uint32

	branchDelay bool   // Latched by branch/jump handlers
	wait        uint32 // Idle cycles to burn before the next step
	cycles      uint64 // Executed instruction count

	cop0 *cop0.Cop0
	mem  bus.Device // The system bus, addressed virtually

	debugMsk int

	table [op.NumMnemonics]opFunc
}

// Create a CPU in its power-on state, attached to the given bus. The
// first fetch comes from the reset vector in the uncached BIOS mirror.
func New(mem bus.Device) *CPU {
	cpu := &CPU{
		PC:   cop0.ResetVector,
		cop0: cop0.New(),
		mem:  mem,
	}
	cpu.createTable()
	return cpu
}

// Registers returns a copy of the general register file for debuggers.
func (cpu *CPU) Registers() [32]uint32 {
	return cpu.regs
}

// HI returns the HI special register.
func (cpu *CPU) HI() uint32 {
	return cpu.hi
}

// LO returns the LO special register.
func (cpu *CPU) LO() uint32 {
	return cpu.lo
}

// Cycles returns the number of executed instructions.
func (cpu *CPU) Cycles() uint64 {
	return cpu.cycles
}

// Cop0 returns the system control coprocessor.
func (cpu *CPU) Cop0() *cop0.Cop0 {
	return cpu.cop0
}

// NextInstruction returns the pipelined instruction word and the
// address it was fetched from.
func (cpu *CPU) NextInstruction() (op.Instruction, uint32) {
	return cpu.nextInstr, cpu.nextPC
}

// SetDebug enables a debug option by name.
func (cpu *CPU) SetDebug(option string) bool {
	switch option {
	case "TRACE":
		cpu.debugMsk |= debugTrace
	default:
		return false
	}
	return true
}

// Write a general register. r0 stays zero.
func (cpu *CPU) setReg(reg uint32, data uint32) {
	cpu.regs[reg] = data
	cpu.regs[0] = 0
}

// Sign extend a 16 bit immediate to 32 bits.
func signExtend(imm uint32) uint32 {
	return uint32(int32(int16(imm)))
}

// Data load through the bus. While the cache is isolated reads would
// hit the (unimplemented) cache, so return zero instead of the bus.
func (cpu *CPU) read(w bus.Width, addr uint32) uint32 {
	if cpu.cop0.IsCacheIsolated() {
		slog.Warn("cpu: read while cache isolated, returning 0")
		return 0
	}
	return cpu.mem.Read(w, addr)
}

// Data store through the bus. Isolated stores land in the cache and
// are dropped here.
func (cpu *CPU) write(w bus.Width, addr uint32, data uint32) {
	if cpu.cop0.IsCacheIsolated() {
		slog.Debug("cpu: store dropped, cache isolated")
		return
	}
	cpu.mem.Write(w, addr, data)
}

// Deposit a pipelined load for write-back after the next instruction
// executes.
func (cpu *CPU) pendLoad(reg uint32, data uint32) {
	cpu.loadReg = reg
	cpu.loadVal = data
}

func (cpu *CPU) createTable() {
	cpu.table = [op.NumMnemonics]opFunc{
		op.ADD:     (*CPU).opADD,
		op.ADDI:    (*CPU).opADDI,
		op.ADDIU:   (*CPU).opADDIU,
		op.ADDU:    (*CPU).opADDU,
		op.AND:     (*CPU).opAND,
		op.ANDI:    (*CPU).opANDI,
		op.BEQ:     (*CPU).opBEQ,
		op.BGEZ:    (*CPU).opBGEZ,
		op.BGEZAL:  (*CPU).opBGEZAL,
		op.BGTZ:    (*CPU).opBGTZ,
		op.BLEZ:    (*CPU).opBLEZ,
		op.BLTZ:    (*CPU).opBLTZ,
		op.BLTZAL:  (*CPU).opBLTZAL,
		op.BNE:     (*CPU).opBNE,
		op.BREAK:   (*CPU).opBREAK,
		op.CFC:     (*CPU).opCFC,
		op.COP:     (*CPU).opCOP,
		op.CTC:     (*CPU).opCTC,
		op.DIV:     (*CPU).opDIV,
		op.DIVU:    (*CPU).opDIVU,
		op.J:       (*CPU).opJ,
		op.JAL:     (*CPU).opJAL,
		op.JALR:    (*CPU).opJALR,
		op.JR:      (*CPU).opJR,
		op.LB:      (*CPU).opLB,
		op.LBU:     (*CPU).opLBU,
		op.LH:      (*CPU).opLH,
		op.LHU:     (*CPU).opLHU,
		op.LUI:     (*CPU).opLUI,
		op.LW:      (*CPU).opLW,
		op.LWC:     (*CPU).opLWC,
		op.LWL:     (*CPU).opLWL,
		op.LWR:     (*CPU).opLWR,
		op.MFC:     (*CPU).opMFC,
		op.MFHI:    (*CPU).opMFHI,
		op.MFLO:    (*CPU).opMFLO,
		op.MTC:     (*CPU).opMTC,
		op.MTHI:    (*CPU).opMTHI,
		op.MTLO:    (*CPU).opMTLO,
		op.MULT:    (*CPU).opMULT,
		op.MULTU:   (*CPU).opMULTU,
		op.NOR:     (*CPU).opNOR,
		op.OR:      (*CPU).opOR,
		op.ORI:     (*CPU).opORI,
		op.SB:      (*CPU).opSB,
		op.SH:      (*CPU).opSH,
		op.SLL:     (*CPU).opSLL,
		op.SLLV:    (*CPU).opSLLV,
		op.SLT:     (*CPU).opSLT,
		op.SLTI:    (*CPU).opSLTI,
		op.SLTIU:   (*CPU).opSLTIU,
		op.SLTU:    (*CPU).opSLTU,
		op.SRA:     (*CPU).opSRA,
		op.SRAV:    (*CPU).opSRAV,
		op.SRL:     (*CPU).opSRL,
		op.SRLV:    (*CPU).opSRLV,
		op.SUB:     (*CPU).opSUB,
		op.SUBU:    (*CPU).opSUBU,
		op.SW:      (*CPU).opSW,
		op.SWC:     (*CPU).opSWC,
		op.SWL:     (*CPU).opSWL,
		op.SWR:     (*CPU).opSWR,
		op.SYSCALL: (*CPU).opSYSCALL,
		op.XOR:     (*CPU).opXOR,
		op.XORI:    (*CPU).opXORI,
		op.Illegal: (*CPU).opIllegal,
	}
}
