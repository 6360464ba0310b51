/*
   CPU: main CPU instruction fetch and execute.

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
	dis "github.com/rcornwell/PSX/emu/disassemble"
	op "github.com/rcornwell/PSX/emu/opcodemap"
	"github.com/rcornwell/PSX/util/debug"
)

/*
   The R3000 in the PlayStation is a MIPS-I core with a five stage
   pipeline. The pipeline itself is invisible to software except for
   two hazards it leaks:

   Branch delay slots. The instruction after a branch or jump always
   executes before control transfers. The core models this by fetching
   one instruction ahead: a branch handler rewrites PC while the word
   after it already sits in the pipeline latch.

   Load delay slots. A loaded register keeps its old value for one more
   instruction. Load handlers deposit the value as a pending load that
   is written back only after the following instruction executes.

   Faithfully keeping the order fetch-next, execute, write-back-load is
   all that is needed; modeling the five stages buys nothing.
*/

// Tick either burns one wait cycle, reporting false, or executes a
// single instruction and reports true.
func (cpu *CPU) Tick() bool {
	if cpu.wait > 0 {
		cpu.wait--
		return false
	}
	cpu.Step()
	return true
}

// Step unconditionally advances the CPU by one instruction.
func (cpu *CPU) Step() {
	current := cpu.nextInstr
	currentPC := cpu.nextPC

	// Fetch one ahead. This must happen before the handler runs so a
	// branch leaves the delay slot word in the pipeline.
	cpu.nextInstr = op.Instruction(cpu.mem.Read(bus.Word, cpu.PC))
	cpu.nextPC = cpu.PC

	delaySlot := cpu.branchDelay
	cpu.branchDelay = false

	// Take the pipelined load out of its slot. It is written back only
	// after the execute below, so the instruction following a load
	// still sees the old register value.
	loadReg, loadVal := cpu.loadReg, cpu.loadVal
	cpu.loadReg, cpu.loadVal = 0, 0

	mnemonic := op.Decode(current)
	if (cpu.debugMsk & debugTrace) != 0 {
		debug.Debugf("CPU", cpu.debugMsk, debugTrace, "%08x %08x %s",
			currentPC, uint32(current), dis.Disassemble(mnemonic, current))
	}

	exc := cpu.table[mnemonic](cpu, current)
	cpu.cycles++

	// The load from the previous instruction lands now.
	cpu.regs[loadReg] = loadVal
	cpu.regs[0] = 0

	if exc == noException {
		cpu.PC += 4
		return
	}

	// Exception: flush the pending load, let cop0 pick the vector and
	// restart the pipeline from it.
	cpu.loadReg, cpu.loadVal = 0, 0
	vector := cpu.cop0.Enter(exc, currentPC, delaySlot)
	cpu.nextInstr = op.Instruction(cpu.mem.Read(bus.Word, vector))
	cpu.nextPC = vector
	cpu.PC = vector + 4
}
