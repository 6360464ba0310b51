/*
   PSX MIPS-I Disassembler.

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

package disassemble

import (
	"fmt"

	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Operand format of each mnemonic.
const (
	tyReg    = 1 + iota // rd, rs, rt
	tyImm               // rt, rs, imm
	tyBus               // rt, imm(rs)
	tyBranch            // rs, imm
	tyMath              // rs, rt
	tyShift             // rd, rt, shamt
	tyJump              // 26 bit target
	tyMoveHL            // rd only
	tyMoveRS            // rs only
	tyBare              // no operands
	tyCop               // coprocessor move
	tyCopOp             // coprocessor operation
	tyCopBus            // coprocessor load/store
)

var opFormat = map[op.Mnemonic]int{
	op.ADD: tyReg, op.ADDU: tyReg, op.SUB: tyReg, op.SUBU: tyReg,
	op.AND: tyReg, op.OR: tyReg, op.XOR: tyReg, op.NOR: tyReg,
	op.SLT: tyReg, op.SLTU: tyReg,
	op.SLLV: tyReg, op.SRLV: tyReg, op.SRAV: tyReg,

	op.ADDI: tyImm, op.ADDIU: tyImm, op.ANDI: tyImm, op.ORI: tyImm,
	op.XORI: tyImm, op.SLTI: tyImm, op.SLTIU: tyImm,

	op.LB: tyBus, op.LBU: tyBus, op.LH: tyBus, op.LHU: tyBus,
	op.LW: tyBus, op.LWL: tyBus, op.LWR: tyBus,
	op.SB: tyBus, op.SH: tyBus, op.SW: tyBus, op.SWL: tyBus, op.SWR: tyBus,

	op.BEQ: tyBranch, op.BNE: tyBranch, op.BGEZ: tyBranch,
	op.BGEZAL: tyBranch, op.BGTZ: tyBranch, op.BLEZ: tyBranch,
	op.BLTZ: tyBranch, op.BLTZAL: tyBranch,

	op.MULT: tyMath, op.MULTU: tyMath, op.DIV: tyMath, op.DIVU: tyMath,

	op.SLL: tyShift, op.SRL: tyShift, op.SRA: tyShift,

	op.J: tyJump, op.JAL: tyJump,

	op.MFHI: tyMoveHL, op.MFLO: tyMoveHL,
	op.MTHI: tyMoveRS, op.MTLO: tyMoveRS, op.JR: tyMoveRS,

	op.SYSCALL: tyBare, op.BREAK: tyBare, op.Illegal: tyBare,

	op.MTC: tyCop, op.MFC: tyCop, op.CTC: tyCop, op.CFC: tyCop,
	op.COP: tyCopOp,
	op.LWC: tyCopBus, op.SWC: tyCopBus,
}

// Disassemble renders a decoded instruction word as assembler text.
func Disassemble(mnemonic op.Mnemonic, instr op.Instruction) string {
	switch opFormat[mnemonic] {
	case tyReg:
		return fmt.Sprintf("%s %s, %s, %s", mnemonic,
			op.RegName(instr.Rd()), op.RegName(instr.Rs()), op.RegName(instr.Rt()))
	case tyImm:
		return fmt.Sprintf("%s %s, %s, %d", mnemonic,
			op.RegName(instr.Rt()), op.RegName(instr.Rs()), int16(instr.Immediate()))
	case tyBus:
		return fmt.Sprintf("%s %s, %d(%s)", mnemonic,
			op.RegName(instr.Rt()), int16(instr.Immediate()), op.RegName(instr.Rs()))
	case tyBranch:
		switch mnemonic {
		case op.BEQ, op.BNE:
			return fmt.Sprintf("%s %s, %s, %d", mnemonic,
				op.RegName(instr.Rs()), op.RegName(instr.Rt()), int16(instr.Immediate()))
		default:
			return fmt.Sprintf("%s %s, %d", mnemonic,
				op.RegName(instr.Rs()), int16(instr.Immediate()))
		}
	case tyMath:
		return fmt.Sprintf("%s %s, %s", mnemonic,
			op.RegName(instr.Rs()), op.RegName(instr.Rt()))
	case tyShift:
		return fmt.Sprintf("%s %s, %s, %d", mnemonic,
			op.RegName(instr.Rd()), op.RegName(instr.Rt()), instr.Shamt())
	case tyJump:
		return fmt.Sprintf("%s 0x%07x", mnemonic, instr.Target()<<2)
	case tyMoveHL:
		return fmt.Sprintf("%s %s", mnemonic, op.RegName(instr.Rd()))
	case tyMoveRS:
		return fmt.Sprintf("%s %s", mnemonic, op.RegName(instr.Rs()))
	case tyCop:
		return fmt.Sprintf("%s%d %s, $%d", mnemonic, instr.Op()&0b11,
			op.RegName(instr.Rt()), instr.Rd())
	case tyCopOp:
		return fmt.Sprintf("%s%d 0x%07x", mnemonic, instr.Op()&0b11,
			uint32(instr)&0x01ff_ffff)
	case tyCopBus:
		return fmt.Sprintf("%s%d $%d, %d(%s)", mnemonic, instr.Op()&0b11,
			instr.Rt(), int16(instr.Immediate()), op.RegName(instr.Rs()))
	default:
		// JALR is the only two register jump.
		if mnemonic == op.JALR {
			return fmt.Sprintf("%s %s, %s", mnemonic,
				op.RegName(instr.Rd()), op.RegName(instr.Rs()))
		}
		if mnemonic == op.LUI {
			return fmt.Sprintf("%s %s, 0x%04x", mnemonic,
				op.RegName(instr.Rt()), instr.Immediate())
		}
		return mnemonic.String()
	}
}
