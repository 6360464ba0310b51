/*
   PSX MIPS-I assembler, used by the monitor to deposit instructions.

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

package assemble

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand formats. These mirror the disassembler so its output
// assembles back to the same word.
const (
	tyReg    = 1 + iota // rd, rs, rt
	tyImm               // rt, rs, imm
	tyBus               // rt, imm(rs)
	tyBranch            // rs, imm or rs, rt, imm
	tyMath              // rs, rt
	tyShift             // rd, rt, shamt
	tyJump              // absolute target address
	tyMoveHL            // rd
	tyMoveRS            // rs
	tyBare              // no operands
	tyJALR              // rd, rs
	tyLUI               // rt, imm
	tyCop0              // rt, $rd cop0 move
)

type opcode struct {
	opType int    // Operand format.
	base   uint32 // Fixed bits of the word.
}

// SPECIAL encodings carry their funct in the base word; immediate
// forms carry op<<26.
var opMap = map[string]opcode{
	"ADD":     {tyReg, 0x0000_0020},
	"ADDU":    {tyReg, 0x0000_0021},
	"SUB":     {tyReg, 0x0000_0022},
	"SUBU":    {tyReg, 0x0000_0023},
	"AND":     {tyReg, 0x0000_0024},
	"OR":      {tyReg, 0x0000_0025},
	"XOR":     {tyReg, 0x0000_0026},
	"NOR":     {tyReg, 0x0000_0027},
	"SLT":     {tyReg, 0x0000_002a},
	"SLTU":    {tyReg, 0x0000_002b},
	"SLLV":    {tyReg, 0x0000_0004},
	"SRLV":    {tyReg, 0x0000_0006},
	"SRAV":    {tyReg, 0x0000_0007},
	"ADDI":    {tyImm, 0x2000_0000},
	"ADDIU":   {tyImm, 0x2400_0000},
	"SLTI":    {tyImm, 0x2800_0000},
	"SLTIU":   {tyImm, 0x2c00_0000},
	"ANDI":    {tyImm, 0x3000_0000},
	"ORI":     {tyImm, 0x3400_0000},
	"XORI":    {tyImm, 0x3800_0000},
	"LB":      {tyBus, 0x8000_0000},
	"LH":      {tyBus, 0x8400_0000},
	"LWL":     {tyBus, 0x8800_0000},
	"LW":      {tyBus, 0x8c00_0000},
	"LBU":     {tyBus, 0x9000_0000},
	"LHU":     {tyBus, 0x9400_0000},
	"LWR":     {tyBus, 0x9800_0000},
	"SB":      {tyBus, 0xa000_0000},
	"SH":      {tyBus, 0xa400_0000},
	"SWL":     {tyBus, 0xa800_0000},
	"SW":      {tyBus, 0xac00_0000},
	"SWR":     {tyBus, 0xb800_0000},
	"BEQ":     {tyBranch, 0x1000_0000},
	"BNE":     {tyBranch, 0x1400_0000},
	"BLEZ":    {tyBranch, 0x1800_0000},
	"BGTZ":    {tyBranch, 0x1c00_0000},
	"BLTZ":    {tyBranch, 0x0400_0000},
	"BGEZ":    {tyBranch, 0x0401_0000},
	"BLTZAL":  {tyBranch, 0x0410_0000},
	"BGEZAL":  {tyBranch, 0x0411_0000},
	"MULT":    {tyMath, 0x0000_0018},
	"MULTU":   {tyMath, 0x0000_0019},
	"DIV":     {tyMath, 0x0000_001a},
	"DIVU":    {tyMath, 0x0000_001b},
	"SLL":     {tyShift, 0x0000_0000},
	"SRL":     {tyShift, 0x0000_0002},
	"SRA":     {tyShift, 0x0000_0003},
	"J":       {tyJump, 0x0800_0000},
	"JAL":     {tyJump, 0x0c00_0000},
	"MFHI":    {tyMoveHL, 0x0000_0010},
	"MFLO":    {tyMoveHL, 0x0000_0012},
	"MTHI":    {tyMoveRS, 0x0000_0011},
	"MTLO":    {tyMoveRS, 0x0000_0013},
	"JR":      {tyMoveRS, 0x0000_0008},
	"JALR":    {tyJALR, 0x0000_0009},
	"LUI":     {tyLUI, 0x3c00_0000},
	"SYSCALL": {tyBare, 0x0000_000c},
	"BREAK":   {tyBare, 0x0000_000d},
	"NOP":     {tyBare, 0x0000_0000},
	"RFE":     {tyBare, 0x4200_0010},
	"MFC0":    {tyCop0, 0x4000_0000},
	"MTC0":    {tyCop0, 0x4080_0000},
}

var regMap = map[string]uint32{
	"$zero": 0, "$at": 1, "$v0": 2, "$v1": 3,
	"$a0": 4, "$a1": 5, "$a2": 6, "$a3": 7,
	"$t0": 8, "$t1": 9, "$t2": 10, "$t3": 11,
	"$t4": 12, "$t5": 13, "$t6": 14, "$t7": 15,
	"$s0": 16, "$s1": 17, "$s2": 18, "$s3": 19,
	"$s4": 20, "$s5": 21, "$s6": 22, "$s7": 23,
	"$t8": 24, "$t9": 25, "$k0": 26, "$k1": 27,
	"$gp": 28, "$sp": 29, "$fp": 30, "$ra": 31,
}

// Parse a register operand, by name or as $N.
func parseReg(word string) (uint32, error) {
	if reg, ok := regMap[strings.ToLower(word)]; ok {
		return reg, nil
	}
	if strings.HasPrefix(word, "$") {
		n, err := strconv.ParseUint(word[1:], 10, 5)
		if err == nil {
			return uint32(n), nil
		}
	}
	return 0, fmt.Errorf("bad register: %s", word)
}

// Parse a numeric operand: decimal with optional sign, or 0x hex.
func parseNum(word string) (uint32, error) {
	neg := strings.HasPrefix(word, "-")
	if neg {
		word = word[1:]
	}
	base := 10
	if strings.HasPrefix(word, "0x") || strings.HasPrefix(word, "0X") {
		word = word[2:]
		base = 16
	}
	value, err := strconv.ParseUint(word, base, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number: %s", word)
	}
	if neg {
		return uint32(-int64(value)), nil
	}
	return uint32(value), nil
}

// Instruction field positions.
func fldRs(reg uint32) uint32 { return reg << 21 }
func fldRt(reg uint32) uint32 { return reg << 16 }
func fldRd(reg uint32) uint32 { return reg << 11 }

// Assemble one instruction statement into a word.
func Assemble(statement string) (uint32, error) {
	fields := strings.FieldsFunc(statement, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty statement")
	}
	mnemonic := strings.ToUpper(fields[0])
	operands := fields[1:]

	entry, ok := opMap[mnemonic]
	if !ok {
		return 0, fmt.Errorf("unknown mnemonic: %s", mnemonic)
	}

	need := map[int]int{
		tyReg: 3, tyImm: 3, tyBus: 2, tyMath: 2, tyShift: 3,
		tyJump: 1, tyMoveHL: 1, tyMoveRS: 1, tyBare: 0, tyJALR: 2,
		tyLUI: 2, tyCop0: 2,
	}[entry.opType]
	if entry.opType == tyBranch {
		need = len(operands) // checked per mnemonic below
	}
	if len(operands) != need {
		return 0, fmt.Errorf("%s takes %d operands", mnemonic, need)
	}

	word := entry.base
	switch entry.opType {
	case tyReg:
		rd, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		rs, err := parseReg(operands[1])
		if err != nil {
			return 0, err
		}
		rt, err := parseReg(operands[2])
		if err != nil {
			return 0, err
		}
		return word | fldRd(rd) | fldRs(rs) | fldRt(rt), nil

	case tyImm:
		rt, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		rs, err := parseReg(operands[1])
		if err != nil {
			return 0, err
		}
		imm, err := parseNum(operands[2])
		if err != nil {
			return 0, err
		}
		return word | fldRt(rt) | fldRs(rs) | (imm & 0xffff), nil

	case tyBus:
		rt, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		imm, rs, err := parseBusOperand(operands[1])
		if err != nil {
			return 0, err
		}
		return word | fldRt(rt) | fldRs(rs) | (imm & 0xffff), nil

	case tyBranch:
		rs, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		// BEQ/BNE compare two registers; the rest encode the compare
		// in the rt field of the base word.
		if mnemonic == "BEQ" || mnemonic == "BNE" {
			if len(operands) != 3 {
				return 0, fmt.Errorf("%s takes 3 operands", mnemonic)
			}
			rt, err := parseReg(operands[1])
			if err != nil {
				return 0, err
			}
			imm, err := parseNum(operands[2])
			if err != nil {
				return 0, err
			}
			return word | fldRs(rs) | fldRt(rt) | (imm & 0xffff), nil
		}
		if len(operands) != 2 {
			return 0, fmt.Errorf("%s takes 2 operands", mnemonic)
		}
		imm, err := parseNum(operands[1])
		if err != nil {
			return 0, err
		}
		return word | fldRs(rs) | (imm & 0xffff), nil

	case tyMath:
		rs, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		rt, err := parseReg(operands[1])
		if err != nil {
			return 0, err
		}
		return word | fldRs(rs) | fldRt(rt), nil

	case tyShift:
		rd, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		rt, err := parseReg(operands[1])
		if err != nil {
			return 0, err
		}
		shamt, err := parseNum(operands[2])
		if err != nil {
			return 0, err
		}
		if shamt > 31 {
			return 0, fmt.Errorf("shift amount too large: %d", shamt)
		}
		return word | fldRd(rd) | fldRt(rt) | (shamt << 6), nil

	case tyJump:
		target, err := parseNum(operands[0])
		if err != nil {
			return 0, err
		}
		if target&3 != 0 {
			return 0, fmt.Errorf("jump target not word aligned: %08x", target)
		}
		return word | ((target >> 2) & 0x03ff_ffff), nil

	case tyMoveHL:
		rd, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		return word | fldRd(rd), nil

	case tyMoveRS:
		rs, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		return word | fldRs(rs), nil

	case tyJALR:
		rd, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		rs, err := parseReg(operands[1])
		if err != nil {
			return 0, err
		}
		return word | fldRd(rd) | fldRs(rs), nil

	case tyLUI:
		rt, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		imm, err := parseNum(operands[1])
		if err != nil {
			return 0, err
		}
		return word | fldRt(rt) | (imm & 0xffff), nil

	case tyCop0:
		rt, err := parseReg(operands[0])
		if err != nil {
			return 0, err
		}
		// Cop0 registers are bare $N.
		rd, err := parseReg(operands[1])
		if err != nil {
			return 0, err
		}
		return word | fldRt(rt) | fldRd(rd), nil

	default:
		return word, nil
	}
}

// Parse the imm($reg) operand of a load or store.
func parseBusOperand(operand string) (uint32, uint32, error) {
	open := strings.IndexByte(operand, '(')
	if open < 0 || !strings.HasSuffix(operand, ")") {
		return 0, 0, fmt.Errorf("bad memory operand: %s", operand)
	}
	imm := uint32(0)
	if open > 0 {
		var err error
		imm, err = parseNum(operand[:open])
		if err != nil {
			return 0, 0, err
		}
	}
	rs, err := parseReg(operand[open+1 : len(operand)-1])
	if err != nil {
		return 0, 0, err
	}
	return imm, rs, nil
}
