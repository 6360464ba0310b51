/*
   PSX: MIPS-I instruction word and opcode classification.

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

package opcodemap

import "fmt"

// Instruction is a raw 32 bit MIPS-I instruction word with bit field
// accessors for each encoding format.
type Instruction uint32

// Bit field masks.
const (
	partOp        uint32 = 0xfc00_0000
	partRs        uint32 = 0x03e0_0000
	partRt        uint32 = 0x001f_0000
	partRd        uint32 = 0x0000_f800
	partShamt     uint32 = 0x0000_07c0
	partFunct     uint32 = 0x0000_003f
	partImmediate uint32 = 0x0000_ffff
	partTarget    uint32 = 0x03ff_ffff
)

// Op returns the primary opcode, bits 31..26.
func (i Instruction) Op() uint32 {
	return (uint32(i) & partOp) >> 26
}

// Rs returns the source register index, bits 25..21.
func (i Instruction) Rs() uint32 {
	return (uint32(i) & partRs) >> 21
}

// Rt returns the target register index, bits 20..16.
func (i Instruction) Rt() uint32 {
	return (uint32(i) & partRt) >> 16
}

// Rd returns the destination register index, bits 15..11.
func (i Instruction) Rd() uint32 {
	return (uint32(i) & partRd) >> 11
}

// Shamt returns the shift amount, bits 10..6.
func (i Instruction) Shamt() uint32 {
	return (uint32(i) & partShamt) >> 6
}

// Funct returns the secondary function code, bits 5..0.
func (i Instruction) Funct() uint32 {
	return uint32(i) & partFunct
}

// Immediate returns the unsigned 16 bit immediate, bits 15..0.
func (i Instruction) Immediate() uint32 {
	return uint32(i) & partImmediate
}

// Target returns the 26 bit jump target, bits 25..0.
func (i Instruction) Target() uint32 {
	return uint32(i) & partTarget
}

// Mnemonic classifies an instruction word. Illegal is the sentinel for
// words outside the defined encoding; it raises a reserved instruction
// exception at execute time.
type Mnemonic int

const (
	ADD Mnemonic = iota
	ADDI
	ADDIU
	ADDU
	AND
	ANDI
	BEQ
	BGEZ
	BGEZAL
	BGTZ
	BLEZ
	BLTZ
	BLTZAL
	BNE
	BREAK
	CFC
	COP
	CTC
	DIV
	DIVU
	J
	JAL
	JALR
	JR
	LB
	LBU
	LH
	LHU
	LUI
	LW
	LWC
	LWL
	LWR
	MFC
	MFHI
	MFLO
	MTC
	MTHI
	MTLO
	MULT
	MULTU
	NOR
	OR
	ORI
	SB
	SH
	SLL
	SLLV
	SLT
	SLTI
	SLTIU
	SLTU
	SRA
	SRAV
	SRL
	SRLV
	SUB
	SUBU
	SW
	SWC
	SWL
	SWR
	SYSCALL
	XOR
	XORI
	Illegal

	// NumMnemonics sizes dispatch tables.
	NumMnemonics = int(Illegal) + 1
)

var mnemonicNames = [NumMnemonics]string{
	"ADD", "ADDI", "ADDIU", "ADDU", "AND", "ANDI", "BEQ", "BGEZ",
	"BGEZAL", "BGTZ", "BLEZ", "BLTZ", "BLTZAL", "BNE", "BREAK", "CFC",
	"COP", "CTC", "DIV", "DIVU", "J", "JAL", "JALR", "JR", "LB", "LBU",
	"LH", "LHU", "LUI", "LW", "LWC", "LWL", "LWR", "MFC", "MFHI", "MFLO",
	"MTC", "MTHI", "MTLO", "MULT", "MULTU", "NOR", "OR", "ORI", "SB",
	"SH", "SLL", "SLLV", "SLT", "SLTI", "SLTIU", "SLTU", "SRA", "SRAV",
	"SRL", "SRLV", "SUB", "SUBU", "SW", "SWC", "SWL", "SWR", "SYSCALL",
	"XOR", "XORI", "ILLEGAL",
}

func (m Mnemonic) String() string {
	return mnemonicNames[m]
}

// Conventional MIPS register names, indexed by register number.
var regNames = [32]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

// RegName returns the conventional assembler name for a register.
func RegName(reg uint32) string {
	return regNames[reg&0x1f]
}

// Primary opcodes.
const (
	opSpecial = 0o00
	opRegimm  = 0o01
	opJ       = 0o02
	opJAL     = 0o03
	opBEQ     = 0o04
	opBNE     = 0o05
	opBLEZ    = 0o06
	opBGTZ    = 0o07
	opADDI    = 0o10
	opADDIU   = 0o11
	opSLTI    = 0o12
	opSLTIU   = 0o13
	opANDI    = 0o14
	opORI     = 0o15
	opXORI    = 0o16
	opLUI     = 0o17
	opLB      = 0o40
	opLH      = 0o41
	opLWL     = 0o42
	opLW      = 0o43
	opLBU     = 0o44
	opLHU     = 0o45
	opLWR     = 0o46
	opSB      = 0o50
	opSH      = 0o51
	opSWL     = 0o52
	opSW      = 0o53
	opSWR     = 0o56

	// Coprocessor families, matched on op>>2.
	opGroupCop = 0b0100
	opGroupLWC = 0b1100
	opGroupSWC = 0b1110
)

// SPECIAL function codes.
const (
	functSLL     = 0o00
	functSRL     = 0o02
	functSRA     = 0o03
	functSLLV    = 0o04
	functSRLV    = 0o06
	functSRAV    = 0o07
	functJR      = 0o10
	functJALR    = 0o11
	functSYSCALL = 0o14
	functBREAK   = 0o15
	functMFHI    = 0o20
	functMTHI    = 0o21
	functMFLO    = 0o22
	functMTLO    = 0o23
	functMULT    = 0o30
	functMULTU   = 0o31
	functDIV     = 0o32
	functDIVU    = 0o33
	functADD     = 0o40
	functADDU    = 0o41
	functSUB     = 0o42
	functSUBU    = 0o43
	functAND     = 0o44
	functOR      = 0o45
	functXOR     = 0o46
	functNOR     = 0o47
	functSLT     = 0o52
	functSLTU    = 0o53
)

// REGIMM rt codes.
const (
	rtBLTZ   = 0b00000
	rtBGEZ   = 0b00001
	rtBLTZAL = 0b10000
	rtBGEZAL = 0b10001
)

// COPz rs codes.
const (
	rsMFC = 0b00000
	rsCFC = 0b00010
	rsMTC = 0b00100
	rsCOP = 0b10000
)

var functMap = map[uint32]Mnemonic{
	functSLL: SLL, functSRL: SRL, functSRA: SRA,
	functSLLV: SLLV, functSRLV: SRLV, functSRAV: SRAV,
	functJR: JR, functJALR: JALR,
	functSYSCALL: SYSCALL, functBREAK: BREAK,
	functMFHI: MFHI, functMTHI: MTHI, functMFLO: MFLO, functMTLO: MTLO,
	functMULT: MULT, functMULTU: MULTU, functDIV: DIV, functDIVU: DIVU,
	functADD: ADD, functADDU: ADDU, functSUB: SUB, functSUBU: SUBU,
	functAND: AND, functOR: OR, functXOR: XOR, functNOR: NOR,
	functSLT: SLT, functSLTU: SLTU,
}

var opMap = map[uint32]Mnemonic{
	opJ: J, opJAL: JAL, opBEQ: BEQ, opBNE: BNE, opBLEZ: BLEZ,
	opBGTZ: BGTZ, opADDI: ADDI, opADDIU: ADDIU, opSLTI: SLTI,
	opSLTIU: SLTIU, opANDI: ANDI, opORI: ORI, opXORI: XORI, opLUI: LUI,
	opLB: LB, opLH: LH, opLWL: LWL, opLW: LW, opLBU: LBU, opLHU: LHU,
	opLWR: LWR, opSB: SB, opSH: SH, opSWL: SWL, opSW: SW, opSWR: SWR,
}

// Decode classifies an instruction word. Undefined words in the direct
// opcode space decode as Illegal and raise a reserved instruction
// exception when executed; malformed SPECIAL/REGIMM/COPz encodings are
// fatal since nothing legitimate produces them.
func Decode(i Instruction) Mnemonic {
	op := i.Op()
	switch {
	case op == opSpecial:
		m, ok := functMap[i.Funct()]
		if !ok {
			panic(fmt.Sprintf("illegal funct %02o in %08x", i.Funct(), uint32(i)))
		}
		return m
	case op == opRegimm:
		switch i.Rt() {
		case rtBLTZ:
			return BLTZ
		case rtBGEZ:
			return BGEZ
		case rtBLTZAL:
			return BLTZAL
		case rtBGEZAL:
			return BGEZAL
		default:
			panic(fmt.Sprintf("illegal regimm rt %02x in %08x", i.Rt(), uint32(i)))
		}
	case op>>2 == opGroupCop:
		switch i.Rs() {
		case rsCOP:
			return COP
		case rsCFC:
			return CFC
		case rsMFC:
			return MFC
		case rsMTC:
			return MTC
		default:
			panic(fmt.Sprintf("invalid coprocessor instruction: %08x", uint32(i)))
		}
	case op>>2 == opGroupLWC:
		return LWC
	case op>>2 == opGroupSWC:
		return SWC
	default:
		if m, ok := opMap[op]; ok {
			return m
		}
		return Illegal
	}
}
