/*
   PSX: instruction word and decoder tests.

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

import "testing"

func TestSplitsFieldsCorrectly(t *testing.T) {
	// 0xA5A5A5A5 = 10100101 10100101 10100101 10100101
	i := Instruction(0xa5a5a5a5)
	if i.Op() != 0b101001 {
		t.Errorf("op got %06b", i.Op())
	}
	if i.Rs() != 0b01101 {
		t.Errorf("rs got %05b", i.Rs())
	}
	if i.Rt() != 0b00101 {
		t.Errorf("rt got %05b", i.Rt())
	}
	if i.Rd() != 0b10100 {
		t.Errorf("rd got %05b", i.Rd())
	}
	if i.Shamt() != 0b10110 {
		t.Errorf("shamt got %05b", i.Shamt())
	}
	if i.Funct() != 0b100101 {
		t.Errorf("funct got %06b", i.Funct())
	}
	if i.Immediate() != 0xa5a5 {
		t.Errorf("immediate got %04x", i.Immediate())
	}
	if i.Target() != 0x01a5_a5a5 {
		t.Errorf("target got %08x", i.Target())
	}
}

// One encoding per mnemonic; the decoder must classify each.
func TestDecodeCoversAllMnemonics(t *testing.T) {
	words := map[Mnemonic]Instruction{
		ADD:     0x0000_0020,
		ADDI:    0x2000_0000,
		ADDIU:   0x2400_0000,
		ADDU:    0x0000_0021,
		AND:     0x0000_0024,
		ANDI:    0x3000_0000,
		BEQ:     0x1000_0000,
		BGEZ:    0x0401_0000,
		BGEZAL:  0x0411_0000,
		BGTZ:    0x1c00_0000,
		BLEZ:    0x1800_0000,
		BLTZ:    0x0400_0000,
		BLTZAL:  0x0410_0000,
		BNE:     0x1400_0000,
		BREAK:   0x0000_000d,
		CFC:     0x4040_0000,
		COP:     0x4200_0000,
		DIV:     0x0000_001a,
		DIVU:    0x0000_001b,
		J:       0x0800_0000,
		JAL:     0x0c00_0000,
		JALR:    0x0000_0009,
		JR:      0x0000_0008,
		LB:      0x8000_0000,
		LBU:     0x9000_0000,
		LH:      0x8400_0000,
		LHU:     0x9400_0000,
		LUI:     0x3c00_0000,
		LW:      0x8c00_0000,
		LWC:     0xc000_0000,
		LWL:     0x8800_0000,
		LWR:     0x9800_0000,
		MFC:     0x4000_0000,
		MFHI:    0x0000_0010,
		MFLO:    0x0000_0012,
		MTC:     0x4080_0000,
		MTHI:    0x0000_0011,
		MTLO:    0x0000_0013,
		MULT:    0x0000_0018,
		MULTU:   0x0000_0019,
		NOR:     0x0000_0027,
		OR:      0x0000_0025,
		ORI:     0x3400_0000,
		SB:      0xa000_0000,
		SH:      0xa400_0000,
		SLL:     0x0000_0000,
		SLLV:    0x0000_0004,
		SLT:     0x0000_002a,
		SLTI:    0x2800_0000,
		SLTIU:   0x2c00_0000,
		SLTU:    0x0000_002b,
		SRA:     0x0000_0003,
		SRAV:    0x0000_0007,
		SRL:     0x0000_0002,
		SRLV:    0x0000_0006,
		SUB:     0x0000_0022,
		SUBU:    0x0000_0023,
		SW:      0xac00_0000,
		SWC:     0xe000_0000,
		SWL:     0xa800_0000,
		SWR:     0xb800_0000,
		SYSCALL: 0x0000_000c,
		XOR:     0x0000_0026,
		XORI:    0x3800_0000,
	}
	// CTC has no decodable encoding on this machine (its rs value is
	// fatal), and Illegal is the sentinel, so neither appears here.
	if len(words) != NumMnemonics-2 {
		t.Fatalf("table covers %d of %d mnemonics", len(words), NumMnemonics-2)
	}
	for want, word := range words {
		if got := Decode(word); got != want {
			t.Errorf("%08x decoded as %s want %s", uint32(word), got, want)
		}
	}
}

func TestDecodeMTC0(t *testing.T) {
	if m := Decode(0x408c_6000); m != MTC {
		t.Errorf("MTC0 decoded as %s", m)
	}
}

func TestDecodeIllegal(t *testing.T) {
	// Primary opcode 0o30 is unassigned in MIPS-I.
	if m := Decode(0x6000_0000); m != Illegal {
		t.Errorf("undefined opcode decoded as %s", m)
	}
	// 0o54/0o55 (SWC-adjacent holes) likewise.
	if m := Decode(0xb000_0000); m != Illegal {
		t.Errorf("undefined opcode decoded as %s", m)
	}
}

func TestDecodeBadFunctFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on undefined funct")
		}
	}()
	Decode(0x0000_0001) // funct 0o01 is undefined
}

func TestDecodeBadRegimmFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on undefined regimm rt")
		}
	}()
	Decode(0x0402_0000) // rt 0b00010
}

func TestDecodeBadCopFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on undefined cop rs")
		}
	}()
	Decode(0x4060_0000) // rs 0b00011
}

func TestRegName(t *testing.T) {
	if RegName(0) != "$zero" || RegName(31) != "$ra" || RegName(8) != "$t0" {
		t.Error("register naming wrong")
	}
}
