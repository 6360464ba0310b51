/*
   PSX assembler tests.

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
	"testing"

	dis "github.com/rcornwell/PSX/emu/disassemble"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		stmt string
		want uint32
	}{
		{"ADD $t0, $t1, $t2", 0x012a_4020},
		{"ADDI $t0, $zero, -1", 0x2008_ffff},
		{"ADDIU $v0, $v0, 4", 0x2442_0004},
		{"LUI $at, 0x1234", 0x3c01_1234},
		{"ORI $at, $at, 0x5678", 0x3421_5678},
		{"LW $v0, 8($sp)", 0x8fa2_0008},
		{"SW $ra, -4($sp)", 0xafbf_fffc},
		{"LB $v0, ($a0)", 0x8082_0000},
		{"BNE $a0, $zero, 16", 0x1480_0010},
		{"BLTZ $s0, -2", 0x0600_fffe},
		{"BGEZAL $s0, 8", 0x0611_0008},
		{"SLL $t0, $t1, 4", 0x0009_4100},
		{"SLLV $t0, $t1, $t2", 0x012a_4004},
		{"J 0x100", 0x0800_0040},
		{"JAL 0xbfc00000", 0x0ff0_0000},
		{"JR $ra", 0x03e0_0008},
		{"JALR $ra, $t9", 0x0320_f809},
		{"MULT $t0, $t1", 0x0109_0018},
		{"DIV $at, $v0", 0x0022_001a},
		{"MFHI $v0", 0x0000_1010},
		{"MTLO $a0", 0x0080_0013},
		{"SLTIU $a0, $at, 0xffff", 0x2c24_ffff},
		{"SYSCALL", 0x0000_000c},
		{"BREAK", 0x0000_000d},
		{"NOP", 0x0000_0000},
		{"RFE", 0x4200_0010},
		{"MTC0 $t0, $12", 0x4088_6000},
		{"MFC0 $at, $14", 0x4001_7000},
		{"add $8, $9, $10", 0x012a_4020}, // case and numeric registers
	}
	for _, tc := range tests {
		got, err := Assemble(tc.stmt)
		if err != nil {
			t.Errorf("%q: %v", tc.stmt, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q assembled to %08x want %08x", tc.stmt, got, tc.want)
		}
	}
}

// Disassembler output assembles back to the same word.
func TestRoundTrip(t *testing.T) {
	words := []uint32{
		0x012a_4020, // ADD
		0x2008_ffff, // ADDI
		0x3c01_1234, // LUI
		0x8fa2_0008, // LW
		0xafbf_fffc, // SW
		0x1480_0010, // BNE
		0x0600_fffe, // BLTZ
		0x0009_4100, // SLL
		0x03e0_0008, // JR
		0x0320_f809, // JALR
		0x0109_0018, // MULT
		0x0000_1010, // MFHI
		0x0000_000c, // SYSCALL
		0x4088_6000, // MTC0
	}
	for _, word := range words {
		instr := op.Instruction(word)
		text := dis.Disassemble(op.Decode(instr), instr)
		got, err := Assemble(text)
		if err != nil {
			t.Errorf("%08x -> %q: %v", word, text, err)
			continue
		}
		if got != word {
			t.Errorf("%08x -> %q -> %08x", word, text, got)
		}
	}
}

func TestErrors(t *testing.T) {
	for _, stmt := range []string{
		"",
		"FROB $t0, $t1, $t2",
		"ADD $t0, $t1",
		"ADD $t0, $t1, $bogus",
		"ADDI $t0, $t1, zz",
		"LW $t0, 8",
		"SLL $t0, $t1, 99",
		"J 0x101",
	} {
		if _, err := Assemble(stmt); err == nil {
			t.Errorf("%q should not assemble", stmt)
		}
	}
}
