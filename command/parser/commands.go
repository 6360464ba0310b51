/*
 * PSX - Monitor commands.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package parser

import (
	"fmt"
	"strconv"

	"github.com/rcornwell/PSX/emu/assemble"
	"github.com/rcornwell/PSX/emu/bus"
	"github.com/rcornwell/PSX/emu/core"
	dis "github.com/rcornwell/PSX/emu/disassemble"
	"github.com/rcornwell/PSX/emu/master"
	op "github.com/rcornwell/PSX/emu/opcodemap"
)

// Parse a hex address, with or without 0x prefix.
func parseAddr(word string) (uint32, error) {
	if len(word) > 2 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X') {
		word = word[2:]
	}
	value, err := strconv.ParseUint(word, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad address: %s", word)
	}
	return uint32(value), nil
}

func start(_ *cmdLine, core *core.Core) (bool, error) {
	core.Send(master.Packet{Msg: master.Start})
	return false, nil
}

func cont(_ *cmdLine, core *core.Core) (bool, error) {
	core.Send(master.Packet{Msg: master.Start})
	return false, nil
}

func stop(_ *cmdLine, core *core.Core) (bool, error) {
	core.Send(master.Packet{Msg: master.Stop})
	return false, nil
}

func quit(_ *cmdLine, _ *core.Core) (bool, error) {
	return true, nil
}

// Step one or more instructions while stopped.
func step(line *cmdLine, core *core.Core) (bool, error) {
	count := 1
	if word := line.getWord(false); word != "" {
		c, err := strconv.Atoi(word)
		if err != nil || c < 1 {
			return false, fmt.Errorf("bad step count: %s", word)
		}
		count = c
	}
	core.Send(master.Packet{Msg: master.Step, Count: count})
	return false, nil
}

// Display registers, HI/LO, PC and the cop0 state.
func registers(_ *cmdLine, core *core.Core) (bool, error) {
	cpu := core.Motherboard().CPU()
	regs := cpu.Registers()
	for i := 0; i < 32; i += 4 {
		for j := i; j < i+4; j++ {
			fmt.Printf("%-5s %08x  ", op.RegName(uint32(j)), regs[j])
		}
		fmt.Println()
	}
	fmt.Printf("PC    %08x  HI    %08x  LO    %08x\n", cpu.PC, cpu.HI(), cpu.LO())
	cop := cpu.Cop0()
	fmt.Printf("SR    %08x  CAUSE %08x  EPC   %08x\n", cop.SR(), cop.Cause(), cop.EPC())
	return false, nil
}

// Examine memory words without side effects.
func examine(line *cmdLine, core *core.Core) (bool, error) {
	word := line.getWord(false)
	if word == "" {
		return false, fmt.Errorf("examine requires an address")
	}
	addr, err := parseAddr(word)
	if err != nil {
		return false, err
	}
	count := 1
	if word := line.getWord(false); word != "" {
		count, err = strconv.Atoi(word)
		if err != nil || count < 1 {
			return false, fmt.Errorf("bad count: %s", word)
		}
	}

	mb := core.Motherboard()
	for i := 0; i < count; i++ {
		a := addr + uint32(i*4)
		value, ok := mb.Peek(bus.Word, a&^uint32(3))
		if !ok {
			fmt.Printf("%08x  --------\n", a)
			continue
		}
		fmt.Printf("%08x  %08x\n", a, value)
	}
	return false, nil
}

// Deposit a word into memory: either a bare hex word or an
// instruction statement to assemble.
func deposit(line *cmdLine, core *core.Core) (bool, error) {
	word := line.getWord(false)
	if word == "" {
		return false, fmt.Errorf("deposit requires an address")
	}
	addr, err := parseAddr(word)
	if err != nil {
		return false, err
	}
	line.skipSpace()
	rest := line.line[line.pos:]
	if rest == "" {
		return false, fmt.Errorf("deposit requires a value")
	}

	value, err := parseAddr(rest)
	if err != nil {
		// Not a bare word, try the assembler.
		value, err = assemble.Assemble(rest)
		if err != nil {
			return false, err
		}
	}
	core.Motherboard().Write(bus.Word, addr&^uint32(3), value)
	return false, nil
}

// Disassemble memory words.
func disasm(line *cmdLine, core *core.Core) (bool, error) {
	word := line.getWord(false)
	if word == "" {
		return false, fmt.Errorf("disasm requires an address")
	}
	addr, err := parseAddr(word)
	if err != nil {
		return false, err
	}
	count := 1
	if word := line.getWord(false); word != "" {
		count, err = strconv.Atoi(word)
		if err != nil || count < 1 {
			return false, fmt.Errorf("bad count: %s", word)
		}
	}

	mb := core.Motherboard()
	for i := 0; i < count; i++ {
		a := (addr &^ uint32(3)) + uint32(i*4)
		value, ok := mb.Peek(bus.Word, a)
		if !ok {
			fmt.Printf("%08x  --------\n", a)
			continue
		}
		instr := op.Instruction(value)
		fmt.Printf("%08x  %08x  %s\n", a, value, dis.Disassemble(decodeSafe(instr), instr))
	}
	return false, nil
}

// Data words decode as anything; show malformed encodings as ILLEGAL
// instead of stopping the monitor.
func decodeSafe(instr op.Instruction) (m op.Mnemonic) {
	defer func() {
		if recover() != nil {
			m = op.Illegal
		}
	}()
	return op.Decode(instr)
}
