/*
   PSX: motherboard and bus dispatcher.

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

package motherboard

import (
	"fmt"

	"github.com/rcornwell/PSX/emu/bus"
	"github.com/rcornwell/PSX/emu/cpu"
	"github.com/rcornwell/PSX/emu/dma"
	"github.com/rcornwell/PSX/emu/gpu"
	"github.com/rcornwell/PSX/emu/intctrl"
	"github.com/rcornwell/PSX/emu/memctrl"
	"github.com/rcornwell/PSX/emu/memmap"
	"github.com/rcornwell/PSX/emu/memory"
	"github.com/rcornwell/PSX/emu/stub"
)

// BIOSSize is the required size of a BIOS image in bytes.
const BIOSSize = 512 * 1024

// Sizes of the writable memories.
const (
	ramSize     = 2048 * 1024
	scratchSize = 1024
)

// Motherboard owns the CPU and every bus device and routes bus
// requests between them. It is the bus.Device the CPU fetches through,
// addressed with full virtual addresses.
type Motherboard struct {
	cpu *cpu.CPU

	ram        *memory.RAM
	scratch    *memory.RAM
	bios       *memory.ROM
	memCtrl    *memctrl.MemCtrl
	ramSizeReg *memctrl.RAMSize
	cacheCtrl  *memctrl.CacheCtrl
	intCtrl    *intctrl.IntCtrl
	dma        *dma.Controller
	gpu        *gpu.GPU
	peripheral *stub.Stub
	timers     *stub.Stub
	spu        *stub.Stub
	exp1       *stub.Stub
	exp2       *stub.Stub
	exp3       *stub.Stub
}

// Create a motherboard around a 512KB BIOS image.
func New(bios []byte) (*Motherboard, error) {
	if len(bios) != BIOSSize {
		return nil, fmt.Errorf("BIOS image must be %d bytes, got %d", BIOSSize, len(bios))
	}
	mb := &Motherboard{
		ram:        memory.NewRAM(ramSize),
		scratch:    memory.NewRAM(scratchSize),
		bios:       memory.NewROM(bios),
		memCtrl:    memctrl.New(),
		ramSizeReg: memctrl.NewRAMSize(),
		cacheCtrl:  memctrl.NewCacheCtrl(),
		intCtrl:    intctrl.New(),
		dma:        dma.New(),
		gpu:        gpu.New(),
		peripheral: stub.New("peripheral", 0),
		timers:     stub.New("timers", 0),
		spu:        stub.New("spu", 0),
		// Nothing is plugged into the expansion ports, which float
		// high on real hardware.
		exp1: stub.New("expansion1", 0xffff_ffff),
		exp2: stub.New("expansion2", 0xffff_ffff),
		exp3: stub.New("expansion3", 0xffff_ffff),
	}
	mb.cpu = cpu.New(mb)
	return mb, nil
}

// CPU returns the processor for the host loop and debuggers.
func (mb *Motherboard) CPU() *cpu.CPU {
	return mb.cpu
}

// Tick advances the machine by one CPU cycle.
func (mb *Motherboard) Tick() {
	mb.cpu.Tick()
}

func (mb *Motherboard) device(dev memmap.Device) bus.Device {
	switch dev {
	case memmap.RAM:
		return mb.ram
	case memmap.Scratch:
		return mb.scratch
	case memmap.BIOS:
		return mb.bios
	case memmap.MemCtrl:
		return mb.memCtrl
	case memmap.RAMSize:
		return mb.ramSizeReg
	case memmap.CacheCtrl:
		return mb.cacheCtrl
	case memmap.IntCtrl:
		return mb.intCtrl
	case memmap.DMA:
		return mb.dma
	case memmap.GPU:
		return mb.gpu
	case memmap.Peripheral:
		return mb.peripheral
	case memmap.Timers:
		return mb.timers
	case memmap.SPU:
		return mb.spu
	case memmap.Expansion1:
		return mb.exp1
	case memmap.Expansion2:
		return mb.exp2
	case memmap.Expansion3:
		return mb.exp3
	default:
		panic(fmt.Sprintf("no device for %s", dev))
	}
}

// Resolve an address for an access of the given width.
func resolve(w bus.Width, addr uint32) (memmap.Device, uint32) {
	if !w.Aligned(addr) {
		panic(fmt.Sprintf("misaligned %d byte access: %08x", w, addr))
	}
	seg, dev, local := memmap.Map(addr)
	if dev == memmap.VMem {
		panic(fmt.Sprintf("virtual memory fault in %s: %08x", seg, addr))
	}
	return dev, local
}

func (mb *Motherboard) Read(w bus.Width, addr uint32) uint32 {
	dev, local := resolve(w, addr)
	return mb.device(dev).Read(w, local)
}

func (mb *Motherboard) Peek(w bus.Width, addr uint32) (uint32, bool) {
	dev, local := resolve(w, addr)
	return mb.device(dev).Peek(w, local)
}

func (mb *Motherboard) Write(w bus.Width, addr uint32, data uint32) {
	dev, local := resolve(w, addr)
	if dev == memmap.BIOS {
		panic(fmt.Sprintf("write to BIOS region: %08x = %08x", addr, data))
	}
	mb.device(dev).Write(w, local, data)
}
