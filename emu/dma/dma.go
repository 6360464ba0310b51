/*
   PSX: DMA controller registers.

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

package dma

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/PSX/emu/bus"
)

/*
   Only the register file of the DMA engine is modeled; actual channel
   transfers are an external collaborator. Registers sit on a 16 byte
   grid: channels 0..6 each own a block, block 7 holds the common
   control and interrupt registers.
*/

// Channel control bits that are hardwired to zero.
const channelUnused uint32 = 0x8e88_f8fc

// Register offsets within a block.
const (
	regBase    = 0x0 // Channel base address
	regBlock   = 0x4 // Channel block control
	regControl = 0x8 // Channel control
	regUnknown = 0xc
)

// Channel is one DMA channel control register.
type Channel uint32

// DMA port numbers, one per channel.
const (
	PortMdecIn  = 0
	PortMdecOut = 1
	PortGPU     = 2
	PortCdRom   = 3
	PortSPU     = 4
	PortPIO     = 5
	PortOtc     = 6
)

// Direction of a transfer.
const (
	RAMToDevice = 0
	DeviceToRAM = 1
)

// Sync modes.
const (
	SyncManual     = 0
	SyncRequest    = 1
	SyncLinkedList = 2
)

// Direction reports which way the channel moves data.
func (c Channel) Direction() int {
	return int(uint32(c) & 1)
}

// Backward reports whether the base address steps down.
func (c Channel) Backward() bool {
	return uint32(c)&0x2 != 0
}

// Chopping reports whether chopped transfers are enabled.
func (c Channel) Chopping() bool {
	return uint32(c)&0x100 != 0
}

// Sync returns the channel synchronization mode.
func (c Channel) Sync() int {
	mode := (uint32(c) >> 9) & 0x3
	if mode == 3 {
		panic("DMA channel using reserved sync mode")
	}
	return int(mode)
}

// Enabled reports whether the channel is started.
func (c Channel) Enabled() bool {
	return uint32(c)&0x0100_0000 != 0
}

// Triggered reports a manual transfer start.
func (c Channel) Triggered() bool {
	return uint32(c)&0x1000_0000 != 0
}

// Controller is the DMA register file.
type Controller struct {
	control   uint32     // Common control register
	interrupt uint32     // Interrupt enable/flag register
	unknown1  uint32     // Register at 0x78, per No$Psx
	unknown2  uint32     // Register at 0x7c, per No$Psx
	channels  [7]Channel // Per channel control registers
}

// Create a DMA controller with the documented reset state.
func New() *Controller {
	return &Controller{control: 0x0765_4321}
}

func (d *Controller) Read(w bus.Width, addr uint32) uint32 {
	if w != bus.Word {
		panic(fmt.Sprintf("narrow DMA read unimplemented: width %d", w))
	}
	data, ok := d.peek(addr)
	if !ok {
		panic(fmt.Sprintf("DMA port read unimplemented: %02x", addr))
	}
	return data
}

func (d *Controller) Peek(w bus.Width, addr uint32) (uint32, bool) {
	data, ok := d.peek(addr)
	return w.Truncate(data), ok
}

func (d *Controller) peek(addr uint32) (uint32, bool) {
	block := (addr & 0x70) >> 4
	reg := addr & 0xf
	if block < 7 {
		if reg == regControl {
			return uint32(d.channels[block]), true
		}
		// Base/block registers back actual transfers, which are not
		// modeled here.
		return 0, false
	}
	switch reg {
	case 0x0:
		return d.control, true
	case 0x4:
		return d.interrupt, true
	case 0x8:
		slog.Debug("dma: access to unknown register 1")
		return d.unknown1, true
	default:
		slog.Debug("dma: access to unknown register 2")
		return d.unknown2, true
	}
}

func (d *Controller) Write(w bus.Width, addr uint32, data uint32) {
	if w != bus.Word {
		panic(fmt.Sprintf("narrow DMA write unimplemented: width %d", w))
	}
	block := (addr & 0x70) >> 4
	reg := addr & 0xf
	if block < 7 {
		if reg != regControl {
			panic(fmt.Sprintf("DMA port write unimplemented: %02x = %08x", addr, data))
		}
		d.channels[block] = Channel(data &^ channelUnused)
		return
	}
	switch reg {
	case 0x0:
		d.control = data
	case 0x4:
		d.interrupt = data
	case 0x8:
		slog.Debug("dma: write to unknown register 1")
		d.unknown1 = data
	default:
		slog.Debug("dma: write to unknown register 2")
		d.unknown2 = data
	}
}
