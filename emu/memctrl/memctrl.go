/*
   PSX: memory control, RAM size and cache control ports.

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

package memctrl

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/PSX/emu/bus"
)

/*
   The PSX has no proper memory management controller; the base address
   ports read back fixed values and refuse relocation, and the delay
   timing ports are accepted but not modeled.
*/

// Port offsets within the memory control range.
const (
	exp1BaseAddrPort = 0x00
	exp2BaseAddrPort = 0x04
	exp1DelayPort    = 0x08
	exp3DelayPort    = 0x0c
	biosDelayPort    = 0x10
	spuDelayPort     = 0x14
	cdromDelayPort   = 0x18
	exp2DelayPort    = 0x1c
	comDelayPort     = 0x20
)

const (
	exp1BaseAddr uint32 = 0x1f00_0000
	exp2BaseAddr uint32 = 0x1f80_2000
)

// MemCtrl is the bank of memory control ports.
type MemCtrl struct{}

func New() *MemCtrl {
	return &MemCtrl{}
}

func (m *MemCtrl) Read(w bus.Width, addr uint32) uint32 {
	if w != bus.Word {
		panic(fmt.Sprintf("narrow memory control read unimplemented: width %d", w))
	}
	switch addr {
	case exp1BaseAddrPort:
		return exp1BaseAddr
	case exp2BaseAddrPort:
		return exp2BaseAddr
	case exp1DelayPort, exp3DelayPort, biosDelayPort, spuDelayPort,
		cdromDelayPort, exp2DelayPort, comDelayPort:
		panic(fmt.Sprintf("delay port read unimplemented: %02x", addr))
	default:
		panic(fmt.Sprintf("unsupported memory IO port: %08x", addr))
	}
}

func (m *MemCtrl) Peek(w bus.Width, addr uint32) (uint32, bool) {
	switch addr {
	case exp1BaseAddrPort:
		return w.Truncate(exp1BaseAddr), true
	case exp2BaseAddrPort:
		return w.Truncate(exp2BaseAddr), true
	default:
		return 0, false
	}
}

func (m *MemCtrl) Write(w bus.Width, addr uint32, data uint32) {
	if w != bus.Word {
		panic(fmt.Sprintf("narrow memory control write unimplemented: width %d", w))
	}
	switch addr {
	case exp1BaseAddrPort:
		if data != exp1BaseAddr {
			panic(fmt.Sprintf("attempt to move expansion 1 base: %08x", data))
		}
	case exp2BaseAddrPort:
		if data != exp2BaseAddr {
			panic(fmt.Sprintf("attempt to move expansion 2 base: %08x", data))
		}
	default:
		slog.Debug(fmt.Sprintf("memctrl: delay port %02x = %08x not modeled", addr, data))
	}
}

// RAMSize is the RAM size register, a plain read/write cell that the
// BIOS pokes during memory sizing.
type RAMSize struct {
	value uint32
}

func NewRAMSize() *RAMSize {
	return &RAMSize{}
}

func (r *RAMSize) Read(w bus.Width, _ uint32) uint32 {
	return w.Truncate(r.value)
}

func (r *RAMSize) Peek(w bus.Width, _ uint32) (uint32, bool) {
	return w.Truncate(r.value), true
}

func (r *RAMSize) Write(_ bus.Width, _ uint32, data uint32) {
	slog.Debug(fmt.Sprintf("memctrl: RAM size register = %08x", data))
	r.value = data
}

// CacheCtrl is the KSEG2 cache control port. Zero writes are the BIOS
// clearing it; anything else means cache features this core does not
// model, so stop rather than silently misbehave.
type CacheCtrl struct{}

func NewCacheCtrl() *CacheCtrl {
	return &CacheCtrl{}
}

func (c *CacheCtrl) Read(bus.Width, uint32) uint32 {
	slog.Warn("cache control read, returning 0")
	return 0
}

func (c *CacheCtrl) Peek(bus.Width, uint32) (uint32, bool) {
	return 0, true
}

func (c *CacheCtrl) Write(_ bus.Width, addr uint32, data uint32) {
	if data != 0 {
		panic(fmt.Sprintf("unsupported cache control write: %08x = %08x", addr, data))
	}
	slog.Warn("cache control write ignored")
}
