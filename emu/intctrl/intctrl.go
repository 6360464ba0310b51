/*
   PSX: interrupt controller ports.

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

package intctrl

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/PSX/emu/bus"
)

// Port offsets.
const (
	statPort = 0x0 // I_STAT interrupt status
	maskPort = 0x4 // I_MASK interrupt mask
)

// IntCtrl models only interrupt masking: status reads as empty and the
// mask may only be cleared. Software enabling interrupts is fatal so
// the missing delivery path is visible.
type IntCtrl struct{}

func New() *IntCtrl {
	return &IntCtrl{}
}

func (i *IntCtrl) Read(_ bus.Width, addr uint32) uint32 {
	slog.Warn(fmt.Sprintf("intctrl: interrupts unimplemented, port %x reads 0", addr))
	return 0
}

func (i *IntCtrl) Peek(bus.Width, uint32) (uint32, bool) {
	return 0, true
}

func (i *IntCtrl) Write(_ bus.Width, addr uint32, data uint32) {
	if data != 0 {
		panic(fmt.Sprintf("attempt to enable interrupts: %x = %08x", addr, data))
	}
	slog.Warn(fmt.Sprintf("intctrl: zero write to port %x ignored", addr))
}
