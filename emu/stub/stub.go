/*
   PSX: inert filler devices.

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

package stub

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/PSX/emu/bus"
)

// Stub stands in for peripherals outside the core: SPU, timers,
// expansion regions and peripheral IO. It accepts everything, answers
// with a fixed fill pattern and logs so the traffic is visible.
type Stub struct {
	name string
	fill uint32
}

// Create a named stub answering reads with the fill pattern, truncated
// to the access width.
func New(name string, fill uint32) *Stub {
	return &Stub{name: name, fill: fill}
}

func (s *Stub) Read(w bus.Width, addr uint32) uint32 {
	slog.Debug(fmt.Sprintf("%s: read %08x unimplemented", s.name, addr))
	return w.Truncate(s.fill)
}

func (s *Stub) Peek(w bus.Width, _ uint32) (uint32, bool) {
	return w.Truncate(s.fill), true
}

func (s *Stub) Write(_ bus.Width, addr uint32, data uint32) {
	slog.Debug(fmt.Sprintf("%s: write %08x = %08x ignored", s.name, addr, data))
}
