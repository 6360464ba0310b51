/*
   PSX: interrupt controller port tests.

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
	"testing"

	"github.com/rcornwell/PSX/emu/bus"
)

func TestPortsReadZero(t *testing.T) {
	i := New()
	if v := i.Read(bus.Word, statPort); v != 0 {
		t.Errorf("I_STAT got %08x", v)
	}
	if v := i.Read(bus.Word, maskPort); v != 0 {
		t.Errorf("I_MASK got %08x", v)
	}
	if v, ok := i.Peek(bus.Word, maskPort); !ok || v != 0 {
		t.Errorf("peek got %08x ok=%v", v, ok)
	}
}

func TestZeroWriteAccepted(t *testing.T) {
	i := New()
	i.Write(bus.Word, maskPort, 0)
	i.Write(bus.Word, statPort, 0)
}

func TestEnableFatal(t *testing.T) {
	i := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic enabling interrupts")
		}
	}()
	i.Write(bus.Word, maskPort, 1)
}
