/*
   PSX: RAM and ROM backing stores.

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

package memory

import (
	"fmt"

	"github.com/rcornwell/PSX/emu/bus"
)

// RAM is a plain byte backed read/write store. Main memory and the
// scratchpad are both instances of it.
type RAM struct {
	data []byte
}

// Create RAM of the given size in bytes.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

func (r *RAM) Read(w bus.Width, addr uint32) uint32 {
	return w.Decode(r.data[addr:])
}

func (r *RAM) Peek(w bus.Width, addr uint32) (uint32, bool) {
	return w.Decode(r.data[addr:]), true
}

func (r *RAM) Write(w bus.Width, addr uint32, data uint32) {
	w.Encode(r.data[addr:], data)
}

// ROM is a read only region, loaded once from an image.
type ROM struct {
	data []byte
}

// Create a ROM wrapping the given image.
func NewROM(image []byte) *ROM {
	return &ROM{data: image}
}

func (r *ROM) Read(w bus.Width, addr uint32) uint32 {
	return w.Decode(r.data[addr:])
}

func (r *ROM) Peek(w bus.Width, addr uint32) (uint32, bool) {
	return w.Decode(r.data[addr:]), true
}

func (r *ROM) Write(_ bus.Width, addr uint32, data uint32) {
	panic(fmt.Sprintf("write to ROM: %08x = %08x", addr, data))
}
