/*
   PSX: system bus contracts.

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

package bus

import "encoding/binary"

// Width of a bus transfer in bytes. Every bus operation carries one.
type Width uint32

const (
	Byte Width = 1
	Half Width = 2
	Word Width = 4
)

// Interface for devices attached to the main bus. Addresses are local to
// the device; alignment is validated by the dispatcher before dispatch.
// Read may have MMIO side effects. Peek must not mutate and reports false
// when the device cannot answer without side effects.
type Device interface {
	Read(w Width, addr uint32) uint32
	Peek(w Width, addr uint32) (uint32, bool)
	Write(w Width, addr uint32, data uint32)
}

// Check the address is aligned for this width.
func (w Width) Aligned(addr uint32) bool {
	return addr&(uint32(w)-1) == 0
}

// Decode a little endian value of this width from the slice.
func (w Width) Decode(b []byte) uint32 {
	switch w {
	case Byte:
		return uint32(b[0])
	case Half:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}

// Encode a value into the slice as little endian bytes of this width.
func (w Width) Encode(b []byte, data uint32) {
	switch w {
	case Byte:
		b[0] = uint8(data)
	case Half:
		binary.LittleEndian.PutUint16(b, uint16(data))
	default:
		binary.LittleEndian.PutUint32(b, data)
	}
}

// Truncate a 32 bit value to this width, dropping high bits.
func (w Width) Truncate(data uint32) uint32 {
	switch w {
	case Byte:
		return data & 0xff
	case Half:
		return data & 0xffff
	default:
		return data
	}
}
