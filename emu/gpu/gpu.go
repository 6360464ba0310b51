/*
   PSX: GPU register stub.

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

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/PSX/emu/bus"
)

// Status bit reported so DMA setup code keeps moving.
const statDMAReady uint32 = 0x1000_0000

// GPU is a mock of the rasterizer's GP0/GP1 ports. Rendering is an
// external collaborator; the core only needs the bus contract.
type GPU struct{}

func New() *GPU {
	return &GPU{}
}

func (g *GPU) Read(w bus.Width, addr uint32) uint32 {
	slog.Debug(fmt.Sprintf("gpu: read GP%d", addr/4))
	return w.Truncate(statDMAReady)
}

func (g *GPU) Peek(_ bus.Width, _ uint32) (uint32, bool) {
	return 0, true
}

func (g *GPU) Write(_ bus.Width, addr uint32, data uint32) {
	slog.Debug(fmt.Sprintf("gpu: write GP%d = %08x", addr/4, data))
}
