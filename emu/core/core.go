/*
   Core PSX emulator loop.

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

package core

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rcornwell/PSX/emu/master"
	"github.com/rcornwell/PSX/emu/motherboard"
)

// Core drives the motherboard from its own goroutine, steered by
// packets from the console.
type Core struct {
	wg      sync.WaitGroup
	done    chan struct{} // Signal to shut the emulator down.
	running bool          // Whether the machine is free running.
	master  chan master.Packet
	mb      *motherboard.Motherboard
}

// Create the emulator core around a motherboard.
func NewCore(mb *motherboard.Motherboard, master chan master.Packet) *Core {
	return &Core{
		mb:     mb,
		master: master,
		done:   make(chan struct{}),
	}
}

// Send queues a control packet for the core loop.
func (core *Core) Send(packet master.Packet) {
	core.master <- packet
}

// Motherboard exposes the machine to the monitor.
func (core *Core) Motherboard() *motherboard.Motherboard {
	return core.mb
}

// Start runs the emulation loop until Stop is called.
func (core *Core) Start() {
	core.wg.Add(1)
	defer core.wg.Done()
	for {
		if core.running {
			core.mb.Tick()
		}
		select {
		case <-core.done:
			slog.Info("Shutdown CPU core")
			return
		case packet := <-core.master:
			core.processPacket(packet)
		default:
		}
	}
}

// Stop shuts the core loop down and waits for it to drain.
func (core *Core) Stop() {
	close(core.done)
	done := make(chan struct{})
	go func() {
		core.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(time.Second):
		slog.Warn("Timed out waiting for CPU to finish.")
		return
	}
}

// Process a packet sent to the emulator.
func (core *Core) processPacket(packet master.Packet) {
	switch packet.Msg {
	case master.Start:
		core.running = true
	case master.Stop:
		core.running = false
	case master.Step:
		if core.running {
			return
		}
		for range packet.Count {
			core.mb.CPU().Step()
		}
	}
}
