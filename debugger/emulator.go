// This file is part of Xray.
//
// Xray is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Xray is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Xray.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"context"

	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/debugger/codec"
	"github.com/trs-io/xray/debugger/govern"
)

// Emulator is the part of the emulation the debugger needs access to.
//
// The SetBreakpoint() and ClearBreakpoint() functions are called whenever
// the client changes the breakpoint table. The table is only changed if the
// emulator accepts the change.
type Emulator interface {
	breakpoints.Hook

	Identity() codec.Identity
	Registers() codec.Registers

	ReadMemory(addr uint16) uint8
	WriteMemory(addr uint16, data uint8)

	// Control carries out the action. The Continue and StepOver actions must
	// return when the context is cancelled
	Control(ctx context.Context, action govern.Action) error

	// RegisterWriteHook sets the function to be called on every write to
	// memory, including writes made by the WriteMemory() function
	RegisterWriteHook(hook func(addr uint16))
}

// MemoryPeeker is an optional interface for emulators that can copy a run of
// memory more efficiently than one address at a time.
type MemoryPeeker interface {
	PeekMemory(start uint16, data []byte)
}

// KeyInjector forwards key events from the client to the emulated keyboard.
type KeyInjector interface {
	InjectKey(key string, down bool, shift bool) error
}
