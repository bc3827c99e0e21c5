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

// Package debugger connects a remote debugging client to the emulation.
//
// A Session is created with NewSession() and driven by its Run() function.
// Client messages arrive through HandleMessage() and are decoded by the codec
// package. Status and memory updates go back to the client through an
// outbound.Channel.
//
//	out := outbound.NewChannel("debugger", 50*time.Millisecond)
//	session := debugger.NewSession(machine, keys, out)
//	go session.Run(ctx)
//
// The emulation itself is anything that satisfies the Emulator interface. In
// practice this is the hardware.Machine type.
//
// Supporting packages:
//
//	breakpoints: the fixed size breakpoint table
//	dirty: the range of memory written since the last update
//	govern: the last-write-wins control state machine
//	scheduler: decides when an update should be sent
package debugger
