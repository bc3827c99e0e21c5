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

// Package hardware is a TRS-80 Model I. It is the machine served by the
// debugger and the virtual I/O channel.
//
// The Machine type is the root of the emulation. The Z80 is provided by the
// koron-go/z80 package; this package adds the Model I memory map: ROM, the
// memory mapped printer and keyboard, video RAM and general RAM.
//
// Execution is one instruction at a time so that breakpoints and requests to
// stop are honoured between instructions. The machine is normally throttled
// to the speed of the real hardware.
package hardware
