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

// Package virtualio is the virtual I/O channel. It streams the emulated screen
// to a connected client and carries the keyboard and printer.
//
// Outbound frames are binary. The first byte identifies the frame:
//
//	10 screen update: [10][width][height][width*height bytes]
//	20 printer byte:  [20][byte]
//	21 printer newline: [21]
//
// Inbound messages are text of the form:
//
//	vikb?<key>|down|shift
//
// where the down and shift flags are optional. The key is either a single
// character or a named key. See the keys package.
//
// The screen is sent periodically by the Run() function. Printer frames are
// sent as the emulation produces them. All frames share the one outbound
// channel and are dropped if the channel stays busy.
package virtualio
