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

// Package codec encodes and decodes the messages of the debug protocol.
//
// Messages from the server to the client are either text or binary. Text
// messages are JSON encoded Status values, describing the machine, the
// enabled breakpoints and the CPU registers. Binary messages are memory
// frames: a big-endian start address followed by the memory bytes starting
// at that address.
//
// Messages from the client to the server are text commands of the form:
//
//	action/<verb>[/<param>...]
//
// and are decoded by ParseCommand().
package codec
