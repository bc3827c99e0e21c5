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

package hardware

// BuiltinROMVersion is the ROM version reported when no ROM is loaded.
const BuiltinROMVersion = "builtin"

// the builtin ROM writes a message to the top left of the screen and then
// loops forever
var builtinROM = []uint8{
	0x21, 0x00, 0x3c, // 0000 LD HL,3C00h
	0x11, 0x11, 0x00, // 0003 LD DE,0011h
	0x1a,             // 0006 LD A,(DE)
	0xb7,             // 0007 OR A
	0x28, 0x05,       // 0008 JR Z,000Fh
	0x77,             // 000A LD (HL),A
	0x23,             // 000B INC HL
	0x13,             // 000C INC DE
	0x18, 0xf7,       // 000D JR 0006h
	0x18, 0xfe,       // 000F JR 000Fh

	// 0011
	'X', 'R', 'A', 'Y', ' ', 'R', 'E', 'A', 'D', 'Y', 0x00,
}
