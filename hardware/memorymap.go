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

// Memory map of the TRS-80 Model I.
const (
	ROMOrigin = 0x0000
	ROMSize   = 0x3000

	// the printer is memory mapped. reading returns the printer status and
	// writing sends a character
	PrinterAddress = 0x37e8

	// the keyboard matrix occupies 1K but only the lower eight address bits
	// are decoded. each address bit selects a row of the matrix
	KeyboardOrigin = 0x3800
	KeyboardMemtop = 0x3bff

	VideoOrigin = 0x3c00
	VideoMemtop = 0x3fff
	VideoWidth  = 64
	VideoHeight = 16

	RAMOrigin = 0x4000
)

// the value read from unmapped addresses
const unmapped = 0xff

// carriage return. sent to the printer as a newline
const carriageReturn = 0x0d

// memory adapts the machine to the z80.Memory interface. accesses through this
// type are made by the CPU and are subject to memory breakpoints
type memory struct {
	m *Machine
}

func (mem *memory) Get(addr uint16) uint8 {
	return mem.m.read(addr)
}

func (mem *memory) Set(addr uint16, value uint8) {
	mem.m.write(addr, value)
	mem.m.checkMemoryBreak(addr)
}

// io adapts the machine to the z80.IO interface. the Model I has no ports of
// interest but IO breakpoints still work
type ioBus struct {
	m *Machine
}

func (bus *ioBus) In(port uint8) uint8 {
	bus.m.checkIOBreak(port)
	return unmapped
}

func (bus *ioBus) Out(port uint8, value uint8) {
	bus.m.checkIOBreak(port)
}

// read a single address. must be called with the machine's critical section
// locked
func (m *Machine) read(addr uint16) uint8 {
	switch {
	case addr == PrinterAddress:
		if m.printer == nil {
			return unmapped
		}
		return m.printer.PrinterRead()
	case addr >= KeyboardOrigin && addr <= KeyboardMemtop:
		return m.kb.read(addr)
	case addr >= ROMOrigin+ROMSize && addr < KeyboardOrigin:
		return unmapped
	}
	return m.ram[addr]
}

// write a single address. writes to ROM and the keyboard are ignored. must be
// called with the machine's critical section locked
func (m *Machine) write(addr uint16, value uint8) {
	switch {
	case addr < ROMOrigin+ROMSize:
		return
	case addr == PrinterAddress:
		if m.printer != nil {
			if value == carriageReturn {
				m.printer.PrinterNewLine()
			} else {
				m.printer.PrinterWrite(value)
			}
		}
		return
	case addr <= KeyboardMemtop:
		// unmapped or keyboard
		return
	}

	m.ram[addr] = value
	if m.writeHook != nil {
		m.writeHook(addr)
	}
}
