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

package codec

import (
	"encoding/json"

	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/version"
)

// Model of the emulated machine. The numeric value is sent to the client.
type Model int

// List of known models.
const (
	ModelUndefined Model = iota
	ModelI
	ModelII
	ModelIII
	ModelIV
	ModelIVP
)

func (m Model) String() string {
	switch m {
	case ModelI:
		return "Model I"
	case ModelII:
		return "Model II"
	case ModelIII:
		return "Model III"
	case ModelIV:
		return "Model 4"
	case ModelIVP:
		return "Model 4P"
	}
	return "undefined"
}

// MemoryRange is the part of the address space the client may inspect.
type MemoryRange struct {
	Start  uint16 `json:"start"`
	Length uint32 `json:"length"`
}

// Capabilities of the emulator as advertised to the client.
type Capabilities struct {
	Step              bool        `json:"step"`
	StepOver          bool        `json:"step_over"`
	Continue          bool        `json:"continue"`
	Pause             bool        `json:"pause"`
	PCBreakpoints     bool        `json:"pc_breakpoints"`
	MemoryBreakpoints bool        `json:"memory_breakpoints"`
	IOBreakpoints     bool        `json:"io_breakpoints"`
	MemoryRange       MemoryRange `json:"memory_range"`
}

// Identity of the emulated machine.
type Identity struct {
	SystemName   string
	Model        Model
	ROMVersion   string
	Capabilities Capabilities
}

// Registers is a snapshot of the CPU registers and related state. 16bit
// register pairs are sent as a single number.
type Registers struct {
	PC      uint16 `json:"pc"`
	SP      uint16 `json:"sp"`
	AF      uint16 `json:"af"`
	BC      uint16 `json:"bc"`
	DE      uint16 `json:"de"`
	HL      uint16 `json:"hl"`
	AFPrime uint16 `json:"af_prime"`
	BCPrime uint16 `json:"bc_prime"`
	DEPrime uint16 `json:"de_prime"`
	HLPrime uint16 `json:"hl_prime"`
	IX      uint16 `json:"ix"`
	IY      uint16 `json:"iy"`
	I       uint8  `json:"i"`

	// R is the refresh register. R7 is the value of bit 7 as most recently
	// loaded by the LD R,A instruction. the client receives the lower seven
	// bits of R7 as the r_2 field
	R  uint8 `json:"r_1"`
	R7 uint8 `json:"-"`

	TStates       uint64  `json:"z80_t_state_counter"`
	ClockMHz      float64 `json:"z80_clockspeed"`
	IFF1          uint8   `json:"z80_iff1"`
	IFF2          uint8   `json:"z80_iff2"`
	InterruptMode uint8   `json:"z80_interrupt_mode"`
}

// MarshalJSON implements the json.Marshaler interface. Adds the r_2 field.
func (r Registers) MarshalJSON() ([]byte, error) {
	type plain Registers
	return json.Marshal(struct {
		plain
		R2 uint8 `json:"r_2"`
	}{
		plain: plain(r),
		R2:    r.R7 & 0x7f,
	})
}

type statusContext struct {
	SystemName   string       `json:"system_name"`
	Model        Model        `json:"model"`
	ROMVersion   string       `json:"rom_version"`
	Protocol     string       `json:"protocol"`
	Capabilities Capabilities `json:"capabilities"`
}

type breakpoint struct {
	ID      int              `json:"id"`
	Address uint16           `json:"address"`
	Type    breakpoints.Kind `json:"type"`
}

type status struct {
	Context     statusContext `json:"context"`
	Breakpoints []breakpoint  `json:"breakpoints"`
	Registers   Registers     `json:"registers"`
}

// EncodeStatus creates the JSON status message. Only enabled breakpoints are
// included.
func EncodeStatus(ident Identity, bps []breakpoints.Breakpoint, regs Registers) ([]byte, error) {
	s := status{
		Context: statusContext{
			SystemName:   ident.SystemName,
			Model:        ident.Model,
			ROMVersion:   ident.ROMVersion,
			Protocol:     version.Protocol,
			Capabilities: ident.Capabilities,
		},
		Breakpoints: make([]breakpoint, 0, len(bps)),
		Registers:   regs,
	}

	for _, b := range bps {
		if !b.Enabled {
			continue
		}
		s.Breakpoints = append(s.Breakpoints, breakpoint{
			ID:      b.ID,
			Address: b.Address,
			Type:    b.Kind,
		})
	}

	return json.Marshal(s)
}
