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

// Package breakpoints is a fixed size table of breakpoints. Each breakpoint
// is identified by the index of the slot it occupies. Slots are never
// compacted so an ID remains valid for as long as the client remembers it.
package breakpoints

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trs-io/xray/curated"
)

// Capacity is the number of slots in the table.
const Capacity = 128

// Sentinal error patterns.
const (
	TableFull = "breakpoints: table full (%d entries)"
	InvalidID = "breakpoints: invalid id (%d)"
)

// Kind of breakpoint. The values are sent over the wire.
type Kind int

// List of valid breakpoint kinds.
const (
	PC Kind = iota
	Memory
	IO
)

func (k Kind) String() string {
	switch k {
	case PC:
		return "pc"
	case Memory:
		return "mem"
	case IO:
		return "io"
	}
	return "unknown"
}

// Breakpoint is a single entry in the table.
type Breakpoint struct {
	ID      int
	Address uint16
	Kind    Kind
	Enabled bool
}

func (b Breakpoint) String() string {
	return fmt.Sprintf("#%d %s %#04x", b.ID, b.Kind, b.Address)
}

// Hook is notified of every change to the table. The hook is called before
// the table is updated and an error will prevent the update.
type Hook interface {
	SetBreakpoint(id int, addr uint16, kind Kind) error
	ClearBreakpoint(id int) error
}

// Table of breakpoints. Safe for concurrent use.
type Table struct {
	crit  sync.Mutex
	slots [Capacity]Breakpoint
	hook  Hook
}

// NewTable is the preferred method of initialisation for the Table type. The
// hook can be nil.
func NewTable(hook Hook) *Table {
	tb := &Table{hook: hook}
	for i := range tb.slots {
		tb.slots[i].ID = i
	}
	return tb
}

// Add a breakpoint to the lowest free slot. Returns the ID of the slot.
func (tb *Table) Add(addr uint16, kind Kind) (int, error) {
	tb.crit.Lock()
	defer tb.crit.Unlock()

	for i := range tb.slots {
		if tb.slots[i].Enabled {
			continue
		}

		if tb.hook != nil {
			if err := tb.hook.SetBreakpoint(i, addr, kind); err != nil {
				return -1, err
			}
		}

		tb.slots[i].Address = addr
		tb.slots[i].Kind = kind
		tb.slots[i].Enabled = true

		return i, nil
	}

	return -1, curated.Errorf(TableFull, Capacity)
}

// Remove the breakpoint with the ID. The slot's address and kind are left as
// they are but the slot is marked as free.
//
// Removing a breakpoint that is already disabled is not an error.
func (tb *Table) Remove(id int) error {
	tb.crit.Lock()
	defer tb.crit.Unlock()

	if id < 0 || id >= Capacity {
		return curated.Errorf(InvalidID, id)
	}

	if tb.hook != nil {
		if err := tb.hook.ClearBreakpoint(id); err != nil {
			return err
		}
	}

	tb.slots[id].Enabled = false

	return nil
}

// List returns a copy of the enabled breakpoints in order of ID.
func (tb *Table) List() []Breakpoint {
	tb.crit.Lock()
	defer tb.crit.Unlock()

	l := make([]Breakpoint, 0, Capacity)
	for _, b := range tb.slots {
		if b.Enabled {
			l = append(l, b)
		}
	}
	return l
}

func (tb *Table) String() string {
	s := strings.Builder{}
	for _, b := range tb.List() {
		s.WriteString(b.String())
		s.WriteString("\n")
	}
	return s.String()
}
