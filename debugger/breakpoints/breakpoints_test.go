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

package breakpoints_test

import (
	"errors"
	"testing"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/test"
)

// records calls made to the hook
type mockHook struct {
	set     map[int]uint16
	cleared []int
	fail    bool
}

func (h *mockHook) SetBreakpoint(id int, addr uint16, kind breakpoints.Kind) error {
	if h.fail {
		return errors.New("emulator refused")
	}
	h.set[id] = addr
	return nil
}

func (h *mockHook) ClearBreakpoint(id int) error {
	if h.fail {
		return errors.New("emulator refused")
	}
	h.cleared = append(h.cleared, id)
	return nil
}

func TestAddRemove(t *testing.T) {
	h := &mockHook{set: make(map[int]uint16)}
	tb := breakpoints.NewTable(h)

	id, err := tb.Add(0x0066, breakpoints.PC)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 0)

	id, err = tb.Add(0x3c00, breakpoints.Memory)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 1)
	test.ExpectEquality(t, h.set[1], uint16(0x3c00))

	l := tb.List()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], breakpoints.Breakpoint{ID: 0, Address: 0x0066, Kind: breakpoints.PC, Enabled: true})
	test.ExpectEquality(t, l[1], breakpoints.Breakpoint{ID: 1, Address: 0x3c00, Kind: breakpoints.Memory, Enabled: true})

	test.ExpectSuccess(t, tb.Remove(0))
	test.DemandEquality(t, len(h.cleared), 1)
	test.ExpectEquality(t, h.cleared[0], 0)

	l = tb.List()
	test.DemandEquality(t, len(l), 1)
	test.ExpectEquality(t, l[0].ID, 1)

	// the lowest freed id is reused
	id, err = tb.Add(0x1234, breakpoints.IO)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 0)
}

func TestTableFull(t *testing.T) {
	tb := breakpoints.NewTable(nil)

	for i := range breakpoints.Capacity {
		id, err := tb.Add(uint16(i), breakpoints.PC)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, id, i)
	}

	before := tb.List()

	id, err := tb.Add(0xffff, breakpoints.PC)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, breakpoints.TableFull))
	test.ExpectEquality(t, id, -1)

	// nothing has changed. in particular slot zero has not been overwritten
	after := tb.List()
	test.DemandEquality(t, len(after), len(before))
	for i := range before {
		test.ExpectEquality(t, after[i], before[i])
	}

	// freeing a slot in the middle means the next add goes there
	test.ExpectSuccess(t, tb.Remove(64))
	id, err = tb.Add(0xffff, breakpoints.PC)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 64)
}

func TestInvalidID(t *testing.T) {
	tb := breakpoints.NewTable(nil)

	err := tb.Remove(-1)
	test.ExpectSuccess(t, curated.Is(err, breakpoints.InvalidID))

	err = tb.Remove(breakpoints.Capacity)
	test.ExpectSuccess(t, curated.Is(err, breakpoints.InvalidID))

	// removing a free slot is fine
	test.ExpectSuccess(t, tb.Remove(10))
}

func TestHookFailure(t *testing.T) {
	h := &mockHook{set: make(map[int]uint16), fail: true}
	tb := breakpoints.NewTable(h)

	_, err := tb.Add(0x1000, breakpoints.PC)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(tb.List()), 0)

	h.fail = false
	_, err = tb.Add(0x1000, breakpoints.PC)
	test.ExpectSuccess(t, err)

	h.fail = true
	test.ExpectFailure(t, tb.Remove(0))
	test.ExpectEquality(t, len(tb.List()), 1)
}

func TestString(t *testing.T) {
	tb := breakpoints.NewTable(nil)
	tb.Add(0x0066, breakpoints.PC)
	tb.Add(0x37e8, breakpoints.Memory)
	test.ExpectEquality(t, tb.String(), "#0 pc 0x0066\n#1 mem 0x37e8\n")
}
