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

package codec_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/debugger/codec"
	"github.com/trs-io/xray/debugger/govern"
	"github.com/trs-io/xray/test"
	"github.com/trs-io/xray/version"
)

func TestMemoryFrame(t *testing.T) {
	f := codec.EncodeMemoryFrame(codec.Segment{Start: 0x1000, Data: []byte{1, 2, 3, 4}})
	test.ExpectBytes(t, f, []byte{0x10, 0x00, 1, 2, 3, 4})

	// empty segment is the address only
	f = codec.EncodeMemoryFrame(codec.Segment{Start: 0xabcd})
	test.ExpectBytes(t, f, []byte{0xab, 0xcd})

	seg, ok := codec.DecodeMemoryFrame([]byte{0x3c, 0x00, 0x41, 0x42})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, seg.Start, uint16(0x3c00))
	test.ExpectBytes(t, seg.Data, []byte{0x41, 0x42})

	_, ok = codec.DecodeMemoryFrame([]byte{0x3c})
	test.ExpectFailure(t, ok)
}

func TestEncodeStatus(t *testing.T) {
	ident := codec.Identity{
		SystemName: "trs80",
		Model:      codec.ModelI,
		ROMVersion: "Level II",
		Capabilities: codec.Capabilities{
			Step:          true,
			PCBreakpoints: true,
			MemoryRange:   codec.MemoryRange{Start: 0, Length: 0x10000},
		},
	}

	bps := []breakpoints.Breakpoint{
		{ID: 0, Address: 0x0066, Kind: breakpoints.PC, Enabled: true},
		{ID: 1, Address: 0x1234, Kind: breakpoints.PC, Enabled: false},
		{ID: 5, Address: 0x3c00, Kind: breakpoints.Memory, Enabled: true},
	}

	regs := codec.Registers{
		PC:            0x1234,
		SP:            0x4000,
		AF:            0xff44,
		R:             0x85,
		R7:            0xfe,
		IFF1:          1,
		InterruptMode: 1,
		TStates:       1000,
		ClockMHz:      1.77,
	}

	b, err := codec.EncodeStatus(ident, bps, regs)
	test.DemandSuccess(t, err)

	var m map[string]any
	test.DemandSuccess(t, json.Unmarshal(b, &m))

	ctx := m["context"].(map[string]any)
	test.ExpectEquality(t, ctx["system_name"].(string), "trs80")
	test.ExpectEquality(t, ctx["model"].(float64), 1.0)
	test.ExpectEquality(t, ctx["rom_version"].(string), "Level II")
	test.ExpectEquality(t, ctx["protocol"].(string), version.Protocol)

	caps := ctx["capabilities"].(map[string]any)
	test.ExpectEquality(t, caps["step"].(bool), true)
	test.ExpectEquality(t, caps["continue"].(bool), false)
	test.ExpectEquality(t, caps["memory_range"].(map[string]any)["length"].(float64), 65536.0)

	// disabled breakpoints are not included
	l := m["breakpoints"].([]any)
	test.DemandEquality(t, len(l), 2)
	bp := l[1].(map[string]any)
	test.ExpectEquality(t, bp["id"].(float64), 5.0)
	test.ExpectEquality(t, bp["address"].(float64), float64(0x3c00))
	test.ExpectEquality(t, bp["type"].(float64), 1.0)

	r := m["registers"].(map[string]any)
	test.ExpectEquality(t, r["pc"].(float64), float64(0x1234))
	test.ExpectEquality(t, r["af"].(float64), float64(0xff44))
	test.ExpectEquality(t, r["r_1"].(float64), float64(0x85))
	test.ExpectEquality(t, r["r_2"].(float64), float64(0x7e))
	test.ExpectEquality(t, r["z80_iff1"].(float64), 1.0)
	test.ExpectEquality(t, r["z80_iff2"].(float64), 0.0)
	test.ExpectEquality(t, r["z80_interrupt_mode"].(float64), 1.0)
	test.ExpectEquality(t, r["z80_t_state_counter"].(float64), 1000.0)
	test.ExpectEquality(t, r["z80_clockspeed"].(float64), 1.77)

	_, ok := r["R7"]
	test.ExpectFailure(t, ok)
}

func TestEncodeStatusNoBreakpoints(t *testing.T) {
	b, err := codec.EncodeStatus(codec.Identity{}, nil, codec.Registers{})
	test.DemandSuccess(t, err)

	// an empty list rather than null
	test.ExpectSuccess(t, strings.Contains(string(b), `"breakpoints":[]`))
}

func TestParseControl(t *testing.T) {
	for msg, a := range map[string]govern.Action{
		"action/step":       govern.Step,
		"action/step-over":  govern.StepOver,
		"action/continue":   govern.Continue,
		"action/stop":       govern.Halt,
		"action/pause":      govern.Pause,
		"action/soft_reset": govern.SoftReset,
		"action/hard_reset": govern.HardReset,
	} {
		c, err := codec.ParseCommand(msg)
		test.ExpectSuccess(t, err, msg)
		test.ExpectEquality(t, c.Verb, codec.Control, msg)
		test.ExpectEquality(t, c.Action, a, msg)
	}

	c, err := codec.ParseCommand("action/refresh")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Verb, codec.Refresh)
}

func TestParseUnexpectedParameters(t *testing.T) {
	for _, msg := range []string{
		"action/step/junk",
		"action/continue/",
		"action/stop/1",
		"action/refresh/now",
	} {
		_, err := codec.ParseCommand(msg)
		test.ExpectSuccess(t, curated.Is(err, codec.ParseError), msg)
	}
}

func TestParseGetMemory(t *testing.T) {
	c, err := codec.ParseCommand("action/get_memory/15360/1024")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Verb, codec.GetMemory)
	test.ExpectEquality(t, c.Start, uint16(15360))
	test.ExpectEquality(t, c.Length, uint32(1024))
	test.ExpectFailure(t, c.Force)

	c, err = codec.ParseCommand("action/get_memory/0/65536")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Length, uint32(65536))

	c, err = codec.ParseCommand("action/get_memory/force_update")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Force)
	test.ExpectEquality(t, c.Start, uint16(0))
	test.ExpectEquality(t, c.Length, uint32(65536))

	for _, msg := range []string{
		"action/get_memory",
		"action/get_memory/100",
		"action/get_memory/65536/1",
		"action/get_memory/0/65537",
		"action/get_memory/x/1",
		"action/get_memory/1/-1",
	} {
		_, err = codec.ParseCommand(msg)
		test.ExpectSuccess(t, curated.Is(err, codec.ParseError), msg)
	}
}

func TestParseBreakpoints(t *testing.T) {
	c, err := codec.ParseCommand("action/add_breakpoint/pc/102")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Verb, codec.AddBreakpoint)
	test.ExpectEquality(t, c.Kind, breakpoints.PC)
	test.ExpectEquality(t, c.Address, uint16(102))

	c, err = codec.ParseCommand("action/add_breakpoint/mem/15360")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Kind, breakpoints.Memory)

	c, err = codec.ParseCommand("action/add_breakpoint/io/255")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Kind, breakpoints.IO)
	test.ExpectEquality(t, c.Address, uint16(255))

	_, err = codec.ParseCommand("action/add_breakpoint/xx/1")
	test.ExpectSuccess(t, curated.Is(err, codec.ParseError))
	_, err = codec.ParseCommand("action/add_breakpoint/pc/abc")
	test.ExpectSuccess(t, curated.Is(err, codec.ParseError))
	_, err = codec.ParseCommand("action/add_breakpoint/pc/70000")
	test.ExpectSuccess(t, curated.Is(err, codec.ParseError))

	c, err = codec.ParseCommand("action/remove_breakpoint/3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Verb, codec.RemoveBreakpoint)
	test.ExpectEquality(t, c.ID, 3)

	_, err = codec.ParseCommand("action/remove_breakpoint/three")
	test.ExpectSuccess(t, curated.Is(err, codec.ParseError))
}

func TestParseSetMemory(t *testing.T) {
	c, err := codec.ParseCommand("action/set_memory/15360/65")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Verb, codec.SetMemory)
	test.ExpectEquality(t, c.Address, uint16(15360))
	test.ExpectEquality(t, c.Value, uint8(65))

	_, err = codec.ParseCommand("action/set_memory/15360/256")
	test.ExpectSuccess(t, curated.Is(err, codec.ParseError))
}

func TestParseKeyEvent(t *testing.T) {
	c, err := codec.ParseCommand("action/key_event/1/0/a")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Verb, codec.KeyEvent)
	test.ExpectEquality(t, c.Key, "a")
	test.ExpectSuccess(t, c.Down)
	test.ExpectFailure(t, c.Shift)

	c, err = codec.ParseCommand("action/key_event/0/1/ArrowLeft")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Key, "ArrowLeft")
	test.ExpectFailure(t, c.Down)
	test.ExpectSuccess(t, c.Shift)

	// the slash key
	c, err = codec.ParseCommand("action/key_event/1/0//")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Key, "/")

	for _, msg := range []string{
		"action/key_event/1/0/",
		"action/key_event/1/0",
		"action/key_event/2/0/a",
		"action/key_event/1/x/a",
	} {
		_, err = codec.ParseCommand(msg)
		test.ExpectSuccess(t, curated.Is(err, codec.ParseError), msg)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, msg := range []string{
		"",
		"step",
		"action/",
		"action/jump/100",
		"vikb?a|1|0",
	} {
		_, err := codec.ParseCommand(msg)
		test.ExpectSuccess(t, curated.Is(err, codec.ParseError), msg)
	}
}

func TestCommandString(t *testing.T) {
	c, _ := codec.ParseCommand("action/add_breakpoint/pc/102")
	test.ExpectEquality(t, c.String(), "add_breakpoint pc 0x0066")
	c, _ = codec.ParseCommand("action/step-over")
	test.ExpectEquality(t, c.String(), "step-over")
}
