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
	"fmt"
	"strconv"
	"strings"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/debugger/govern"
)

// ParseError is the sentinal error pattern for commands that can't be
// understood.
const ParseError = "codec: cannot parse %q: %s"

// prefix of every command
const commandPrefix = "action/"

// Verb of a command.
type Verb int

// List of valid verbs.
const (
	Refresh Verb = iota
	Control
	GetMemory
	SetMemory
	AddBreakpoint
	RemoveBreakpoint
	KeyEvent
)

func (v Verb) String() string {
	switch v {
	case Refresh:
		return "refresh"
	case Control:
		return "control"
	case GetMemory:
		return "get_memory"
	case SetMemory:
		return "set_memory"
	case AddBreakpoint:
		return "add_breakpoint"
	case RemoveBreakpoint:
		return "remove_breakpoint"
	case KeyEvent:
		return "key_event"
	}
	return "unknown"
}

// Command is a decoded client message. Which fields are meaningful depends on
// the Verb.
type Command struct {
	Verb Verb

	// Control
	Action govern.Action

	// GetMemory. Force is true for the force_update form of the command, in
	// which case Start and Length describe the entire address space
	Start  uint16
	Length uint32
	Force  bool

	// AddBreakpoint and SetMemory
	Address uint16
	Kind    breakpoints.Kind
	Value   uint8

	// RemoveBreakpoint
	ID int

	// KeyEvent
	Key   string
	Down  bool
	Shift bool
}

func (c Command) String() string {
	switch c.Verb {
	case Control:
		return c.Action.String()
	case GetMemory:
		if c.Force {
			return "get_memory force_update"
		}
		return fmt.Sprintf("get_memory %#04x/%d", c.Start, c.Length)
	case SetMemory:
		return fmt.Sprintf("set_memory %#04x=%#02x", c.Address, c.Value)
	case AddBreakpoint:
		return fmt.Sprintf("add_breakpoint %s %#04x", c.Kind, c.Address)
	case RemoveBreakpoint:
		return fmt.Sprintf("remove_breakpoint #%d", c.ID)
	case KeyEvent:
		return fmt.Sprintf("key_event %q down=%v shift=%v", c.Key, c.Down, c.Shift)
	}
	return c.Verb.String()
}

// verbs that take no parameters and map directly to a control action
var controlVerbs = map[string]govern.Action{
	"step":       govern.Step,
	"step-over":  govern.StepOver,
	"continue":   govern.Continue,
	"stop":       govern.Halt,
	"pause":      govern.Pause,
	"soft_reset": govern.SoftReset,
	"hard_reset": govern.HardReset,
}

// ParseCommand decodes a text message from the client. Errors are curated
// errors with the ParseError pattern.
func ParseCommand(msg string) (Command, error) {
	rest, ok := strings.CutPrefix(msg, commandPrefix)
	if !ok {
		return Command{}, curated.Errorf(ParseError, msg, "not an action")
	}

	verb, params, hasParams := strings.Cut(rest, "/")

	fail := func(reason string) (Command, error) {
		return Command{}, curated.Errorf(ParseError, msg, reason)
	}

	if a, ok := controlVerbs[verb]; ok {
		if hasParams {
			return fail("unexpected parameters")
		}
		return Command{Verb: Control, Action: a}, nil
	}

	switch verb {
	case "refresh":
		if hasParams {
			return fail("unexpected parameters")
		}
		return Command{Verb: Refresh}, nil

	case "get_memory":
		if params == "force_update" {
			return Command{Verb: GetMemory, Start: 0, Length: 0x10000, Force: true}, nil
		}
		s, l, ok := strings.Cut(params, "/")
		if !ok {
			return fail("expected start/length")
		}
		start, err := parseAddress(s)
		if err != nil {
			return fail(err.Error())
		}
		length, err := strconv.ParseUint(l, 10, 32)
		if err != nil || length > 0x10000 {
			return fail("bad length")
		}
		return Command{Verb: GetMemory, Start: start, Length: uint32(length)}, nil

	case "set_memory":
		a, v, ok := strings.Cut(params, "/")
		if !ok {
			return fail("expected address/value")
		}
		addr, err := parseAddress(a)
		if err != nil {
			return fail(err.Error())
		}
		value, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return fail("bad value")
		}
		return Command{Verb: SetMemory, Address: addr, Value: uint8(value)}, nil

	case "add_breakpoint":
		k, a, ok := strings.Cut(params, "/")
		if !ok {
			return fail("expected kind/address")
		}
		var kind breakpoints.Kind
		switch k {
		case "pc":
			kind = breakpoints.PC
		case "mem":
			kind = breakpoints.Memory
		case "io":
			kind = breakpoints.IO
		default:
			return fail("unknown breakpoint kind")
		}
		addr, err := parseAddress(a)
		if err != nil {
			return fail(err.Error())
		}
		return Command{Verb: AddBreakpoint, Address: addr, Kind: kind}, nil

	case "remove_breakpoint":
		id, err := strconv.Atoi(params)
		if err != nil {
			return fail("bad breakpoint id")
		}
		return Command{Verb: RemoveBreakpoint, ID: id}, nil

	case "key_event":
		// the key is the last parameter and may itself contain a slash
		p := strings.SplitN(params, "/", 3)
		if len(p) != 3 {
			return fail("expected down/shift/key")
		}
		down, err := parseFlag(p[0])
		if err != nil {
			return fail(err.Error())
		}
		shift, err := parseFlag(p[1])
		if err != nil {
			return fail(err.Error())
		}
		if p[2] == "" {
			return fail("missing key")
		}
		return Command{Verb: KeyEvent, Key: p[2], Down: down, Shift: shift}, nil
	}

	return fail("unknown command")
}

func parseAddress(s string) (uint16, error) {
	a, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address (%s)", s)
	}
	return uint16(a), nil
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("bad flag (%s)", s)
}
