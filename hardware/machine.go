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

import (
	"context"
	"crypto/sha1"
	"fmt"
	"sync"
	"time"

	"github.com/koron-go/z80"
	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/debugger/codec"
	"github.com/trs-io/xray/debugger/govern"
	"github.com/trs-io/xray/logger"
	"github.com/trs-io/xray/virtualio/keys"
	"go.uber.org/atomic"
)

// Sentinal error patterns.
const (
	ROMTooLarge       = "hardware: rom too large (%d bytes)"
	UnsupportedAction = "hardware: unsupported action (%v)"
	InvalidPort       = "hardware: invalid io port (%#04x)"
)

// Clock speed of the Model I.
const (
	ClockHz  = 1774080
	ClockMHz = ClockHz / 1000000.0
)

// SystemName is reported to the debugger client.
const SystemName = "Xray TRS-80"

// execution is divided into slices. the machine's critical section is held for
// the duration of a slice. when throttled, the machine sleeps at the end of
// each slice so that it runs at roughly the speed of the real machine
const sliceDuration = 10 * time.Millisecond

// instructions are assumed to take this many T-States on average
const averageTStates = 8

const instructionsPerSlice = ClockHz / averageTStates * int(sliceDuration/time.Millisecond) / 1000

// Printer is the device attached to the printer address.
type Printer interface {
	PrinterWrite(b uint8)
	PrinterNewLine()
	PrinterRead() uint8
}

type breakpoint struct {
	addr uint16
	kind breakpoints.Kind
}

// Machine is a TRS-80 Model I. It implements the emulator interface required
// by the debugger and the screen and keyboard interfaces required by the
// virtual I/O channel.
type Machine struct {
	// crit guards the CPU and memory. it is held for the duration of an
	// execution slice
	crit sync.Mutex

	cpu z80.CPU
	ram [0x10000]uint8
	rom []uint8

	romVersion   string
	instructions uint64

	kb        *keyboard
	printer   Printer
	writeHook func(addr uint16)

	bpCrit sync.Mutex
	bps    map[int]breakpoint

	// breakpoint lookups rebuilt on every change. the maps are never changed
	// after they have been built
	pcBreaks  map[uint16]struct{}
	memBreaks map[uint16]struct{}
	ioBreaks  map[uint8]struct{}

	// trap is set by a memory or IO breakpoint
	trap bool

	throttle atomic.Bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The ROM is loaded at address zero. If the rom argument is nil a small
// builtin ROM is used.
func NewMachine(rom []uint8) (*Machine, error) {
	m := &Machine{
		kb:        newKeyboard(),
		bps:       make(map[int]breakpoint),
		pcBreaks:  make(map[uint16]struct{}),
		memBreaks: make(map[uint16]struct{}),
		ioBreaks:  make(map[uint8]struct{}),
	}
	m.throttle.Store(true)

	if rom == nil {
		m.rom = builtinROM
		m.romVersion = BuiltinROMVersion
	} else {
		if len(rom) > ROMSize {
			return nil, curated.Errorf(ROMTooLarge, len(rom))
		}
		m.rom = rom
		m.romVersion = fmt.Sprintf("%x", sha1.Sum(rom))[:8]
	}

	m.cpu = z80.CPU{
		Memory: &memory{m: m},
		IO:     &ioBus{m: m},
	}

	m.reset(true)

	return m, nil
}

// SetThrottle limits the speed of the machine to that of the real hardware.
func (m *Machine) SetThrottle(throttle bool) {
	m.throttle.Store(throttle)
}

// AttachPrinter attaches a printer to the machine. The printer can be nil.
func (m *Machine) AttachPrinter(p Printer) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.printer = p
}

// RegisterWriteHook implements the debugger.Emulator interface.
func (m *Machine) RegisterWriteHook(hook func(addr uint16)) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.writeHook = hook
}

// Identity implements the debugger.Emulator interface.
func (m *Machine) Identity() codec.Identity {
	return codec.Identity{
		SystemName: SystemName,
		Model:      codec.ModelI,
		ROMVersion: m.romVersion,
		Capabilities: codec.Capabilities{
			Step:              true,
			StepOver:          true,
			Continue:          true,
			Pause:             true,
			PCBreakpoints:     true,
			MemoryBreakpoints: true,
			IOBreakpoints:     true,
			MemoryRange: codec.MemoryRange{
				Start:  0,
				Length: 0x10000,
			},
		},
	}
}

func pair(r z80.Register) uint16 {
	return uint16(r.Hi)<<8 | uint16(r.Lo)
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Registers implements the debugger.Emulator interface.
func (m *Machine) Registers() codec.Registers {
	m.crit.Lock()
	defer m.crit.Unlock()

	s := m.cpu.States
	return codec.Registers{
		PC:            s.PC,
		SP:            s.SP,
		AF:            pair(s.AF),
		BC:            pair(s.BC),
		DE:            pair(s.DE),
		HL:            pair(s.HL),
		AFPrime:       pair(s.Alternate.AF),
		BCPrime:       pair(s.Alternate.BC),
		DEPrime:       pair(s.Alternate.DE),
		HLPrime:       pair(s.Alternate.HL),
		IX:            s.IX,
		IY:            s.IY,
		I:             s.IR.Hi,
		R:             s.IR.Lo,
		R7:            s.IR.Lo,
		TStates:       m.instructions * averageTStates,
		ClockMHz:      ClockMHz,
		IFF1:          flag(s.IFF1),
		IFF2:          flag(s.IFF2),
		InterruptMode: uint8(s.IM),
	}
}

// ReadMemory implements the debugger.Emulator interface.
func (m *Machine) ReadMemory(addr uint16) uint8 {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.read(addr)
}

// PeekMemory implements the debugger.MemoryPeeker interface.
func (m *Machine) PeekMemory(start uint16, data []byte) {
	m.crit.Lock()
	defer m.crit.Unlock()
	for i := range data {
		data[i] = m.read(start + uint16(i))
	}
}

// WriteMemory implements the debugger.Emulator interface. Unlike writes made
// by the CPU, the ROM can be changed.
func (m *Machine) WriteMemory(addr uint16, data uint8) {
	m.crit.Lock()
	defer m.crit.Unlock()

	if addr < ROMOrigin+ROMSize {
		m.ram[addr] = data
		if m.writeHook != nil {
			m.writeHook(addr)
		}
		return
	}

	m.write(addr, data)
}

// ScreenSize implements the virtualio.ScreenSource interface.
func (m *Machine) ScreenSize() (uint8, uint8) {
	return VideoWidth, VideoHeight
}

// ScreenBuffer implements the virtualio.ScreenSource interface.
func (m *Machine) ScreenBuffer() []byte {
	m.crit.Lock()
	defer m.crit.Unlock()
	b := make([]byte, VideoWidth*VideoHeight)
	copy(b, m.ram[VideoOrigin:VideoMemtop+1])
	return b
}

// InjectVirtualKey implements the virtualio.Keyboard interface.
func (m *Machine) InjectVirtualKey(vk keys.VirtualKey, down bool, shift bool) {
	if !m.kb.inject(vk, down, shift) {
		logger.Logf(logger.Allow, "hardware", "no key for %s", vk)
	}
}

// SetBreakpoint implements the breakpoints.Hook interface.
func (m *Machine) SetBreakpoint(id int, addr uint16, kind breakpoints.Kind) error {
	if kind == breakpoints.IO && addr > 0xff {
		return curated.Errorf(InvalidPort, addr)
	}

	m.bpCrit.Lock()
	defer m.bpCrit.Unlock()
	m.bps[id] = breakpoint{addr: addr, kind: kind}
	m.rebuildBreaks()
	return nil
}

// ClearBreakpoint implements the breakpoints.Hook interface.
func (m *Machine) ClearBreakpoint(id int) error {
	m.bpCrit.Lock()
	defer m.bpCrit.Unlock()
	delete(m.bps, id)
	m.rebuildBreaks()
	return nil
}

// must be called with bpCrit locked
func (m *Machine) rebuildBreaks() {
	pc := make(map[uint16]struct{})
	mem := make(map[uint16]struct{})
	io := make(map[uint8]struct{})
	for _, b := range m.bps {
		switch b.kind {
		case breakpoints.PC:
			pc[b.addr] = struct{}{}
		case breakpoints.Memory:
			mem[b.addr] = struct{}{}
		case breakpoints.IO:
			io[uint8(b.addr)] = struct{}{}
		}
	}
	m.pcBreaks = pc
	m.memBreaks = mem
	m.ioBreaks = io
}

func (m *Machine) breaks() (map[uint16]struct{}, map[uint16]struct{}, map[uint8]struct{}) {
	m.bpCrit.Lock()
	defer m.bpCrit.Unlock()
	return m.pcBreaks, m.memBreaks, m.ioBreaks
}

// called by the CPU on every write. the critical section is already held
func (m *Machine) checkMemoryBreak(addr uint16) {
	_, mem, _ := m.breaks()
	if _, ok := mem[addr]; ok {
		m.springTrap("memory", addr)
	}
}

// called by the CPU on every IO access. the critical section is already held
func (m *Machine) checkIOBreak(port uint8) {
	_, _, io := m.breaks()
	if _, ok := io[port]; ok {
		m.springTrap("io", uint16(port))
	}
}

func (m *Machine) springTrap(kind string, addr uint16) {
	m.trap = true
	logger.Logf(logger.Allow, "hardware", "%s breakpoint %#04x", kind, addr)
}

// Control implements the debugger.Emulator interface.
func (m *Machine) Control(ctx context.Context, action govern.Action) error {
	switch action {
	case govern.Step:
		m.crit.Lock()
		m.step()
		m.crit.Unlock()
	case govern.StepOver:
		m.stepOver(ctx)
	case govern.Continue:
		m.run(ctx, -1)
	case govern.Halt, govern.Pause:
		// the Continue action has already been stopped
	case govern.SoftReset:
		m.reset(false)
	case govern.HardReset:
		m.reset(true)
	default:
		return curated.Errorf(UnsupportedAction, action)
	}
	return nil
}

// must be called with the critical section locked
func (m *Machine) step() {
	m.cpu.Step()
	m.instructions++
}

// length of the call instruction at the address or zero if it is not a call
// instruction. must be called with the critical section locked
func (m *Machine) callLength(addr uint16) int {
	switch op := m.read(addr); {
	case op == 0xcd:
		return 3
	case op&0xc7 == 0xc4:
		// CALL cc,nn
		return 3
	case op&0xc7 == 0xc7:
		// RST p
		return 1
	}
	return 0
}

// step over a call instruction. any other instruction is stepped normally
func (m *Machine) stepOver(ctx context.Context) {
	m.crit.Lock()
	pc := m.cpu.PC
	n := m.callLength(pc)
	if n == 0 {
		m.step()
		m.crit.Unlock()
		return
	}
	m.crit.Unlock()

	m.run(ctx, int(pc+uint16(n)))
}

// run until a breakpoint, the CPU halts or the context is cancelled. if target
// is zero or more then execution also stops when the PC reaches that address.
// the instruction at the current PC is always executed even if it is a
// breakpoint
func (m *Machine) run(ctx context.Context, target int) {
	first := true
	for ctx.Err() == nil {
		start := time.Now()

		if m.runSlice(first, target) {
			return
		}
		first = false

		if !m.throttle.Load() {
			continue
		}

		if d := sliceDuration - time.Since(start); d > 0 {
			t := time.NewTimer(d)
			select {
			case <-ctx.Done():
			case <-t.C:
			}
			t.Stop()
		}
	}
}

// returns true if execution should stop
func (m *Machine) runSlice(first bool, target int) bool {
	m.crit.Lock()
	defer m.crit.Unlock()

	pcs, _, _ := m.breaks()

	for i := range instructionsPerSlice {
		if !first || i > 0 {
			pc := m.cpu.PC
			if int(pc) == target {
				return true
			}
			if _, ok := pcs[pc]; ok {
				logger.Logf(logger.Allow, "hardware", "pc breakpoint %#04x", pc)
				return true
			}
		}

		m.trap = false
		m.step()
		if m.trap || m.cpu.HALT {
			return true
		}
	}

	return false
}

func (m *Machine) reset(hard bool) {
	m.crit.Lock()
	defer m.crit.Unlock()

	m.cpu.States = z80.States{}
	m.kb.reset()

	if !hard {
		return
	}

	m.instructions = 0
	clear(m.ram[:])
	copy(m.ram[ROMOrigin:], m.rom)
	for i := VideoOrigin; i <= VideoMemtop; i++ {
		m.ram[i] = ' '
	}

	if m.writeHook != nil {
		m.writeHook(0x0000)
		m.writeHook(0xffff)
	}
}
