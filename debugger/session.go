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

package debugger

import (
	"context"
	"time"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/debugger/codec"
	"github.com/trs-io/xray/debugger/dirty"
	"github.com/trs-io/xray/debugger/govern"
	"github.com/trs-io/xray/debugger/scheduler"
	"github.com/trs-io/xray/logger"
	"github.com/trs-io/xray/outbound"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// DefaultTickInterval is how often the session checks whether an update is
// due.
const DefaultTickInterval = 40 * time.Millisecond

// Session connects a single client to the emulation. It should be created
// once with NewSession() and then the Run() function called.
type Session struct {
	emu  Emulator
	keys KeyInjector

	dirty *dirty.Range
	bps   *breakpoints.Table
	ctrl  *govern.Controller
	sched *scheduler.Scheduler
	out   *outbound.Channel

	tickInterval atomic.Duration

	// the next flush sends the entire address space
	forceFull atomic.Bool
}

// NewSession is the preferred method of initialisation for the Session type.
// The keys argument can be nil, in which case key events from the client are
// ignored.
func NewSession(emu Emulator, keys KeyInjector, out *outbound.Channel) *Session {
	s := &Session{
		emu:   emu,
		keys:  keys,
		dirty: dirty.NewRange(),
		bps:   breakpoints.NewTable(emu),
		ctrl:  govern.NewController(),
		sched: scheduler.New(scheduler.DefaultInterval),
		out:   out,
	}
	s.tickInterval.Store(DefaultTickInterval)
	emu.RegisterWriteHook(s.dirty.RecordWrite)
	return s
}

// Breakpoints returns the breakpoint table.
func (s *Session) Breakpoints() *breakpoints.Table {
	return s.bps
}

// Controller returns the control state machine.
func (s *Session) Controller() *govern.Controller {
	return s.ctrl
}

// SetUpdateInterval changes the minimum time between updates while the
// emulation is running.
func (s *Session) SetUpdateInterval(d time.Duration) {
	s.sched.SetInterval(d)
}

// SetTickInterval changes how often the session checks whether an update is
// due. Takes effect on the next tick.
func (s *Session) SetTickInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultTickInterval
	}
	s.tickInterval.Store(d)
}

// Run the session. Blocks until the context is cancelled.
func (s *Session) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.ctrl.Run(ctx, s)
	})

	g.Go(func() error {
		d := s.tickInterval.Load()
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-t.C:
				s.Tick(now)
				if nd := s.tickInterval.Load(); nd != d {
					d = nd
					t.Reset(d)
				}
			}
		}
	})

	return g.Wait()
}

// Attach a new client connection. The client is sent the current status and
// the entire address space.
func (s *Session) Attach(conn outbound.Conn) {
	s.out.Attach(conn)
	s.forceFull.Store(true)
	logger.Log(logger.Allow, "debugger", "client attached")
	s.flush(time.Now())
}

// Detach a client connection.
func (s *Session) Detach(conn outbound.Conn) {
	if s.out.Detach(conn) {
		logger.Log(logger.Allow, "debugger", "client detached")

		// breakpoints stay in the emulator after the client has gone
		if bps := s.bps.String(); bps != "" {
			logger.Logf(logger.Allow, "debugger", "breakpoints still set:\n%s", bps)
		}
	}
}

// Tick sends an update to the client if one is due.
func (s *Session) Tick(now time.Time) {
	if !s.sched.Due(now, s.ctrl.Running(), s.ctrl.Halting()) {
		return
	}
	s.ctrl.TakeHalting()

	// the dirty range is left untouched until there is someone to send it to
	if !s.out.Connected() {
		return
	}

	s.flush(now)
}

// flush sends the status and the changed memory.
func (s *Session) flush(now time.Time) {
	s.pushStatus()
	s.sendMemory(0, dirty.AddressSpace, s.forceFull.Swap(false))
	s.sched.Flushed(now)
}

func (s *Session) pushStatus() {
	if !s.out.Connected() {
		return
	}

	b, err := codec.EncodeStatus(s.emu.Identity(), s.bps.List(), s.emu.Registers())
	if err != nil {
		logger.Log(logger.Allow, "debugger", err)
		return
	}

	if err := s.out.Send(outbound.Text(string(b))); err != nil {
		logger.Log(logger.Allow, "debugger", err)
	}
}

func (s *Session) sendMemory(start uint16, length uint32, force bool) {
	if !s.out.Connected() {
		return
	}

	start, length = s.dirty.ConsumeAndReset(start, length, force)

	data := make([]byte, length)
	if p, ok := s.emu.(MemoryPeeker); ok {
		p.PeekMemory(start, data)
	} else {
		for i := range data {
			data[i] = s.emu.ReadMemory(start + uint16(i))
		}
	}

	err := s.out.Send(outbound.Binary(codec.EncodeMemoryFrame(codec.Segment{Start: start, Data: data})))
	if err != nil {
		logger.Log(logger.Allow, "debugger", err)

		// the frame has been dropped but the memory is still changed. put the
		// span back so that it is sent with the next update
		if curated.Is(err, outbound.ChannelBusy) && length > 0 {
			s.dirty.RecordWrite(start)
			s.dirty.RecordWrite(start + uint16(length-1))
		}
	}
}

// Dispatch implements the govern.Dispatcher interface.
func (s *Session) Dispatch(ctx context.Context, a govern.Action) error {
	err := s.emu.Control(ctx, a)

	switch a {
	case govern.Step, govern.StepOver, govern.SoftReset, govern.HardReset:
		s.flush(time.Now())
	}

	return err
}

// HandleMessage handles a text message from the client. Messages that can't
// be understood are logged and otherwise ignored.
func (s *Session) HandleMessage(msg string) {
	cmd, err := codec.ParseCommand(msg)
	if err != nil {
		logger.Log(logger.Allow, "debugger", err)
		return
	}

	switch cmd.Verb {
	case codec.Refresh:
		s.pushStatus()

	case codec.Control:
		s.ctrl.Request(cmd.Action)

	case codec.GetMemory:
		s.sendMemory(cmd.Start, cmd.Length, cmd.Force)

	case codec.SetMemory:
		s.emu.WriteMemory(cmd.Address, cmd.Value)
		s.sendMemory(0, dirty.AddressSpace, false)

	case codec.AddBreakpoint:
		id, err := s.bps.Add(cmd.Address, cmd.Kind)
		if err != nil {
			logger.Log(logger.Allow, "debugger", err)
			return
		}
		logger.Logf(logger.Allow, "debugger", "breakpoint #%d added (%s %#04x)", id, cmd.Kind, cmd.Address)
		s.pushStatus()

	case codec.RemoveBreakpoint:
		if err := s.bps.Remove(cmd.ID); err != nil {
			logger.Log(logger.Allow, "debugger", err)
			return
		}
		s.pushStatus()

	case codec.KeyEvent:
		if s.keys == nil {
			return
		}
		if err := s.keys.InjectKey(cmd.Key, cmd.Down, cmd.Shift); err != nil {
			logger.Log(logger.Allow, "debugger", err)
		}
	}
}
