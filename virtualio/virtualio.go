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

package virtualio

import (
	"context"
	"strings"
	"time"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/logger"
	"github.com/trs-io/xray/outbound"
	"github.com/trs-io/xray/virtualio/keys"
	"go.uber.org/atomic"
)

// Sentinal error patterns.
const (
	UnknownKey = "virtualio: unknown key (%s)"
)

// Frame identifiers.
const (
	ScreenUpdate   = 10
	PrinterByte    = 20
	PrinterNewLine = 21
)

// Values returned by PrinterRead().
const (
	PrinterAttached = 0x30
	PrinterAbsent   = 0xff
)

// Default timings. Can be changed with SetCadence() and SetSendWait().
const (
	DefaultCadence  = 150 * time.Millisecond
	DefaultSendWait = 10 * time.Millisecond
)

// key event prefix
const keyEventPrefix = "vikb?"

// ScreenSource is implemented by the emulation's display.
type ScreenSource interface {
	ScreenSize() (width uint8, height uint8)

	// ScreenBuffer returns the current contents of the screen, one byte per
	// character cell. A nil buffer means there is nothing to show
	ScreenBuffer() []byte
}

// Keyboard is implemented by the emulation's keyboard.
type Keyboard interface {
	InjectVirtualKey(vk keys.VirtualKey, down bool, shift bool)
}

// Channel is the virtual I/O channel. It should be created with NewChannel().
type Channel struct {
	screen  ScreenSource
	kb      Keyboard
	mapping *keys.Mapping
	out     *outbound.Channel

	cadence atomic.Duration
}

// NewChannel is the preferred method of initialisation for the Channel type.
// The screen and keyboard arguments can be nil.
func NewChannel(screen ScreenSource, kb Keyboard, mapping *keys.Mapping) *Channel {
	vi := &Channel{
		screen:  screen,
		kb:      kb,
		mapping: mapping,
		out:     outbound.NewChannel("virtualio", DefaultSendWait),
	}
	vi.cadence.Store(DefaultCadence)
	return vi
}

// SetCadence changes how often the screen is sent. Values of zero or less are
// ignored.
func (vi *Channel) SetCadence(d time.Duration) {
	if d <= 0 {
		return
	}
	vi.cadence.Store(d)
}

// SetSendWait changes how long a frame waits for the outbound channel before
// it is dropped.
func (vi *Channel) SetSendWait(d time.Duration) {
	vi.out.SetWait(d)
}

// Attach a new client connection.
func (vi *Channel) Attach(conn outbound.Conn) {
	vi.out.Attach(conn)
	logger.Log(logger.Allow, "virtualio", "client attached")
}

// Detach a client connection.
func (vi *Channel) Detach(conn outbound.Conn) {
	if vi.out.Detach(conn) {
		logger.Log(logger.Allow, "virtualio", "client detached")
	}
}

// Run sends the screen to the client periodically. Blocks until the context
// is cancelled.
func (vi *Channel) Run(ctx context.Context) error {
	d := vi.cadence.Load()
	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if vi.out.Connected() {
				err := vi.SendScreen()
				if err != nil && !curated.Is(err, outbound.NoConnection) {
					logger.Log(logger.Allow, "virtualio", err)
				}
			}
			if nd := vi.cadence.Load(); nd != d {
				d = nd
				t.Reset(d)
			}
		}
	}
}

// SendScreen sends the current screen. Nothing is sent if there is no screen
// or if the screen buffer is smaller than the screen size.
func (vi *Channel) SendScreen() error {
	if vi.screen == nil {
		return nil
	}

	w, h := vi.screen.ScreenSize()
	buf := vi.screen.ScreenBuffer()
	sz := int(w) * int(h)
	if buf == nil || len(buf) < sz {
		return nil
	}

	f := make([]byte, 3+sz)
	f[0] = ScreenUpdate
	f[1] = w
	f[2] = h
	copy(f[3:], buf[:sz])

	return vi.out.Send(outbound.Binary(f))
}

// PrinterWrite sends a character to the client's printer.
func (vi *Channel) PrinterWrite(b uint8) {
	vi.sendPrinter([]byte{PrinterByte, b})
}

// PrinterNewLine sends a line break to the client's printer.
func (vi *Channel) PrinterNewLine() {
	vi.sendPrinter([]byte{PrinterNewLine})
}

func (vi *Channel) sendPrinter(f []byte) {
	err := vi.out.Send(outbound.Binary(f))
	if err != nil && !curated.Is(err, outbound.NoConnection) {
		logger.Log(logger.Allow, "virtualio", err)
	}
}

// PrinterRead returns the printer status. PrinterAttached if a client is
// connected or PrinterAbsent otherwise.
func (vi *Channel) PrinterRead() uint8 {
	if vi.out.Connected() {
		return PrinterAttached
	}
	return PrinterAbsent
}

// HandleMessage handles a text message from the client. Messages that are not
// key events are ignored.
func (vi *Channel) HandleMessage(msg string) {
	key, ok := strings.CutPrefix(msg, keyEventPrefix)
	if !ok {
		logger.Logf(logger.Allow, "virtualio", "unrecognised message: %q", msg)
		return
	}

	down := strings.Contains(key, "|down")
	shift := strings.Contains(key, "|shift")

	// a key event without any flags still has the delimiter. a key up is
	// "vikb?a|"
	key, _, ok = strings.Cut(key, "|")
	if !ok {
		logger.Logf(logger.Allow, "virtualio", "malformed key event: %q", msg)
		return
	}

	if err := vi.InjectKey(key, down, shift); err != nil {
		logger.Log(logger.Allow, "virtualio", err)
	}
}

// InjectKey forwards the named key to the keyboard.
func (vi *Channel) InjectKey(key string, down bool, shift bool) error {
	vk, ok := vi.mapping.Lookup(key)
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	if vi.kb != nil {
		vi.kb.InjectVirtualKey(vk, down, shift)
	}
	return nil
}
