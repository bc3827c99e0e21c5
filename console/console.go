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

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/trs-io/xray/console/easyterm"
	"github.com/trs-io/xray/console/easyterm/ansi"
	"github.com/trs-io/xray/logger"
	"github.com/trs-io/xray/outbound"
	"github.com/trs-io/xray/virtualio"
)

// Channel is the virtual I/O channel the console attaches to.
type Channel interface {
	Attach(conn outbound.Conn)
	Detach(conn outbound.Conn)
	HandleMessage(msg string)
}

// how long a key is held down for. the emulation only sees the key if it
// scans the keyboard while the key is down
const keyHold = 50 * time.Millisecond

// the number of printer lines shown beneath the screen
const printerLines = 4

// Console draws the virtual I/O channel to an io.Writer. It implements the
// outbound.Conn interface.
type Console struct {
	vi  Channel
	out io.Writer

	crit    sync.Mutex
	pen     string
	width   int
	height  int
	screen  []byte
	printer []string
	line    strings.Builder
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(vi Channel, out io.Writer) *Console {
	pen, err := ansi.ColorBuild("green", "", "", true)
	if err != nil {
		pen = ansi.NormalPen
	}
	return &Console{
		vi:  vi,
		out: out,
		pen: pen,
	}
}

// Send implements the outbound.Conn interface.
func (con *Console) Send(f outbound.Frame) error {
	if !f.Binary || len(f.Data) == 0 {
		return nil
	}

	con.crit.Lock()
	defer con.crit.Unlock()

	switch f.Data[0] {
	case virtualio.ScreenUpdate:
		if len(f.Data) < 3 {
			return nil
		}
		w := int(f.Data[1])
		h := int(f.Data[2])
		if len(f.Data) < 3+w*h {
			return nil
		}
		con.width = w
		con.height = h
		con.screen = append(con.screen[:0], f.Data[3:3+w*h]...)
	case virtualio.PrinterByte:
		if len(f.Data) < 2 {
			return nil
		}
		con.line.WriteByte(f.Data[1])
	case virtualio.PrinterNewLine:
		con.printer = append(con.printer, con.line.String())
		if len(con.printer) > printerLines {
			con.printer = con.printer[1:]
		}
		con.line.Reset()
	default:
		return nil
	}

	return con.draw()
}

// must be called with the critical section locked
func (con *Console) draw() error {
	var s strings.Builder
	s.WriteString(ansi.CursorHome)
	s.WriteString(con.pen)
	Render(&s, con.screen, con.width, con.height)
	s.WriteString(ansi.NormalPen)
	for _, l := range con.printer {
		s.WriteString(ansi.ClearLine)
		s.WriteString(l)
		s.WriteString("\r\n")
	}
	s.WriteString(ansi.ClearLine)
	s.WriteString(con.line.String())

	_, err := io.WriteString(con.out, s.String())
	return err
}

// Run the console. Key presses are read from the reader, which should be a
// terminal in cbreak mode. Blocks until the context is cancelled, the reader
// is exhausted or CTRL-C is pressed.
func (con *Console) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprint(con.out, ansi.ClearScreen, ansi.CursorHide)
	defer fmt.Fprint(con.out, ansi.CursorShow, "\r\n")

	con.vi.Attach(con)
	defer con.vi.Detach(con)
	logger.Log(logger.Allow, "console", "attached")

	keys := make(chan string)
	errs := make(chan error, 1)
	go func() {
		errs <- ReadKeys(bufio.NewReader(in), keys)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupt) {
				return nil
			}
			return err
		case k := <-keys:
			con.vi.HandleMessage(fmt.Sprintf("vikb?%s|down", k))
			time.AfterFunc(keyHold, func() {
				con.vi.HandleMessage(fmt.Sprintf("vikb?%s|", k))
			})
		}
	}
}

// ErrInterrupt is returned by ReadKeys() when CTRL-C is read.
var ErrInterrupt = errors.New("console: interrupt")

// ReadKeys reads key presses from the reader and sends the key name to the
// channel. Returns when the reader fails or CTRL-C is read.
func ReadKeys(r *bufio.Reader, keys chan<- string) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		var k string

		switch b {
		case easyterm.KeyInterrupt:
			return ErrInterrupt
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			k = "Enter"
		case easyterm.KeyBackspace, easyterm.KeyDelete:
			k = "Backspace"
		case easyterm.KeyTab:
			k = "Tab"
		case easyterm.KeyEsc:
			k = escape(r)
		default:
			if b < 0x20 || b > 0x7e {
				continue
			}
			k = string(rune(b))
		}

		if k != "" {
			keys <- k
		}
	}
}

// escape returns the key name for an escape sequence. if the escape character
// is not followed by a recognised sequence it is taken to be the escape key.
// the escape key is only detected if no other input is already buffered
func escape(r *bufio.Reader) string {
	if r.Buffered() == 0 {
		return "Escape"
	}
	b, err := r.ReadByte()
	if err != nil || b != easyterm.EscCursor {
		return "Escape"
	}
	b, err = r.ReadByte()
	if err != nil {
		return ""
	}
	switch b {
	case easyterm.CursorUp:
		return "ArrowUp"
	case easyterm.CursorDown:
		return "ArrowDown"
	case easyterm.CursorForward:
		return "ArrowRight"
	case easyterm.CursorBackward:
		return "ArrowLeft"
	}
	return ""
}
