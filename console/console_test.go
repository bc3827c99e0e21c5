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

package console_test

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/trs-io/xray/console"
	"github.com/trs-io/xray/outbound"
	"github.com/trs-io/xray/test"
)

func TestRender(t *testing.T) {
	var s strings.Builder
	console.Render(&s, []byte{'H', 'I', 0x01, 0xbf}, 2, 2)
	test.ExpectEquality(t, s.String(), "HI\r\nA█\r\n")

	// short screen is not drawn
	s.Reset()
	console.Render(&s, []byte{'H'}, 2, 2)
	test.ExpectEquality(t, s.String(), "")
}

func readKeys(input string) ([]string, error) {
	keys := make(chan string, 32)
	err := console.ReadKeys(bufio.NewReader(strings.NewReader(input)), keys)
	close(keys)
	var k []string
	for s := range keys {
		k = append(k, s)
	}
	return k, err
}

func TestReadKeys(t *testing.T) {
	k, err := readKeys("a\r\x1b[A\x1b[D\x7f\x01!\x03z")
	test.ExpectEquality(t, err, console.ErrInterrupt)
	test.DemandEquality(t, len(k), 6)
	test.ExpectEquality(t, k[0], "a")
	test.ExpectEquality(t, k[1], "Enter")
	test.ExpectEquality(t, k[2], "ArrowUp")
	test.ExpectEquality(t, k[3], "ArrowLeft")
	test.ExpectEquality(t, k[4], "Backspace")
	test.ExpectEquality(t, k[5], "!")

	k, err = readKeys("\x1b")
	test.ExpectEquality(t, err, io.EOF)
	test.DemandEquality(t, len(k), 1)
	test.ExpectEquality(t, k[0], "Escape")
}

type mockChannel struct {
	attached chan outbound.Conn
	messages chan string
}

func (ch *mockChannel) Attach(conn outbound.Conn) {
	ch.attached <- conn
}

func (ch *mockChannel) Detach(conn outbound.Conn) {
}

func (ch *mockChannel) HandleMessage(msg string) {
	ch.messages <- msg
}

func TestConsole(t *testing.T) {
	ch := &mockChannel{
		attached: make(chan outbound.Conn, 1),
		messages: make(chan string, 4),
	}
	w := &test.CompareWriter{}
	con := console.NewConsole(ch, w)

	test.ExpectSuccess(t, con.Run(context.Background(), strings.NewReader("q")))
	test.ExpectEquality(t, <-ch.attached, outbound.Conn(con))
	test.ExpectEquality(t, <-ch.messages, "vikb?q|down")

	select {
	case m := <-ch.messages:
		test.ExpectEquality(t, m, "vikb?q|")
	case <-time.After(2 * time.Second):
		t.Fatalf("no key up event")
	}

	w.Clear()
	test.ExpectSuccess(t, con.Send(outbound.Binary([]byte{10, 2, 1, 'O', 'K'})))
	test.ExpectSuccess(t, strings.Contains(w.String(), "OK\r\n"))

	test.ExpectSuccess(t, con.Send(outbound.Binary([]byte{20, 'P'})))
	test.ExpectSuccess(t, con.Send(outbound.Binary([]byte{21})))
	test.ExpectSuccess(t, strings.Contains(w.String(), "P\r\n"))

	// text frames are ignored
	w.Clear()
	test.ExpectSuccess(t, con.Send(outbound.Text("ignored")))
	test.ExpectEquality(t, w.String(), "")
}
