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

package outbound_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/outbound"
	"github.com/trs-io/xray/test"
)

// records frames. each send takes delay to complete
type mockConn struct {
	crit   sync.Mutex
	frames []outbound.Frame
	delay  time.Duration
	fail   bool

	// true while a send is in progress. used to detect interleaving
	busy       bool
	interleave bool
}

func (c *mockConn) Send(f outbound.Frame) error {
	c.crit.Lock()
	if c.busy {
		c.interleave = true
	}
	c.busy = true
	fail := c.fail
	c.crit.Unlock()

	time.Sleep(c.delay)

	c.crit.Lock()
	defer c.crit.Unlock()
	c.busy = false
	if fail {
		return errors.New("broken pipe")
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *mockConn) count() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return len(c.frames)
}

func TestNoConnection(t *testing.T) {
	ch := outbound.NewChannel("test", 10*time.Millisecond)
	test.ExpectFailure(t, ch.Connected())

	err := ch.Send(outbound.Text("hello"))
	test.ExpectSuccess(t, curated.Is(err, outbound.NoConnection))
}

func TestSend(t *testing.T) {
	ch := outbound.NewChannel("test", 10*time.Millisecond)
	conn := &mockConn{}
	ch.Attach(conn)
	test.ExpectSuccess(t, ch.Connected())

	test.ExpectSuccess(t, ch.Send(outbound.Text("hello")))
	test.ExpectSuccess(t, ch.Send(outbound.Binary([]byte{0x10, 0x00})))

	test.DemandEquality(t, conn.count(), 2)
	test.ExpectFailure(t, conn.frames[0].Binary)
	test.ExpectEquality(t, string(conn.frames[0].Data), "hello")
	test.ExpectSuccess(t, conn.frames[1].Binary)
	test.ExpectBytes(t, conn.frames[1].Data, []byte{0x10, 0x00})
}

func TestContention(t *testing.T) {
	ch := outbound.NewChannel("test", 10*time.Millisecond)
	conn := &mockConn{delay: 100 * time.Millisecond}
	ch.Attach(conn)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[0] = ch.Send(outbound.Text("first"))
	}()

	// make sure the first send has the channel before the second send starts
	time.Sleep(20 * time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[1] = ch.Send(outbound.Text("second"))
	}()

	wg.Wait()

	test.ExpectSuccess(t, errs[0])
	test.ExpectSuccess(t, curated.Is(errs[1], outbound.ChannelBusy))
	test.DemandEquality(t, conn.count(), 1)
	test.ExpectEquality(t, string(conn.frames[0].Data), "first")
	test.ExpectFailure(t, conn.interleave)
}

func TestManySenders(t *testing.T) {
	ch := outbound.NewChannel("test", time.Second)
	conn := &mockConn{delay: time.Millisecond}
	ch.Attach(conn)

	// with a generous wait every send gets through and none interleave
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch.Send(outbound.Text("frame"))
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, conn.count(), 10)
	test.ExpectFailure(t, conn.interleave)
}

func TestReplaceAndDetach(t *testing.T) {
	ch := outbound.NewChannel("test", 10*time.Millisecond)
	a := &mockConn{}
	b := &mockConn{}

	ch.Attach(a)
	ch.Attach(b)
	test.ExpectSuccess(t, ch.Send(outbound.Text("hello")))
	test.ExpectEquality(t, a.count(), 0)
	test.ExpectEquality(t, b.count(), 1)

	// detaching the old connection doesn't affect the new one
	test.ExpectFailure(t, ch.Detach(a))
	test.ExpectSuccess(t, ch.Connected())

	test.ExpectSuccess(t, ch.Detach(b))
	test.ExpectFailure(t, ch.Connected())
}

func TestSendFailure(t *testing.T) {
	ch := outbound.NewChannel("test", 10*time.Millisecond)
	conn := &mockConn{fail: true}
	ch.Attach(conn)

	err := ch.Send(outbound.Text("hello"))
	test.ExpectSuccess(t, curated.Is(err, outbound.SendFailed))

	// connection has been dropped
	test.ExpectFailure(t, ch.Connected())
	err = ch.Send(outbound.Text("hello"))
	test.ExpectSuccess(t, curated.Is(err, outbound.NoConnection))
}
