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

// Package outbound is the single path by which messages are sent to a
// connected client. More than one goroutine may want to send at the same time.
// Sends are serialised but a goroutine will only wait a short time for its
// turn: if the channel is still busy after that time the message is dropped.
//
// Messages are never queued or retried. The next periodic update supersedes
// a dropped one.
package outbound

import (
	"sync"
	"time"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/logger"
	"go.uber.org/atomic"
)

// Sentinal error patterns.
const (
	ChannelBusy  = "outbound: %s: channel busy (waited %v)"
	NoConnection = "outbound: %s: no connection"
	SendFailed   = "outbound: %s: send: %v"
)

// Frame is a single message.
type Frame struct {
	Binary bool
	Data   []byte
}

// Text creates a text frame.
func Text(s string) Frame {
	return Frame{Data: []byte(s)}
}

// Binary creates a binary frame.
func Binary(b []byte) Frame {
	return Frame{Binary: true, Data: b}
}

// Conn is a connection to a client.
type Conn interface {
	Send(f Frame) error
}

// Channel holds the current connection and serialises sends to it.
type Channel struct {
	name string

	// a buffered channel of capacity one acts as a lock that can be waited on
	// with a timeout
	sem chan struct{}

	wait atomic.Duration

	crit sync.Mutex
	conn Conn
}

// NewChannel is the preferred method of initialisation for the Channel type.
// The name is used in log messages and errors.
func NewChannel(name string, wait time.Duration) *Channel {
	ch := &Channel{
		name: name,
		sem:  make(chan struct{}, 1),
	}
	ch.wait.Store(wait)
	return ch
}

// SetWait changes the length of time a send will wait for its turn.
func (ch *Channel) SetWait(wait time.Duration) {
	ch.wait.Store(wait)
}

// Attach a new connection. Any existing connection is forgotten.
func (ch *Channel) Attach(conn Conn) {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	ch.conn = conn
}

// Detach the connection if it is the current connection. Returns true if the
// connection was detached.
func (ch *Channel) Detach(conn Conn) bool {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	if ch.conn != conn {
		return false
	}
	ch.conn = nil
	return true
}

// Connected returns true if there is a current connection.
func (ch *Channel) Connected() bool {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	return ch.conn != nil
}

// Send a frame to the current connection. If the connection fails it is
// detached.
func (ch *Channel) Send(f Frame) error {
	ch.crit.Lock()
	conn := ch.conn
	ch.crit.Unlock()

	if conn == nil {
		return curated.Errorf(NoConnection, ch.name)
	}

	wait := ch.wait.Load()
	t := time.NewTimer(wait)
	defer t.Stop()

	select {
	case ch.sem <- struct{}{}:
	case <-t.C:
		return curated.Errorf(ChannelBusy, ch.name, wait)
	}
	defer func() {
		<-ch.sem
	}()

	if err := conn.Send(f); err != nil {
		if ch.Detach(conn) {
			logger.Logf(logger.Allow, ch.name, "connection lost: %v", err)
		}
		return curated.Errorf(SendFailed, ch.name, err)
	}

	return nil
}
