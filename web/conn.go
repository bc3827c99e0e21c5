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

package web

import (
	"github.com/trs-io/xray/outbound"
	"golang.org/x/net/websocket"
)

// Endpoint is implemented by anything that can serve a websocket client.
type Endpoint interface {
	Attach(conn outbound.Conn)
	Detach(conn outbound.Conn)
	HandleMessage(msg string)
}

// conn adapts a websocket connection to the outbound.Conn interface.
type conn struct {
	ws *websocket.Conn
}

func (c *conn) Send(f outbound.Frame) error {
	if f.Binary {
		return websocket.Message.Send(c.ws, f.Data)
	}
	return websocket.Message.Send(c.ws, string(f.Data))
}
