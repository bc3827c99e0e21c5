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

// Package web is the websocket transport. There are two endpoints:
//
//	/channel	the debugger
//	/vi		the virtual I/O channel
//
// Each endpoint has at most one client. A new client replaces the previous
// one, although the previous client's connection is not closed until it is
// lost or the server is shutdown.
//
// A client can announce the protocol version it speaks with a query
// parameter, for example:
//
//	ws://localhost:8080/channel?protocol=1.2.0
//
// An incompatible client is logged but is otherwise served as normal.
package web
