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

// Package console is a virtual I/O client that runs in the terminal. It
// attaches to the virtual I/O channel in the same way as a websocket client:
// screen frames are drawn to the terminal, printer output is shown beneath the
// screen and key presses are sent as key events.
//
// The console is useful when no browser is available. CTRL-C ends the
// console.
package console
