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

// Package govern controls the execution of the emulation on behalf of a
// remote client. Control actions are requested with Controller.Request() and
// are carried out by the executor loop started with Controller.Run().
//
// There is only ever one pending action. A request made before the executor
// has taken the previous request replaces it.
//
// The Continue action is carried out on its own goroutine so that the
// executor (and the client that requested the action) is free to accept a
// Halt or Pause request. The Running() and Halting() functions report on the
// run state and are used to decide when the client should be updated.
package govern
