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

package govern

// State of the Controller.
type State int

// List of possible controller states.
//
// The controller moves from Idle to ActionPending when an action is
// requested. The executor moves the controller to Dispatching when it takes
// the action and back to Idle when the action has been dispatched, unless
// another action was requested in the meantime.
//
// Note that the Continue action is considered dispatched as soon as its
// goroutine has been started.
const (
	Idle State = iota
	ActionPending
	Dispatching
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case ActionPending:
		return "ActionPending"
	case Dispatching:
		return "Dispatching"
	}
	return ""
}
