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

// Action is a request to change the execution of the emulation.
type Action int

// List of valid actions.
const (
	None Action = iota
	Step
	StepOver
	Continue
	Halt
	Pause
	SoftReset
	HardReset
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Step:
		return "step"
	case StepOver:
		return "step-over"
	case Continue:
		return "continue"
	case Halt:
		return "stop"
	case Pause:
		return "pause"
	case SoftReset:
		return "soft reset"
	case HardReset:
		return "hard reset"
	}
	return "unknown"
}

// Stops returns true if the action interrupts a Continue action that is in
// progress.
func (a Action) Stops() bool {
	return a == Halt || a == Pause
}
