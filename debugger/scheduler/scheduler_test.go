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

package scheduler_test

import (
	"testing"
	"time"

	"github.com/trs-io/xray/debugger/scheduler"
	"github.com/trs-io/xray/test"
)

func TestIdle(t *testing.T) {
	s := scheduler.New(0)
	test.ExpectEquality(t, s.Interval(), scheduler.DefaultInterval)

	now := time.Now()
	test.ExpectFailure(t, s.Due(now, false, false))
	test.ExpectFailure(t, s.Due(now.Add(time.Hour), false, false))
}

func TestRunning(t *testing.T) {
	s := scheduler.New(300 * time.Millisecond)

	now := time.Now()

	// never flushed so an update is due immediately
	test.ExpectSuccess(t, s.Due(now, true, false))
	s.Flushed(now)

	test.ExpectFailure(t, s.Due(now.Add(299*time.Millisecond), true, false))
	test.ExpectSuccess(t, s.Due(now.Add(300*time.Millisecond), true, false))
	test.ExpectSuccess(t, s.Due(now.Add(301*time.Millisecond), true, false))
}

func TestHalting(t *testing.T) {
	s := scheduler.New(300 * time.Millisecond)

	now := time.Now()
	s.Flushed(now)

	// halting forces an update regardless of the time or running state
	test.ExpectSuccess(t, s.Due(now, false, true))
	test.ExpectSuccess(t, s.Due(now.Add(time.Millisecond), true, true))
}

func TestSetInterval(t *testing.T) {
	s := scheduler.New(300 * time.Millisecond)

	now := time.Now()
	s.Flushed(now)

	s.SetInterval(100 * time.Millisecond)
	test.ExpectSuccess(t, s.Due(now.Add(100*time.Millisecond), true, false))

	s.SetInterval(-1)
	test.ExpectEquality(t, s.Interval(), scheduler.DefaultInterval)
}
