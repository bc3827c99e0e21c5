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

package performance

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/trs-io/xray/debugger/codec"
	"github.com/trs-io/xray/debugger/govern"
	"github.com/trs-io/xray/hardware"
)

// Machine is the part of the hardware.Machine type used by Check().
type Machine interface {
	SetThrottle(bool)
	Control(context.Context, govern.Action) error
	Registers() codec.Registers
}

// Leadtime is the period that the machine runs for before measurement starts.
var Leadtime = 2 * time.Second

// Check the performance of the machine. The machine will run for the
// specified duration and will create a cpu or memory profile (or both) as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, m Machine, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	m.SetThrottle(!uncapped)
	defer m.SetThrottle(true)

	var startTStates, endTStates uint64

	runner := func() error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var wg sync.WaitGroup
		var runErr error

		wg.Add(1)
		go func() {
			defer wg.Done()
			runErr = m.Control(ctx, govern.Continue)
		}()

		time.Sleep(Leadtime)
		startTStates = m.Registers().TStates

		time.Sleep(dur)
		endTStates = m.Registers().TStates

		cancel()
		wg.Wait()
		return runErr
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	tstates := endTStates - startTStates
	mhz, accuracy := CalcMHz(tstates, dur.Seconds())
	fmt.Fprintf(output, "%.3f MHz (%d t-states in %.2f seconds) %.1f%%\n", mhz, tstates, dur.Seconds(), accuracy)

	return nil
}

// CalcMHz takes the number of t-states and duration (in seconds) and returns
// the effective clock speed and the accuracy of that value as a percentage.
func CalcMHz(tstates uint64, seconds float64) (mhz float64, accuracy float64) {
	if seconds <= 0 {
		return 0, 0
	}
	mhz = float64(tstates) / seconds / 1000000
	accuracy = 100 * mhz / hardware.ClockMHz
	return mhz, accuracy
}
