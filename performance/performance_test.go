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

package performance_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/trs-io/xray/hardware"
	"github.com/trs-io/xray/performance"
	"github.com/trs-io/xray/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("trace")
	test.ExpectFailure(t, err)
}

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(hardware.ClockHz*2, 2)
	test.ExpectEquality(t, mhz, hardware.ClockMHz)
	test.ExpectSuccess(t, math.Abs(accuracy-100) < 0.001)

	mhz, accuracy = performance.CalcMHz(1000, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheck(t *testing.T) {
	performance.Leadtime = 10 * time.Millisecond

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	err = performance.Check(w, performance.ProfileNone, m, true, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "MHz"))
	test.ExpectSuccess(t, m.Registers().TStates > 0)

	err = performance.Check(w, performance.ProfileNone, m, true, "soon")
	test.ExpectFailure(t, err)
}
