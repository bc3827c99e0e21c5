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

package modalflag_test

import (
	"strings"
	"testing"
	"time"

	"github.com/trs-io/xray/modalflag"
	"github.com/trs-io/xray/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-echo", "-listen", "localhost:9000", "rom.bin"})
	echo := md.AddBool("echo", false, "echo log")
	listen := md.AddString("listen", ":8080", "listen address")
	cadence := md.AddDuration("cadence", 150*time.Millisecond, "cadence")

	test.ExpectFailure(t, *echo)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")

	test.ExpectSuccess(t, *echo)
	test.ExpectEquality(t, *listen, "localhost:9000")
	test.ExpectEquality(t, *cadence, 150*time.Millisecond)
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"version"})
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "VERSION")
	test.ExpectEquality(t, md.Path(), "VERSION")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-listen", ":9000"})
	md.AddSubModes("RUN", "VERSION")

	// the flag is not known at this level so the default mode is selected
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	// and the flag is parsed by the new mode
	md.NewMode()
	listen := md.AddString("listen", ":8080", "listen address")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *listen, ":9000")
	test.ExpectEquality(t, md.Path(), "RUN")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "VERSION")
	md.AddBool("echo", false, "echo log to stdout")
	md.AdditionalHelp("xray debugger")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	s := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(s, "-echo"))
	test.ExpectSuccess(t, strings.Contains(s, "echo log to stdout"))
	test.ExpectSuccess(t, strings.Contains(s, "  available sub-modes: RUN, VERSION\n    default: RUN\n"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "\nxray debugger\n"))
}
