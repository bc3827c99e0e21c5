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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first argument
// is not one of the listed modes. Once a mode has been selected, NewMode() is
// called to begin a new set of flags for that mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		listen := md.AddString("listen", ":8080", "address to listen on")
//		p, err := md.Parse()
//		...
//	}
//
// The Parse() function handles help requests (-help or -h) automatically,
// printing the flags and the sub-modes for the current mode to the Output
// writer.
package modalflag
