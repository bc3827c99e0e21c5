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

package console

import (
	"strings"
)

// the Model I character generator has no lower case. codes below 0x20 show
// the same characters as 0x40 to 0x5f
func glyph(b byte) rune {
	switch {
	case b < 0x20:
		return rune(b + 0x40)
	case b < 0x80:
		return rune(b)
	case b == 0x80:
		return ' '
	}

	// graphics characters are a two by three block of pixels. any pixel in
	// the top, middle or bottom pair selects the shade
	switch b & 0x3f {
	case 0x3f:
		return '█'
	case 0x03, 0x0f:
		return '▀'
	case 0x30, 0x3c:
		return '▄'
	}
	return '▒'
}

// Render writes the screen to the builder one row per line. Rows are
// terminated with CR LF so that the output is correct in cbreak mode.
func Render(s *strings.Builder, screen []byte, width, height int) {
	if len(screen) < width*height {
		return
	}
	for y := range height {
		for _, b := range screen[y*width : (y+1)*width] {
			s.WriteRune(glyph(b))
		}
		s.WriteString("\r\n")
	}
}
