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

// Package ansi defines the ANSI control codes used to draw the console.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetPaper     = 4
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold    = 1
	attrInverse = 7
)

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	col := func(c string) (int, error) {
		switch strings.ToUpper(c) {
		case "BLACK":
			return colBlack, nil
		case "RED":
			return colRed, nil
		case "GREEN":
			return colGreen, nil
		case "YELLOW":
			return colYellow, nil
		case "WHITE":
			return colWhite, nil
		case "NORMAL":
			return colDefault, nil
		}
		return 0, fmt.Errorf("unknown ANSI colour (%s)", c)
	}

	// pen
	if pen != "" {
		c, err := col(pen)
		if err != nil {
			return "", err
		}
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, c))
	}

	// paper
	if paper != "" {
		c, err := col(paper)
		if err != nil {
			return "", err
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d%d", targetPaper, c))
	}

	// attribute
	if attribute != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		switch strings.ToUpper(attribute) {
		case "BOLD":
			s.WriteString(fmt.Sprintf("%d", attrBold))
		case "INVERSE":
			s.WriteString(fmt.Sprintf("%d", attrInverse))
		case "NORMAL":
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorHome is the CSI sequence to move the cursor to the top left of the
// screen.
const CursorHome = "\033[H"

// CursorHide and CursorShow are the CSI sequences to hide and show the cursor.
const (
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
)

// CursorPosition is the CSI sequence to move the cursor to the row and
// column. Rows and columns count from one.
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
