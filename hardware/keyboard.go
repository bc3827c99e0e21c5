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

package hardware

import (
	"sync"

	"github.com/trs-io/xray/virtualio/keys"
)

// position of a key in the keyboard matrix. if shift is true the shift key is
// also pressed
type keyPosition struct {
	row   uint8
	bit   uint8
	shift bool
}

// the shift key is on row seven
const shiftRow = 7

// the Model I has no lower case. letter keys of either case map to the same
// position
var keyMatrix = map[keys.VirtualKey]keyPosition{
	keys.KeyAt: {row: 0, bit: 0},

	keys.Key0: {row: 4, bit: 0},
	keys.Key1: {row: 4, bit: 1},
	keys.Key2: {row: 4, bit: 2},
	keys.Key3: {row: 4, bit: 3},
	keys.Key4: {row: 4, bit: 4},
	keys.Key5: {row: 4, bit: 5},
	keys.Key6: {row: 4, bit: 6},
	keys.Key7: {row: 4, bit: 7},
	keys.Key8: {row: 5, bit: 0},
	keys.Key9: {row: 5, bit: 1},

	keys.KeyColon:     {row: 5, bit: 2},
	keys.KeySemicolon: {row: 5, bit: 3},
	keys.KeyComma:     {row: 5, bit: 4},
	keys.KeyMinus:     {row: 5, bit: 5},
	keys.KeyPeriod:    {row: 5, bit: 6},
	keys.KeySlash:     {row: 5, bit: 7},

	keys.KeyExclaim:    {row: 4, bit: 1, shift: true},
	keys.KeyQuoteDbl:   {row: 4, bit: 2, shift: true},
	keys.KeyHash:       {row: 4, bit: 3, shift: true},
	keys.KeyDollar:     {row: 4, bit: 4, shift: true},
	keys.KeyPercent:    {row: 4, bit: 5, shift: true},
	keys.KeyAmpersand:  {row: 4, bit: 6, shift: true},
	keys.KeyQuote:      {row: 4, bit: 7, shift: true},
	keys.KeyLeftParen:  {row: 5, bit: 0, shift: true},
	keys.KeyRightParen: {row: 5, bit: 1, shift: true},
	keys.KeyAsterisk:   {row: 5, bit: 2, shift: true},
	keys.KeyPlus:       {row: 5, bit: 3, shift: true},
	keys.KeyLess:       {row: 5, bit: 4, shift: true},
	keys.KeyEquals:     {row: 5, bit: 5, shift: true},
	keys.KeyGreater:    {row: 5, bit: 6, shift: true},
	keys.KeyQuestion:   {row: 5, bit: 7, shift: true},

	keys.KeyKPMinus:    {row: 5, bit: 5},
	keys.KeyKPPeriod:   {row: 5, bit: 6},
	keys.KeyKPDivide:   {row: 5, bit: 7},
	keys.KeyKPMultiply: {row: 5, bit: 2, shift: true},
	keys.KeyKPPlus:     {row: 5, bit: 3, shift: true},

	keys.KeyReturn:    {row: 6, bit: 0},
	keys.KeyKPEnter:   {row: 6, bit: 0},
	keys.KeyF1:        {row: 6, bit: 1},
	keys.KeyEscape:    {row: 6, bit: 2},
	keys.KeyUp:        {row: 6, bit: 3},
	keys.KeyDown:      {row: 6, bit: 4},
	keys.KeyLeft:      {row: 6, bit: 5},
	keys.KeyBackspace: {row: 6, bit: 5},
	keys.KeyRight:     {row: 6, bit: 6},
	keys.KeySpace:     {row: 6, bit: 7},

	keys.KeyLShift: {row: shiftRow, bit: 0},
	keys.KeyRShift: {row: shiftRow, bit: 0},
}

func init() {
	for i := range 26 {
		p := keyPosition{row: uint8((i + 1) / 8), bit: uint8((i + 1) % 8)}
		keyMatrix[keys.KeyA+keys.VirtualKey(i)] = p
		keyMatrix[keys.KeyCapitalA+keys.VirtualKey(i)] = p
	}
	for i := range 10 {
		keyMatrix[keys.KeyKP0+keys.VirtualKey(i)] = keyMatrix[keys.Key0+keys.VirtualKey(i)]
	}
}

// keyboard is the state of the keyboard matrix. safe for concurrent use.
type keyboard struct {
	crit sync.Mutex

	// keys currently pressed and whether they were pressed with shift
	pressed map[keyPosition]bool

	rows [8]uint8
}

func newKeyboard() *keyboard {
	return &keyboard{
		pressed: make(map[keyPosition]bool),
	}
}

// inject a key event. returns false if the key has no position in the matrix
func (kb *keyboard) inject(vk keys.VirtualKey, down bool, shift bool) bool {
	p, ok := keyMatrix[vk]
	if !ok {
		return false
	}

	kb.crit.Lock()
	defer kb.crit.Unlock()

	// the same position can be pressed as different virtual keys, for example
	// KeyA and KeyCapitalA. the position rather than the virtual key is
	// released
	k := keyPosition{row: p.row, bit: p.bit}
	if down {
		kb.pressed[k] = shift || p.shift
	} else {
		delete(kb.pressed, k)
	}

	kb.rows = [8]uint8{}
	for k, s := range kb.pressed {
		kb.rows[k.row] |= 1 << k.bit
		if s {
			kb.rows[shiftRow] |= 0x01
		}
	}

	return true
}

func (kb *keyboard) reset() {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	clear(kb.pressed)
	kb.rows = [8]uint8{}
}

// read the matrix. the rows selected by the lower eight bits of the address
// are combined
func (kb *keyboard) read(addr uint16) uint8 {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	var v uint8
	for i := range 8 {
		if addr&(1<<i) != 0 {
			v |= kb.rows[i]
		}
	}
	return v
}
