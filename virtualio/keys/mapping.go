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

package keys

// Capability translates a virtual key into the ASCII character it produces on
// a keyboard layout. Keys that produce no ASCII character return -1.
type Capability interface {
	VirtualKeyToASCII(vk VirtualKey) int
}

// USLayout is the default keyboard layout.
var USLayout Capability = usLayout{}

type usLayout struct{}

var usASCII = map[VirtualKey]int{
	KeySpace:        ' ',
	KeyGraveAccent:  '`',
	KeyQuote:        '\'',
	KeyQuoteDbl:     '"',
	KeyEquals:       '=',
	KeyMinus:        '-',
	KeyKPMinus:      '-',
	KeyPlus:         '+',
	KeyKPPlus:       '+',
	KeyKPMultiply:   '*',
	KeyAsterisk:     '*',
	KeyBackslash:    '\\',
	KeyKPDivide:     '/',
	KeySlash:        '/',
	KeyKPPeriod:     '.',
	KeyPeriod:       '.',
	KeyColon:        ':',
	KeyComma:        ',',
	KeySemicolon:    ';',
	KeyAmpersand:    '&',
	KeyVerticalBar:  '|',
	KeyHash:         '#',
	KeyAt:           '@',
	KeyCaret:        '^',
	KeyDollar:       '$',
	KeyPercent:      '%',
	KeyExclaim:      '!',
	KeyQuestion:     '?',
	KeyLeftBrace:    '{',
	KeyRightBrace:   '}',
	KeyLeftBracket:  '[',
	KeyRightBracket: ']',
	KeyLeftParen:    '(',
	KeyRightParen:   ')',
	KeyLess:         '<',
	KeyGreater:      '>',
	KeyUnderscore:   '_',
	KeyTilde:        '~',
	KeyEscape:       0x1b,
	KeyBackspace:    0x08,
	KeyDelete:       0x7f,
	KeyTab:          0x09,
	KeyReturn:       0x0d,
	KeyKPEnter:      0x0d,
}

func (usLayout) VirtualKeyToASCII(vk VirtualKey) int {
	switch {
	case vk >= Key0 && vk <= Key9:
		return '0' + int(vk-Key0)
	case vk >= KeyKP0 && vk <= KeyKP9:
		return '0' + int(vk-KeyKP0)
	case vk >= KeyA && vk <= KeyZ:
		return 'a' + int(vk-KeyA)
	case vk >= KeyCapitalA && vk <= KeyCapitalZ:
		return 'A' + int(vk-KeyCapitalA)
	}
	if a, ok := usASCII[vk]; ok {
		return a
	}
	return -1
}

// named keys as sent by a browser's KeyboardEvent.key property. the space key
// arrives URL encoded
var namedKeys = []struct {
	name string
	vk   VirtualKey
}{
	{"ArrowLeft", KeyLeft},
	{"ArrowRight", KeyRight},
	{"ArrowUp", KeyUp},
	{"ArrowDown", KeyDown},
	{"Enter", KeyReturn},
	{"Tab", KeyTab},
	{"F1", KeyF1},
	{"F2", KeyF2},
	{"F3", KeyF3},
	{"F4", KeyF4},
	{"F5", KeyF5},
	{"F6", KeyF6},
	{"F7", KeyF7},
	{"F8", KeyF8},
	{"F9", KeyF9},
	{"F10", KeyF10},
	{"F11", KeyF11},
	{"F12", KeyF12},
	{"Escape", KeyEscape},
	{"%20", KeySpace},
	{"Backspace", KeyBackspace},
	{"Alt", KeyLAlt},
	{"Control", KeyLCtrl},
	{"Shift", KeyLShift},
}

// Mapping maps key names to virtual keys. A key name is either a single
// character or one of the browser's named keys.
type Mapping struct {
	names map[string]VirtualKey
}

// NewMapping builds the mapping from the keyboard layout. When more than one
// virtual key produces the same character the first in AllKeys() order wins,
// so "0" maps to Key0 and not KeyKP0.
func NewMapping(layout Capability) *Mapping {
	m := &Mapping{
		names: make(map[string]VirtualKey),
	}

	for _, vk := range AllKeys() {
		a := layout.VirtualKeyToASCII(vk)
		if a < 0 || a > 0x7f {
			continue
		}
		m.insert(string(rune(a)), vk)
	}

	for _, n := range namedKeys {
		m.insert(n.name, n.vk)
	}

	return m
}

func (m *Mapping) insert(name string, vk VirtualKey) {
	if _, ok := m.names[name]; ok {
		return
	}
	m.names[name] = vk
}

// Lookup returns the virtual key for the name. The boolean is false if the name
// is not recognised.
func (m *Mapping) Lookup(name string) (VirtualKey, bool) {
	vk, ok := m.names[name]
	return vk, ok
}

// Len returns the number of names in the mapping.
func (m *Mapping) Len() int {
	return len(m.names)
}
