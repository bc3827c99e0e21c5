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

// VirtualKey is a platform independent key code. The list of virtual keys and
// their order is the same as the FabGL library.
//
// Letter keys are distinguished by case: KeyA is the key that produces a
// lower case 'a' and KeyCapitalA is the key that produces an upper case 'A'.
type VirtualKey int

// List of virtual keys.
const (
	KeyNone VirtualKey = iota
	KeySpace
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyCapitalA
	KeyCapitalB
	KeyCapitalC
	KeyCapitalD
	KeyCapitalE
	KeyCapitalF
	KeyCapitalG
	KeyCapitalH
	KeyCapitalI
	KeyCapitalJ
	KeyCapitalK
	KeyCapitalL
	KeyCapitalM
	KeyCapitalN
	KeyCapitalO
	KeyCapitalP
	KeyCapitalQ
	KeyCapitalR
	KeyCapitalS
	KeyCapitalT
	KeyCapitalU
	KeyCapitalV
	KeyCapitalW
	KeyCapitalX
	KeyCapitalY
	KeyCapitalZ
	KeyGraveAccent
	KeyAcuteAccent
	KeyQuote
	KeyQuoteDbl
	KeyEquals
	KeyMinus
	KeyKPMinus
	KeyPlus
	KeyKPPlus
	KeyKPMultiply
	KeyAsterisk
	KeyBackslash
	KeyKPDivide
	KeySlash
	KeyKPPeriod
	KeyPeriod
	KeyColon
	KeyComma
	KeySemicolon
	KeyAmpersand
	KeyVerticalBar
	KeyHash
	KeyAt
	KeyCaret
	KeyDollar
	KeyPound
	KeyEuro
	KeyPercent
	KeyExclaim
	KeyQuestion
	KeyLeftBrace
	KeyRightBrace
	KeyLeftBracket
	KeyRightBracket
	KeyLeftParen
	KeyRightParen
	KeyLess
	KeyGreater
	KeyUnderscore
	KeyDegree
	KeySection
	KeyTilde
	KeyNegation
	KeyLShift
	KeyRShift
	KeyLAlt
	KeyRAlt
	KeyLCtrl
	KeyRCtrl
	KeyLGUI
	KeyRGUI
	KeyEscape
	KeyPrintScreen
	KeySysReq
	KeyInsert
	KeyKPInsert
	KeyDelete
	KeyKPDelete
	KeyBackspace
	KeyHome
	KeyKPHome
	KeyEnd
	KeyKPEnd
	KeyPause
	KeyBreak
	KeyScrollLock
	KeyNumLock
	KeyCapsLock
	KeyTab
	KeyReturn
	KeyKPEnter
	KeyApplication
	KeyPageUp
	KeyKPPageUp
	KeyPageDown
	KeyKPPageDown
	KeyUp
	KeyKPUp
	KeyDown
	KeyKPDown
	KeyLeft
	KeyKPLeft
	KeyRight
	KeyKPRight
	KeyKPCenter
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyGraveA
	KeyGraveE
	KeyAcuteE
	KeyGraveI
	KeyGraveO
	KeyGraveU
	KeyCedillaC
	KeyEszett
	KeyUmlautU
	KeyUmlautO
	KeyUmlautA
	KeyCedillaCapitalC
	KeyTildeN
	KeyTildeCapitalN
	KeyUpperA
	KeyAcuteA
	KeyAcuteI
	KeyAcuteO
	KeyAcuteU
	KeyUmlautI
	KeyExclaimInv
	KeyQuestionInv
	KeyAcuteCapitalA
	KeyAcuteCapitalE
	KeyAcuteCapitalI
	KeyAcuteCapitalO
	KeyAcuteCapitalU
	KeyGraveCapitalA
	KeyGraveCapitalE
	KeyGraveCapitalI
	KeyGraveCapitalO
	KeyGraveCapitalU
	KeyInterpunct
	KeyDiaeresis
	KeyUmlautE
	KeyUmlautCapitalA
	KeyUmlautCapitalE
	KeyUmlautCapitalI
	KeyUmlautCapitalO
	KeyUmlautCapitalU
	KeyCaretA
	KeyCaretE
	KeyCaretI
	KeyCaretO
	KeyCaretU
	KeyCaretCapitalA
	KeyCaretCapitalE
	KeyCaretCapitalI
	KeyCaretCapitalO
	KeyCaretCapitalU

	numKeys
)

var keyNames = [...]string{
	KeyNone:            "VK_NONE",
	KeySpace:           "VK_SPACE",
	Key0:               "VK_0",
	Key1:               "VK_1",
	Key2:               "VK_2",
	Key3:               "VK_3",
	Key4:               "VK_4",
	Key5:               "VK_5",
	Key6:               "VK_6",
	Key7:               "VK_7",
	Key8:               "VK_8",
	Key9:               "VK_9",
	KeyKP0:             "VK_KP_0",
	KeyKP1:             "VK_KP_1",
	KeyKP2:             "VK_KP_2",
	KeyKP3:             "VK_KP_3",
	KeyKP4:             "VK_KP_4",
	KeyKP5:             "VK_KP_5",
	KeyKP6:             "VK_KP_6",
	KeyKP7:             "VK_KP_7",
	KeyKP8:             "VK_KP_8",
	KeyKP9:             "VK_KP_9",
	KeyA:               "VK_a",
	KeyB:               "VK_b",
	KeyC:               "VK_c",
	KeyD:               "VK_d",
	KeyE:               "VK_e",
	KeyF:               "VK_f",
	KeyG:               "VK_g",
	KeyH:               "VK_h",
	KeyI:               "VK_i",
	KeyJ:               "VK_j",
	KeyK:               "VK_k",
	KeyL:               "VK_l",
	KeyM:               "VK_m",
	KeyN:               "VK_n",
	KeyO:               "VK_o",
	KeyP:               "VK_p",
	KeyQ:               "VK_q",
	KeyR:               "VK_r",
	KeyS:               "VK_s",
	KeyT:               "VK_t",
	KeyU:               "VK_u",
	KeyV:               "VK_v",
	KeyW:               "VK_w",
	KeyX:               "VK_x",
	KeyY:               "VK_y",
	KeyZ:               "VK_z",
	KeyCapitalA:        "VK_A",
	KeyCapitalB:        "VK_B",
	KeyCapitalC:        "VK_C",
	KeyCapitalD:        "VK_D",
	KeyCapitalE:        "VK_E",
	KeyCapitalF:        "VK_F",
	KeyCapitalG:        "VK_G",
	KeyCapitalH:        "VK_H",
	KeyCapitalI:        "VK_I",
	KeyCapitalJ:        "VK_J",
	KeyCapitalK:        "VK_K",
	KeyCapitalL:        "VK_L",
	KeyCapitalM:        "VK_M",
	KeyCapitalN:        "VK_N",
	KeyCapitalO:        "VK_O",
	KeyCapitalP:        "VK_P",
	KeyCapitalQ:        "VK_Q",
	KeyCapitalR:        "VK_R",
	KeyCapitalS:        "VK_S",
	KeyCapitalT:        "VK_T",
	KeyCapitalU:        "VK_U",
	KeyCapitalV:        "VK_V",
	KeyCapitalW:        "VK_W",
	KeyCapitalX:        "VK_X",
	KeyCapitalY:        "VK_Y",
	KeyCapitalZ:        "VK_Z",
	KeyGraveAccent:     "VK_GRAVEACCENT",
	KeyAcuteAccent:     "VK_ACUTEACCENT",
	KeyQuote:           "VK_QUOTE",
	KeyQuoteDbl:        "VK_QUOTEDBL",
	KeyEquals:          "VK_EQUALS",
	KeyMinus:           "VK_MINUS",
	KeyKPMinus:         "VK_KP_MINUS",
	KeyPlus:            "VK_PLUS",
	KeyKPPlus:          "VK_KP_PLUS",
	KeyKPMultiply:      "VK_KP_MULTIPLY",
	KeyAsterisk:        "VK_ASTERISK",
	KeyBackslash:       "VK_BACKSLASH",
	KeyKPDivide:        "VK_KP_DIVIDE",
	KeySlash:           "VK_SLASH",
	KeyKPPeriod:        "VK_KP_PERIOD",
	KeyPeriod:          "VK_PERIOD",
	KeyColon:           "VK_COLON",
	KeyComma:           "VK_COMMA",
	KeySemicolon:       "VK_SEMICOLON",
	KeyAmpersand:       "VK_AMPERSAND",
	KeyVerticalBar:     "VK_VERTICALBAR",
	KeyHash:            "VK_HASH",
	KeyAt:              "VK_AT",
	KeyCaret:           "VK_CARET",
	KeyDollar:          "VK_DOLLAR",
	KeyPound:           "VK_POUND",
	KeyEuro:            "VK_EURO",
	KeyPercent:         "VK_PERCENT",
	KeyExclaim:         "VK_EXCLAIM",
	KeyQuestion:        "VK_QUESTION",
	KeyLeftBrace:       "VK_LEFTBRACE",
	KeyRightBrace:      "VK_RIGHTBRACE",
	KeyLeftBracket:     "VK_LEFTBRACKET",
	KeyRightBracket:    "VK_RIGHTBRACKET",
	KeyLeftParen:       "VK_LEFTPAREN",
	KeyRightParen:      "VK_RIGHTPAREN",
	KeyLess:            "VK_LESS",
	KeyGreater:         "VK_GREATER",
	KeyUnderscore:      "VK_UNDERSCORE",
	KeyDegree:          "VK_DEGREE",
	KeySection:         "VK_SECTION",
	KeyTilde:           "VK_TILDE",
	KeyNegation:        "VK_NEGATION",
	KeyLShift:          "VK_LSHIFT",
	KeyRShift:          "VK_RSHIFT",
	KeyLAlt:            "VK_LALT",
	KeyRAlt:            "VK_RALT",
	KeyLCtrl:           "VK_LCTRL",
	KeyRCtrl:           "VK_RCTRL",
	KeyLGUI:            "VK_LGUI",
	KeyRGUI:            "VK_RGUI",
	KeyEscape:          "VK_ESCAPE",
	KeyPrintScreen:     "VK_PRINTSCREEN",
	KeySysReq:          "VK_SYSREQ",
	KeyInsert:          "VK_INSERT",
	KeyKPInsert:        "VK_KP_INSERT",
	KeyDelete:          "VK_DELETE",
	KeyKPDelete:        "VK_KP_DELETE",
	KeyBackspace:       "VK_BACKSPACE",
	KeyHome:            "VK_HOME",
	KeyKPHome:          "VK_KP_HOME",
	KeyEnd:             "VK_END",
	KeyKPEnd:           "VK_KP_END",
	KeyPause:           "VK_PAUSE",
	KeyBreak:           "VK_BREAK",
	KeyScrollLock:      "VK_SCROLLLOCK",
	KeyNumLock:         "VK_NUMLOCK",
	KeyCapsLock:        "VK_CAPSLOCK",
	KeyTab:             "VK_TAB",
	KeyReturn:          "VK_RETURN",
	KeyKPEnter:         "VK_KP_ENTER",
	KeyApplication:     "VK_APPLICATION",
	KeyPageUp:          "VK_PAGEUP",
	KeyKPPageUp:        "VK_KP_PAGEUP",
	KeyPageDown:        "VK_PAGEDOWN",
	KeyKPPageDown:      "VK_KP_PAGEDOWN",
	KeyUp:              "VK_UP",
	KeyKPUp:            "VK_KP_UP",
	KeyDown:            "VK_DOWN",
	KeyKPDown:          "VK_KP_DOWN",
	KeyLeft:            "VK_LEFT",
	KeyKPLeft:          "VK_KP_LEFT",
	KeyRight:           "VK_RIGHT",
	KeyKPRight:         "VK_KP_RIGHT",
	KeyKPCenter:        "VK_KP_CENTER",
	KeyF1:              "VK_F1",
	KeyF2:              "VK_F2",
	KeyF3:              "VK_F3",
	KeyF4:              "VK_F4",
	KeyF5:              "VK_F5",
	KeyF6:              "VK_F6",
	KeyF7:              "VK_F7",
	KeyF8:              "VK_F8",
	KeyF9:              "VK_F9",
	KeyF10:             "VK_F10",
	KeyF11:             "VK_F11",
	KeyF12:             "VK_F12",
	KeyGraveA:          "VK_GRAVE_a",
	KeyGraveE:          "VK_GRAVE_e",
	KeyAcuteE:          "VK_ACUTE_e",
	KeyGraveI:          "VK_GRAVE_i",
	KeyGraveO:          "VK_GRAVE_o",
	KeyGraveU:          "VK_GRAVE_u",
	KeyCedillaC:        "VK_CEDILLA_c",
	KeyEszett:          "VK_ESZETT",
	KeyUmlautU:         "VK_UMLAUT_u",
	KeyUmlautO:         "VK_UMLAUT_o",
	KeyUmlautA:         "VK_UMLAUT_a",
	KeyCedillaCapitalC: "VK_CEDILLA_C",
	KeyTildeN:          "VK_TILDE_n",
	KeyTildeCapitalN:   "VK_TILDE_N",
	KeyUpperA:          "VK_UPPER_a",
	KeyAcuteA:          "VK_ACUTE_a",
	KeyAcuteI:          "VK_ACUTE_i",
	KeyAcuteO:          "VK_ACUTE_o",
	KeyAcuteU:          "VK_ACUTE_u",
	KeyUmlautI:         "VK_UMLAUT_i",
	KeyExclaimInv:      "VK_EXCLAIM_INV",
	KeyQuestionInv:     "VK_QUESTION_INV",
	KeyAcuteCapitalA:   "VK_ACUTE_A",
	KeyAcuteCapitalE:   "VK_ACUTE_E",
	KeyAcuteCapitalI:   "VK_ACUTE_I",
	KeyAcuteCapitalO:   "VK_ACUTE_O",
	KeyAcuteCapitalU:   "VK_ACUTE_U",
	KeyGraveCapitalA:   "VK_GRAVE_A",
	KeyGraveCapitalE:   "VK_GRAVE_E",
	KeyGraveCapitalI:   "VK_GRAVE_I",
	KeyGraveCapitalO:   "VK_GRAVE_O",
	KeyGraveCapitalU:   "VK_GRAVE_U",
	KeyInterpunct:      "VK_INTERPUNCT",
	KeyDiaeresis:       "VK_DIAERESIS",
	KeyUmlautE:         "VK_UMLAUT_e",
	KeyUmlautCapitalA:  "VK_UMLAUT_A",
	KeyUmlautCapitalE:  "VK_UMLAUT_E",
	KeyUmlautCapitalI:  "VK_UMLAUT_I",
	KeyUmlautCapitalO:  "VK_UMLAUT_O",
	KeyUmlautCapitalU:  "VK_UMLAUT_U",
	KeyCaretA:          "VK_CARET_a",
	KeyCaretE:          "VK_CARET_e",
	KeyCaretI:          "VK_CARET_i",
	KeyCaretO:          "VK_CARET_o",
	KeyCaretU:          "VK_CARET_u",
	KeyCaretCapitalA:   "VK_CARET_A",
	KeyCaretCapitalE:   "VK_CARET_E",
	KeyCaretCapitalI:   "VK_CARET_I",
	KeyCaretCapitalO:   "VK_CARET_O",
	KeyCaretCapitalU:   "VK_CARET_U",
}

func (vk VirtualKey) String() string {
	if vk < 0 || vk >= numKeys {
		return "VK_UNKNOWN"
	}
	return keyNames[vk]
}

// AllKeys returns every virtual key in order.
func AllKeys() []VirtualKey {
	l := make([]VirtualKey, numKeys)
	for i := range l {
		l[i] = VirtualKey(i)
	}
	return l
}
