// This file is part of frameinput.
//
// frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with frameinput.  If not, see <https://www.gnu.org/licenses/>.

package ttyinput

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3 // end-of-text character
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of ASCII codes for characters that can follow keyEsc
const (
	escCursor = '['
	escSS3    = 'O'
)

// list of ASCII codes for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorHome     = 'H'
	cursorEnd      = 'F'
	cursorDelete   = '3'
	tilde          = '~'
)

// USB HID scancodes used by the terminal
const (
	scancodeA          = 4
	scancode1          = 30
	scancode0          = 39
	scancodeReturn     = 40
	scancodeEscape     = 41
	scancodeBackspace  = 42
	scancodeTab        = 43
	scancodeSpace      = 44
	scancodeHome       = 74
	scancodeDelete     = 76
	scancodeEnd        = 77
	scancodeRight      = 79
	scancodeLeft       = 80
	scancodeDown       = 81
	scancodeUp         = 82
	scancodeLeftCtrl   = 224
	scancodeLeftShift  = 225
	scancodeMinus      = 45
	scancodeEquals     = 46
	scancodeLeftBrack  = 47
	scancodeRightBrack = 48
	scancodeBackslash  = 49
	scancodeSemicolon  = 51
	scancodeApostrophe = 52
	scancodeGrave      = 53
	scancodeComma      = 54
	scancodePeriod     = 55
	scancodeSlash      = 56
)

type keystroke struct {
	scancode int
	shift    bool
}

// punctuation and the shifted number keys of a US keyboard
var punctuation = map[byte]keystroke{
	' ':  {scancodeSpace, false},
	'-':  {scancodeMinus, false},
	'=':  {scancodeEquals, false},
	'[':  {scancodeLeftBrack, false},
	']':  {scancodeRightBrack, false},
	'\\': {scancodeBackslash, false},
	';':  {scancodeSemicolon, false},
	'\'': {scancodeApostrophe, false},
	'`':  {scancodeGrave, false},
	',':  {scancodeComma, false},
	'.':  {scancodePeriod, false},
	'/':  {scancodeSlash, false},
	'_':  {scancodeMinus, true},
	'+':  {scancodeEquals, true},
	'{':  {scancodeLeftBrack, true},
	'}':  {scancodeRightBrack, true},
	'|':  {scancodeBackslash, true},
	':':  {scancodeSemicolon, true},
	'"':  {scancodeApostrophe, true},
	'~':  {scancodeGrave, true},
	'<':  {scancodeComma, true},
	'>':  {scancodePeriod, true},
	'?':  {scancodeSlash, true},
	'!':  {scancode1, true},
	'@':  {scancode1 + 1, true},
	'#':  {scancode1 + 2, true},
	'$':  {scancode1 + 3, true},
	'%':  {scancode1 + 4, true},
	'^':  {scancode1 + 5, true},
	'&':  {scancode1 + 6, true},
	'*':  {scancode1 + 7, true},
	'(':  {scancode1 + 8, true},
	')':  {scancode0, true},
}

// names of the keys that can be produced by the terminal
var scancodeNames = map[int]string{
	scancodeReturn:     "Return",
	scancodeEscape:     "Escape",
	scancodeBackspace:  "Backspace",
	scancodeTab:        "Tab",
	scancodeSpace:      "Space",
	scancodeHome:       "Home",
	scancodeDelete:     "Delete",
	scancodeEnd:        "End",
	scancodeRight:      "Right",
	scancodeLeft:       "Left",
	scancodeDown:       "Down",
	scancodeUp:         "Up",
	scancodeLeftCtrl:   "Left Ctrl",
	scancodeLeftShift:  "Left Shift",
	scancodeMinus:      "-",
	scancodeEquals:     "=",
	scancodeLeftBrack:  "[",
	scancodeRightBrack: "]",
	scancodeBackslash:  "\\",
	scancodeSemicolon:  ";",
	scancodeApostrophe: "'",
	scancodeGrave:      "`",
	scancodeComma:      ",",
	scancodePeriod:     ".",
	scancodeSlash:      "/",
}

func init() {
	for i := range 26 {
		scancodeNames[scancodeA+i] = string(rune('A' + i))
	}
	for i := range 9 {
		scancodeNames[scancode1+i] = string(rune('1' + i))
	}
	scancodeNames[scancode0] = "0"
}
