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

import (
	"unicode/utf8"

	"github.com/jetsetilly/frameinput/userinput"
)

// decoding is the result of decoding a sequence of bytes read from the
// terminal.
type decoding struct {
	events    []userinput.Event
	interrupt bool
}

// stroke adds the press and release of a key. the text is added between the
// press and the release, in the same way as a window system would.
func (d *decoding) stroke(scancode int, modifier int, text string) {
	if modifier != 0 {
		d.events = append(d.events, userinput.EventKeyboard{Scancode: modifier, Down: true})
	}
	d.events = append(d.events, userinput.EventKeyboard{Scancode: scancode, Down: true})
	if text != "" {
		d.events = append(d.events, userinput.EventTextInput{Text: text})
	}
	d.events = append(d.events, userinput.EventKeyboard{Scancode: scancode, Down: false})
	if modifier != 0 {
		d.events = append(d.events, userinput.EventKeyboard{Scancode: modifier, Down: false})
	}
}

// decode the bytes read from a terminal in raw mode. escape sequences that
// are split over more than one read are not recognised.
func decode(b []byte) decoding {
	var d decoding

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == keyInterrupt:
			d.interrupt = true

		case c == keyEsc:
			if i+2 >= len(b) || (b[i+1] != escCursor && b[i+1] != escSS3) {
				d.stroke(scancodeEscape, 0, "")
				continue
			}

			switch b[i+2] {
			case cursorUp:
				d.stroke(scancodeUp, 0, "")
			case cursorDown:
				d.stroke(scancodeDown, 0, "")
			case cursorForward:
				d.stroke(scancodeRight, 0, "")
			case cursorBackward:
				d.stroke(scancodeLeft, 0, "")
			case cursorHome:
				d.stroke(scancodeHome, 0, "")
			case cursorEnd:
				d.stroke(scancodeEnd, 0, "")
			case cursorDelete:
				if i+3 < len(b) && b[i+3] == tilde {
					d.stroke(scancodeDelete, 0, "")
					i++
				}
			}
			i += 2

		case c == keyCarriageReturn || c == keyLineFeed:
			d.stroke(scancodeReturn, 0, "")

		case c == keyBackspace || c == keyDelete:
			d.stroke(scancodeBackspace, 0, "")

		case c == keyTab:
			d.stroke(scancodeTab, 0, "")

		case c >= 'a' && c <= 'z':
			d.stroke(scancodeA+int(c-'a'), 0, string(c))

		case c >= 'A' && c <= 'Z':
			d.stroke(scancodeA+int(c-'A'), scancodeLeftShift, string(c))

		case c >= '1' && c <= '9':
			d.stroke(scancode1+int(c-'1'), 0, string(c))

		case c == '0':
			d.stroke(scancode0, 0, string(c))

		case c >= 1 && c <= 26:
			// control characters that have not been handled above
			d.stroke(scancodeA+int(c-1), scancodeLeftCtrl, "")

		case c >= utf8.RuneSelf:
			r, sz := utf8.DecodeRune(b[i:])
			if r != utf8.RuneError {
				d.events = append(d.events, userinput.EventTextInput{Text: string(r)})
			}
			i += sz - 1

		default:
			if k, ok := punctuation[c]; ok {
				var modifier int
				if k.shift {
					modifier = scancodeLeftShift
				}
				d.stroke(k.scancode, modifier, string(c))
			}
		}
	}

	return d
}
