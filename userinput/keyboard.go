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

package userinput

func (inp *Input) keyboardUpdate() {
	prev := inp.keyboard

	n := inp.backend.Peep(ClassKeyboard, inp.events[:MaxKeyboardEvents])
	for _, ev := range inp.events[:n] {
		switch ev := ev.(type) {
		case EventKeyboard:
			if ev.Repeat {
				continue
			}
			if ev.Scancode < 0 || ev.Scancode >= KeyboardCount {
				continue
			}
			if inp.keyboard[ev.Scancode] == ev.Down {
				continue
			}
			inp.keyboard[ev.Scancode] = ev.Down
			if ev.Down {
				inp.Current().KeyPress(Key(ev.Scancode))
			} else {
				inp.Current().KeyRelease(Key(ev.Scancode))
			}

		case EventTextInput:
			inp.Current().TextInput(ev.Text)
		}
	}

	for i := range inp.keyboard {
		if inp.keyboard[i] && prev[i] {
			inp.Current().KeyHold(Key(i))
		}
	}
}
