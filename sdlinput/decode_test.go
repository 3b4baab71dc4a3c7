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

package sdlinput

import (
	"testing"

	"github.com/jetsetilly/frameinput/test"
	"github.com/jetsetilly/frameinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func TestDecodeKeyboard(t *testing.T) {
	ev, ok := decode(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Repeat: 1,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A},
	})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventKeyboard{Scancode: 4, Down: true, Repeat: true})

	ev, ok = decode(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE},
	})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventKeyboard{Scancode: 44})

	tev := &sdl.TextInputEvent{Type: sdl.TEXTINPUT}
	copy(tev.Text[:], "hé")
	ev, ok = decode(tev)
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventTextInput{Text: "hé"})

	_, ok = decode(&sdl.TextEditingEvent{Type: sdl.TEXTEDITING})
	test.ExpectFailure(t, ok)
}

func TestDecodeMouse(t *testing.T) {
	ev, ok := decode(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: -3, YRel: 7})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventMouseMotion{XRel: -3, YRel: 7})

	ev, ok = decode(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_MIDDLE})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventMouseButton{Button: 2, Down: true})

	ev, ok = decode(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 1, Y: -2, Direction: sdl.MOUSEWHEEL_NORMAL})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventMouseWheel{X: 1, Y: -2})

	ev, ok = decode(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 1, Y: -2, Direction: sdl.MOUSEWHEEL_FLIPPED})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventMouseWheel{X: -1, Y: 2})
}

func TestDecodeController(t *testing.T) {
	ev, ok := decode(&sdl.ControllerAxisEvent{Type: sdl.CONTROLLERAXISMOTION, Which: 3, Axis: 5, Value: -100})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventControllerAxis{ID: 3, Axis: 5, Value: -100})

	ev, ok = decode(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONUP, Which: 3, Button: 1})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventControllerButton{ID: 3, Button: 1})

	ev, ok = decode(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEADDED, Which: 0})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventControllerAdded{Index: 0})
	test.ExpectEquality(t, ev.Class(), userinput.ClassControllerAttach)

	ev, ok = decode(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEREMOVED, Which: 3})
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventControllerRemoved{ID: 3})

	_, ok = decode(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEREMAPPED, Which: 3})
	test.ExpectFailure(t, ok)
}

func TestClassRange(t *testing.T) {
	for class, rng := range classRange {
		test.ExpectSuccess(t, rng[0] <= rng[1], class)
	}

	// device-added events are included in the full controller range
	attach := classRange[userinput.ClassControllerAttach]
	ctrl := classRange[userinput.ClassController]
	test.ExpectSuccess(t, attach[0] >= ctrl[0] && attach[1] <= ctrl[1])
}
