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
	"bytes"

	"github.com/jetsetilly/frameinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// decode converts an SDL event to a userinput.Event. Returns false if the
// event is not used by userinput.
func decode(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Scancode: int(ev.Keysym.Scancode),
			Down:     ev.Type == sdl.KEYDOWN,
			Repeat:   ev.Repeat != 0,
		}, true

	case *sdl.TextInputEvent:
		text := ev.Text[:]
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		return userinput.EventTextInput{Text: string(text)}, true

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{
			XRel: int(ev.XRel),
			YRel: int(ev.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		return userinput.EventMouseButton{
			Button: int(ev.Button),
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}, true

	case *sdl.MouseWheelEvent:
		x, y := int(ev.X), int(ev.Y)
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		return userinput.EventMouseWheel{X: x, Y: y}, true

	case *sdl.ControllerAxisEvent:
		return userinput.EventControllerAxis{
			ID:    userinput.InstanceID(ev.Which),
			Axis:  int(ev.Axis),
			Value: ev.Value,
		}, true

	case *sdl.ControllerButtonEvent:
		return userinput.EventControllerButton{
			ID:     userinput.InstanceID(ev.Which),
			Button: int(ev.Button),
			Down:   ev.Type == sdl.CONTROLLERBUTTONDOWN,
		}, true

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// for device-added events the Which field is the device index
			return userinput.EventControllerAdded{Index: int(ev.Which)}, true
		case sdl.CONTROLLERDEVICEREMOVED:
			return userinput.EventControllerRemoved{ID: userinput.InstanceID(ev.Which)}, true
		}
	}

	return nil, false
}
