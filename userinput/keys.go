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

import "fmt"

// Key is the canonical identifier for a keyboard key, mouse button,
// controller button or controller axis. The identifiers for all device
// classes share the same space so that a single key binding can refer to
// any of them.
//
// Keyboard keys occupy the range 0 to KeyboardCount-1 and are the USB HID
// scancode of the key.
type Key int

// the number of buttons or axes in each device class. raw codes outside of
// these ranges are dropped.
const (
	KeyboardCount         = 512
	MouseCount            = 5
	ControllerButtonCount = 21
	ControllerAxisCount   = 6
)

// list of mouse and controller keys. the Invalid and Max values of each
// group bracket the valid identifiers.
const (
	MouseInvalid Key = iota + KeyboardCount
	Mouse1
	Mouse2
	Mouse3
	Mouse4
	Mouse5
	MouseMax

	ControllerButtonInvalid
	ControllerButtonA
	ControllerButtonB
	ControllerButtonX
	ControllerButtonY
	ControllerButtonBack
	ControllerButtonGuide
	ControllerButtonStart
	ControllerButtonLeftStick
	ControllerButtonRightStick
	ControllerButtonLeftShoulder
	ControllerButtonRightShoulder
	ControllerButtonDPadUp
	ControllerButtonDPadDown
	ControllerButtonDPadLeft
	ControllerButtonDPadRight
	ControllerButtonMisc1
	ControllerButtonPaddle1
	ControllerButtonPaddle2
	ControllerButtonPaddle3
	ControllerButtonPaddle4
	ControllerButtonTouchpad
	ControllerButtonMax

	ControllerAxisInvalid
	ControllerAxisLeft
	ControllerAxisRight
	ControllerAxisTriggerLeft
	ControllerAxisTriggerRight
	ControllerAxisMax
)

// the raw mouse buttons are numbered from one. the native middle button (2)
// is canonical button three and the native right button (3) is canonical
// button two.
var mouseButtonToKey = [MouseCount]Key{Mouse1, Mouse3, Mouse2, Mouse4, Mouse5}

// raw controller buttons map to the canonical buttons in the same order.
var controllerButtonToKey = [ControllerButtonCount]Key{
	ControllerButtonA,
	ControllerButtonB,
	ControllerButtonX,
	ControllerButtonY,
	ControllerButtonBack,
	ControllerButtonGuide,
	ControllerButtonStart,
	ControllerButtonLeftStick,
	ControllerButtonRightStick,
	ControllerButtonLeftShoulder,
	ControllerButtonRightShoulder,
	ControllerButtonDPadUp,
	ControllerButtonDPadDown,
	ControllerButtonDPadLeft,
	ControllerButtonDPadRight,
	ControllerButtonMisc1,
	ControllerButtonPaddle1,
	ControllerButtonPaddle2,
	ControllerButtonPaddle3,
	ControllerButtonPaddle4,
	ControllerButtonTouchpad,
}

var keyNames = map[Key]string{
	Mouse1:                        "Mouse1",
	Mouse2:                        "Mouse2",
	Mouse3:                        "Mouse3",
	Mouse4:                        "Mouse4",
	Mouse5:                        "Mouse5",
	ControllerButtonA:             "ControllerA",
	ControllerButtonB:             "ControllerB",
	ControllerButtonX:             "ControllerX",
	ControllerButtonY:             "ControllerY",
	ControllerButtonBack:          "ControllerBack",
	ControllerButtonGuide:         "ControllerGuide",
	ControllerButtonStart:         "ControllerStart",
	ControllerButtonLeftStick:     "ControllerLeftStick",
	ControllerButtonRightStick:    "ControllerRightStick",
	ControllerButtonLeftShoulder:  "ControllerLeftShoulder",
	ControllerButtonRightShoulder: "ControllerRightShoulder",
	ControllerButtonDPadUp:        "ControllerDPadUp",
	ControllerButtonDPadDown:      "ControllerDPadDown",
	ControllerButtonDPadLeft:      "ControllerDPadLeft",
	ControllerButtonDPadRight:     "ControllerDPadRight",
	ControllerButtonMisc1:         "ControllerMisc1",
	ControllerButtonPaddle1:       "ControllerPaddle1",
	ControllerButtonPaddle2:       "ControllerPaddle2",
	ControllerButtonPaddle3:       "ControllerPaddle3",
	ControllerButtonPaddle4:       "ControllerPaddle4",
	ControllerButtonTouchpad:      "ControllerTouchpad",
	ControllerAxisLeft:            "ControllerAxisLeft",
	ControllerAxisRight:           "ControllerAxisRight",
	ControllerAxisTriggerLeft:     "ControllerAxisTriggerLeft",
	ControllerAxisTriggerRight:    "ControllerAxisTriggerRight",
}

// String returns an identifier for the key suitable for debugging output.
// Use Input.KeyName() for a name suitable for presenting to the user.
func (k Key) String() string {
	if k.IsKeyboard() {
		return fmt.Sprintf("Scancode(%d)", int(k))
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// IsKeyboard returns true if the key is a keyboard scancode.
func (k Key) IsKeyboard() bool {
	return k >= 0 && k < KeyboardCount
}

// IsMouse returns true if the key is a mouse button.
func (k Key) IsMouse() bool {
	return k > MouseInvalid && k < MouseMax
}

// IsControllerButton returns true if the key is a controller button.
func (k Key) IsControllerButton() bool {
	return k > ControllerButtonInvalid && k < ControllerButtonMax
}

// IsControllerAxis returns true if the key is a controller stick or trigger.
func (k Key) IsControllerAxis() bool {
	return k > ControllerAxisInvalid && k < ControllerAxisMax
}

// MouseAxis identifies one of the mouse's motion or wheel axes.
type MouseAxis int

// List of valid MouseAxis values.
const (
	MouseAxisX MouseAxis = iota
	MouseAxisY
	MouseAxisWheelVertical
	MouseAxisWheelHorizontal
	mouseAxisCount
)

func (a MouseAxis) String() string {
	switch a {
	case MouseAxisX:
		return "X"
	case MouseAxisY:
		return "Y"
	case MouseAxisWheelVertical:
		return "WheelVertical"
	case MouseAxisWheelHorizontal:
		return "WheelHorizontal"
	}
	return fmt.Sprintf("MouseAxis(%d)", int(a))
}
