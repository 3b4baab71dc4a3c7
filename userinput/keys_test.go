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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/frameinput/test"
	"github.com/jetsetilly/frameinput/userinput"
)

func TestKeyRanges(t *testing.T) {
	test.ExpectSuccess(t, userinput.Key(0).IsKeyboard())
	test.ExpectSuccess(t, userinput.Key(userinput.KeyboardCount-1).IsKeyboard())
	test.ExpectFailure(t, userinput.Key(userinput.KeyboardCount).IsKeyboard())
	test.ExpectFailure(t, userinput.Key(-1).IsKeyboard())

	test.ExpectFailure(t, userinput.MouseInvalid.IsMouse())
	test.ExpectSuccess(t, userinput.Mouse1.IsMouse())
	test.ExpectSuccess(t, userinput.Mouse5.IsMouse())
	test.ExpectFailure(t, userinput.MouseMax.IsMouse())

	test.ExpectEquality(t, int(userinput.ControllerButtonMax-userinput.ControllerButtonInvalid-1), userinput.ControllerButtonCount)
	test.ExpectEquality(t, int(userinput.ControllerAxisMax-userinput.ControllerAxisInvalid-1), 4)
	test.ExpectEquality(t, int(userinput.MouseMax-userinput.MouseInvalid-1), userinput.MouseCount)

	test.ExpectSuccess(t, userinput.ControllerAxisLeft.IsControllerAxis())
	test.ExpectFailure(t, userinput.ControllerAxisLeft.IsControllerButton())
	test.ExpectSuccess(t, userinput.ControllerButtonTouchpad.IsControllerButton())
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, userinput.Key(4).String(), "Scancode(4)")
	test.ExpectEquality(t, userinput.Mouse2.String(), "Mouse2")
	test.ExpectEquality(t, userinput.ControllerButtonDPadUp.String(), "ControllerDPadUp")
	test.ExpectEquality(t, userinput.ControllerAxisTriggerRight.String(), "ControllerAxisTriggerRight")
	test.ExpectEquality(t, userinput.MouseMax.String(), "Key(518)")
	test.ExpectEquality(t, userinput.MouseAxisWheelHorizontal.String(), "WheelHorizontal")
}
