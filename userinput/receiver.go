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

// Receiver is a focus scoped listener for normalised input events. Only the
// receiver at the top of the focus stack receives events.
//
// Receivers are compared by identity so implementations should be pointer
// types. Embed NopReceiver to implement only the functions required.
type Receiver interface {
	// the receiver has gained or lost focus
	Activate()
	Deactivate()

	KeyPress(key Key)
	KeyHold(key Key)
	KeyRelease(key Key)

	MousePress(key Key)
	MouseHold(key Key)
	MouseRelease(key Key)

	// relative movement accumulated over the frame
	MouseMove(dx int, dy int)
	MouseWheel(vertical int, horizontal int)

	// the mouse axis has not moved for Config.MouseStopDelay
	MouseStop(axis MouseAxis)

	// buttons report x as 1.0 when pressed or held. sticks and triggers
	// report the position of the axes as percentages
	ControllerPress(key Key, x float32, y float32)
	ControllerHold(key Key, x float32, y float32)
	ControllerRelease(key Key, x float32, y float32)

	TextInput(text string)
}

// NopReceiver implements the Receiver interface and ignores every event. It
// is the receiver at the bottom of the focus stack and can be embedded in
// other Receiver implementations.
type NopReceiver struct{}

func (*NopReceiver) Activate()                             {}
func (*NopReceiver) Deactivate()                           {}
func (*NopReceiver) KeyPress(_ Key)                        {}
func (*NopReceiver) KeyHold(_ Key)                         {}
func (*NopReceiver) KeyRelease(_ Key)                      {}
func (*NopReceiver) MousePress(_ Key)                      {}
func (*NopReceiver) MouseHold(_ Key)                       {}
func (*NopReceiver) MouseRelease(_ Key)                    {}
func (*NopReceiver) MouseMove(_ int, _ int)                {}
func (*NopReceiver) MouseWheel(_ int, _ int)               {}
func (*NopReceiver) MouseStop(_ MouseAxis)                 {}
func (*NopReceiver) ControllerPress(_ Key, _, _ float32)   {}
func (*NopReceiver) ControllerHold(_ Key, _, _ float32)    {}
func (*NopReceiver) ControllerRelease(_ Key, _, _ float32) {}
func (*NopReceiver) TextInput(_ string)                    {}
