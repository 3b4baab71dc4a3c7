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

// Class is the device class of a raw event. The Backend queues events for
// each class separately so that each class can be drained with its own
// budget.
type Class int

// List of valid Class values.
const (
	// keyboard key and text input events
	ClassKeyboard Class = iota

	// mouse motion, button and wheel events
	ClassMouse

	// controller device-added events only
	ClassControllerAttach

	// all controller events, including device-added and device-removed
	ClassController
)

// InstanceID identifies an attached controller for as long as it remains
// attached. It is not the same as the device index used to open the
// controller.
type InstanceID int32

// NoController is the InstanceID used when there is no controller.
const NoController InstanceID = -1

// RawAxisMax is the largest raw value for a controller axis. The smallest
// value is -RawAxisMax-1.
const RawAxisMax = 32767

// Event is a raw event decoded by the Backend. The Event types in this
// package are the only implementations.
type Event interface {
	Class() Class
}

// EventKeyboard is a key press or release. Scancode is the USB HID scancode.
// Repeat is true if the event is an auto-repeat of a key that is already
// down.
type EventKeyboard struct {
	Scancode int
	Down     bool
	Repeat   bool
}

// EventTextInput is a string of text entered by the user.
type EventTextInput struct {
	Text string
}

// EventMouseMotion is a relative mouse movement.
type EventMouseMotion struct {
	XRel int
	YRel int
}

// EventMouseButton is a mouse button press or release. Button is the native
// button number, starting from one.
type EventMouseButton struct {
	Button int
	Down   bool
}

// EventMouseWheel is a movement of the mouse wheel. Positive Y is away from
// the user and positive X is to the right.
type EventMouseWheel struct {
	X int
	Y int
}

// EventControllerAxis is a new value for a controller axis.
type EventControllerAxis struct {
	ID    InstanceID
	Axis  int
	Value int16
}

// EventControllerButton is a controller button press or release.
type EventControllerButton struct {
	ID     InstanceID
	Button int
	Down   bool
}

// EventControllerAdded indicates that a controller has been attached. Index
// is the device index to use with Devices.OpenController().
type EventControllerAdded struct {
	Index int
}

// EventControllerRemoved indicates that a controller has been detached.
type EventControllerRemoved struct {
	ID InstanceID
}

// Class implements the Event interface.
func (EventKeyboard) Class() Class { return ClassKeyboard }

// Class implements the Event interface.
func (EventTextInput) Class() Class { return ClassKeyboard }

// Class implements the Event interface.
func (EventMouseMotion) Class() Class { return ClassMouse }

// Class implements the Event interface.
func (EventMouseButton) Class() Class { return ClassMouse }

// Class implements the Event interface.
func (EventMouseWheel) Class() Class { return ClassMouse }

// Class implements the Event interface.
func (EventControllerAxis) Class() Class { return ClassController }

// Class implements the Event interface.
func (EventControllerButton) Class() Class { return ClassController }

// Class implements the Event interface. Device-added events are found by
// both ClassControllerAttach and ClassController.
func (EventControllerAdded) Class() Class { return ClassControllerAttach }

// Class implements the Event interface.
func (EventControllerRemoved) Class() Class { return ClassController }
