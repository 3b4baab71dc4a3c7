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

// Source is a queue of raw events maintained by the windowing system.
type Source interface {
	// Pump gathers pending events from the operating system into the
	// queue. It is called once at the start of each frame.
	Pump()

	// Peep removes up to len(events) of the oldest queued events of the
	// specified class and stores them in events. Returns the number of
	// events stored. Peep must not block.
	Peep(class Class, events []Event) int
}

// Controller is an open game controller. Controllers are owned by the Input
// and are closed exactly once.
type Controller interface {
	InstanceID() InstanceID
	Name() string

	// strength values cover the full range of uint16. a duration of zero
	// means the effect continues until it is replaced
	Rumble(low uint16, high uint16, durationMS uint32) error
	RumbleTriggers(left uint16, right uint16, durationMS uint32) error

	Close()
}

// Devices enumerates and opens game controllers.
type Devices interface {
	// the number of attached devices. not all devices will be controllers
	NumDevices() int

	// whether the device at the index is a game controller
	IsController(index int) bool

	// the instance ID of the device at the index. valid before the device
	// is opened
	DeviceInstanceID(index int) InstanceID

	// open device at the index as a game controller
	OpenController(index int) (Controller, error)

	// shutdown the controller subsystem. called after all controllers have
	// been closed
	QuitControllers()
}

// Platform controls how the window treats the mouse cursor and keyboard.
type Platform interface {
	ShowCursor(show bool) error

	// confine input to the window
	SetWindowGrab(grab bool)

	// report mouse motion as relative deltas with the cursor hidden and
	// fixed in place
	SetRelativeMouseMode(enabled bool)

	StopTextInput()

	MousePosition() (x int32, y int32)
	WarpMouse(x int32, y int32)
}

// KeyNamer returns the name of the key with the scancode according to the
// current keyboard layout. Returns the empty string if the scancode has no
// name.
type KeyNamer interface {
	ScancodeName(scancode int) string
}

// Backend is everything the Input requires from the windowing system.
type Backend interface {
	Source
	Devices
	Platform
	KeyNamer
}
