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
	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// controller wraps an SDL game controller as a userinput.Controller.
type controller struct {
	pad  *sdl.GameController
	id   userinput.InstanceID
	name string
}

func (c *controller) InstanceID() userinput.InstanceID {
	return c.id
}

func (c *controller) Name() string {
	return c.name
}

func (c *controller) Rumble(low uint16, high uint16, durationMS uint32) error {
	return c.pad.Rumble(low, high, durationMS)
}

func (c *controller) RumbleTriggers(left uint16, right uint16, durationMS uint32) error {
	return c.pad.RumbleTriggers(left, right, durationMS)
}

func (c *controller) Close() {
	c.pad.Close()
}

// NumDevices implements the userinput.Devices interface.
func (b *Backend) NumDevices() int {
	return sdl.NumJoysticks()
}

// IsController implements the userinput.Devices interface.
func (b *Backend) IsController(index int) bool {
	return sdl.IsGameController(index)
}

// DeviceInstanceID implements the userinput.Devices interface.
func (b *Backend) DeviceInstanceID(index int) userinput.InstanceID {
	return userinput.InstanceID(sdl.JoystickGetDeviceInstanceID(index))
}

// OpenController implements the userinput.Devices interface.
func (b *Backend) OpenController(index int) (userinput.Controller, error) {
	pad := sdl.GameControllerOpen(index)
	if pad == nil {
		return nil, curated.Errorf("sdl: %v", sdl.GetError())
	}

	c := &controller{
		pad:  pad,
		id:   userinput.InstanceID(pad.Joystick().InstanceID()),
		name: pad.Name(),
	}

	return c, nil
}

// QuitControllers implements the userinput.Devices interface.
func (b *Backend) QuitControllers() {
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
}
