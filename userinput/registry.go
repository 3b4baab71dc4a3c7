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

import (
	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/logger"
)

// registry owns the open game controllers. controllers are kept in the
// order they were opened.
type registry struct {
	devices     Devices
	controllers []Controller
}

// open the device at the index if it is a game controller. devices that are
// already open are ignored. failure to open a device is logged.
func (reg *registry) open(index int) {
	if !reg.devices.IsController(index) {
		return
	}

	if reg.lookup(reg.devices.DeviceInstanceID(index)) != nil {
		return
	}

	c, err := reg.devices.OpenController(index)
	if err != nil {
		logger.Log(logger.Allow, "input", curated.Errorf("controller: %d: %v", index, err))
		return
	}

	reg.controllers = append(reg.controllers, c)
	logger.Logf(logger.Allow, "input", "controller: %d: %s", c.InstanceID(), c.Name())
}

// detach removes and closes the controller with the instance ID. an unknown
// ID is ignored, which can happen if the controller was never successfully
// opened.
func (reg *registry) detach(id InstanceID) {
	for i, c := range reg.controllers {
		if c.InstanceID() == id {
			reg.controllers = append(reg.controllers[:i], reg.controllers[i+1:]...)
			c.Close()
			logger.Logf(logger.Allow, "input", "controller: %d: detached", id)
			return
		}
	}
}

// lookup returns the controller with the instance ID or nil.
func (reg *registry) lookup(id InstanceID) Controller {
	for _, c := range reg.controllers {
		if c.InstanceID() == id {
			return c
		}
	}
	return nil
}

func (reg *registry) empty() bool {
	return len(reg.controllers) == 0
}

// closeAll closes every controller. the registry is empty afterwards.
func (reg *registry) closeAll() {
	controllers := reg.controllers
	reg.controllers = nil
	for _, c := range controllers {
		c.Close()
	}
}
