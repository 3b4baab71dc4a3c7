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

// the raw axes, in the order of the axis index in EventControllerAxis
const (
	rawAxisLeftX = iota
	rawAxisLeftY
	rawAxisRightX
	rawAxisRightY
	rawAxisTriggerLeft
	rawAxisTriggerRight
)

// quantize converts a raw axis value to a percentage of the axis range.
func quantize(v int16) float32 {
	return float32(v) / (RawAxisMax / 100.0)
}

// applyDeadZone returns zero if the magnitude of the raw value is less than
// the dead zone.
func applyDeadZone(v int16, deadZone int) int16 {
	m := int(v)
	if m < 0 {
		m = -m
	}
	if m < deadZone {
		return 0
	}
	return v
}

// the canonical key for each stick and the raw axes that make it. triggers
// have a single axis and y is -1
var sticks = []struct {
	key  Key
	x, y int
}{
	{key: ControllerAxisLeft, x: rawAxisLeftX, y: rawAxisLeftY},
	{key: ControllerAxisRight, x: rawAxisRightX, y: rawAxisRightY},
	{key: ControllerAxisTriggerLeft, x: rawAxisTriggerLeft, y: -1},
	{key: ControllerAxisTriggerRight, x: rawAxisTriggerRight, y: -1},
}

// pair returns the values of the two axes. the value of axis -1 is zero
func (a axisState) pair(x, y int) (int16, int16) {
	if y < 0 {
		return a[x], 0
	}
	return a[x], a[y]
}

func (inp *Input) controllerUpdate() {
	n := inp.backend.Peep(ClassControllerAttach, inp.events[:MaxControllerEvents])
	for _, ev := range inp.events[:n] {
		if ev, ok := ev.(EventControllerAdded); ok {
			inp.reg.open(ev.Index)
		}
	}

	// controller events are left in the queue if there is nothing to
	// process them
	if inp.reg.empty() {
		return
	}

	deadZone := inp.cfg.deadZone()
	prev := inp.controller
	prevAxes := inp.axes

	n = inp.backend.Peep(ClassController, inp.events[:MaxControllerEvents])
	for _, ev := range inp.events[:n] {
		switch ev := ev.(type) {
		case EventControllerAxis:
			if ev.Axis < 0 || ev.Axis >= ControllerAxisCount {
				continue
			}
			inp.lastController = ev.ID
			inp.axes[ev.Axis] = applyDeadZone(ev.Value, deadZone)

		case EventControllerButton:
			if ev.Button < 0 || ev.Button >= ControllerButtonCount {
				continue
			}
			if inp.controller[ev.Button] == ev.Down {
				continue
			}
			inp.controller[ev.Button] = ev.Down
			if ev.Down {
				inp.Current().ControllerPress(controllerButtonToKey[ev.Button], 1, 0)
			} else {
				inp.Current().ControllerRelease(controllerButtonToKey[ev.Button], 0, 0)
			}

		case EventControllerAdded:
			inp.reg.open(ev.Index)

		case EventControllerRemoved:
			inp.reg.detach(ev.ID)

			// the state of the controller can't be kept. there will be no
			// release events from a controller that is no longer attached
			if inp.reg.empty() || ev.ID == inp.lastController {
				inp.releaseController()
				prev = controllerState{}
				prevAxes = axisState{}
			}
		}
	}

	for i := range inp.controller {
		if inp.controller[i] && prev[i] {
			inp.Current().ControllerHold(controllerButtonToKey[i], 1, 0)
		}
	}

	for _, s := range sticks {
		x, y := inp.axes.pair(s.x, s.y)
		prevX, prevY := prevAxes.pair(s.x, s.y)
		inp.stick(s.key, x, y, prevX, prevY)
	}
}

// releaseController sends a release event for every held button and active
// stick and then forgets the controller state.
func (inp *Input) releaseController() {
	for i := range inp.controller {
		if inp.controller[i] {
			inp.Current().ControllerRelease(controllerButtonToKey[i], 0, 0)
		}
	}

	for _, s := range sticks {
		if x, y := inp.axes.pair(s.x, s.y); x != 0 || y != 0 {
			inp.Current().ControllerRelease(s.key, 0, 0)
		}
	}

	inp.controller = controllerState{}
	inp.axes = axisState{}
	inp.lastController = NoController
}

// stick sends the press, hold or release event for a pair of axes. an axis
// is active if it is not zero after the dead zone has been applied.
func (inp *Input) stick(key Key, x, y, prevX, prevY int16) {
	switch {
	case (x != 0 && prevX != 0) || (y != 0 && prevY != 0):
		inp.Current().ControllerHold(key, quantize(x), quantize(y))
	case x != 0 || y != 0:
		inp.Current().ControllerPress(key, quantize(x), quantize(y))
	case prevX != 0 || prevY != 0:
		inp.Current().ControllerRelease(key, 0, 0)
	}
}
