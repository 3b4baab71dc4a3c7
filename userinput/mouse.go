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

func (inp *Input) mouseUpdate() {
	prev := inp.mouse

	var moved bool
	var offs [mouseAxisCount]int

	// a timestamp of zero is reserved to mean that no stop event is owed
	now := max(inp.now, 1)

	n := inp.backend.Peep(ClassMouse, inp.events[:MaxMouseEvents])
	for _, ev := range inp.events[:n] {
		switch ev := ev.(type) {
		case EventMouseMotion:
			moved = true
			inp.mouseTimestamps[MouseAxisX] = now
			inp.mouseTimestamps[MouseAxisY] = now
			offs[MouseAxisX] += ev.XRel
			offs[MouseAxisY] += ev.YRel

		case EventMouseWheel:
			moved = true
			inp.mouseTimestamps[MouseAxisWheelVertical] = now
			inp.mouseTimestamps[MouseAxisWheelHorizontal] = now
			offs[MouseAxisWheelVertical] += ev.Y
			offs[MouseAxisWheelHorizontal] += ev.X

		case EventMouseButton:
			b := ev.Button - 1
			if b < 0 || b >= MouseCount {
				continue
			}
			if inp.mouse[b] == ev.Down {
				continue
			}
			inp.mouse[b] = ev.Down
			if ev.Down {
				inp.Current().MousePress(mouseButtonToKey[b])
			} else {
				inp.Current().MouseRelease(mouseButtonToKey[b])
			}
		}
	}

	for i := range inp.mouse {
		if inp.mouse[i] && prev[i] {
			inp.Current().MouseHold(mouseButtonToKey[i])
		}
	}

	if moved {
		if offs[MouseAxisX] != 0 || offs[MouseAxisY] != 0 {
			inp.Current().MouseMove(offs[MouseAxisX], offs[MouseAxisY])
		}
		if offs[MouseAxisWheelVertical] != 0 || offs[MouseAxisWheelHorizontal] != 0 {
			inp.Current().MouseWheel(offs[MouseAxisWheelVertical], offs[MouseAxisWheelHorizontal])
		}
		return
	}

	// only the pointer axes have stop events. the wheel timestamps are
	// cleared silently
	delay := inp.cfg.mouseStopDelay()
	for axis, ts := range inp.mouseTimestamps {
		if ts != 0 && inp.now-ts >= delay {
			inp.mouseTimestamps[axis] = 0
			if MouseAxis(axis) == MouseAxisX || MouseAxis(axis) == MouseAxisY {
				inp.Current().MouseStop(MouseAxis(axis))
			}
		}
	}
}
