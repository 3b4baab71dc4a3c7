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

// SetGrab confines the mouse to the window and hides the cursor. If the
// Input is exclusive then relative mouse mode is also set, meaning that the
// cursor position no longer changes.
func (inp *Input) SetGrab(grab bool) {
	inp.grabbed = grab

	if err := inp.backend.ShowCursor(!grab); err != nil {
		logger.Log(logger.Allow, "input", curated.Errorf("grab: %v", err))
	}
	inp.backend.SetWindowGrab(grab)
	inp.backend.SetRelativeMouseMode(grab && inp.exclusive)
}

// SetExclusive changes whether a grab also sets relative mouse mode. The
// grab is released and then reapplied with the new exclusive state.
func (inp *Input) SetExclusive(exclusive bool) {
	inp.SetGrab(false)
	inp.exclusive = exclusive
	inp.SetGrab(true)
}

// IsGrabbed returns true if the mouse is grabbed.
func (inp *Input) IsGrabbed() bool {
	return inp.grabbed
}

// IsExclusive returns true if grabbing the mouse will also set relative
// mouse mode.
func (inp *Input) IsExclusive() bool {
	return inp.exclusive
}
