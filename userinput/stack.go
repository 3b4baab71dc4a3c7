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
	"github.com/jetsetilly/frameinput/assert"
)

// sentinel is the receiver at the bottom of the focus stack. it is given a
// size so that its address cannot be shared with any other zero sized
// receiver.
type sentinel struct {
	NopReceiver
	_ byte
}

// Capture pushes the receiver onto the focus stack. The receiver that
// previously had focus is deactivated and the new receiver is activated.
//
// Capturing a nil receiver is a programming error.
func (inp *Input) Capture(r Receiver) {
	if r == nil {
		assert.Fatalf("input: Capture() with nil receiver")
		return
	}

	if len(inp.stack) > 0 {
		inp.Current().Deactivate()
	}
	inp.stack = append(inp.stack, r)
	r.Activate()

	// stop events and axis state belong to the previous receiver
	inp.mouseTimestamps = timestamps{}
	inp.axes = axisState{}
	inp.lastController = NoController
}

// Release removes the receiver from the focus stack. If the receiver is at
// the top of the stack it is deactivated and the new top of the stack is
// activated. Otherwise the receiver is removed without any notifications.
//
// If the receiver appears more than once in the stack, only the occurrence
// nearest the top is removed.
//
// Releasing a receiver that is not on the stack is a programming error.
func (inp *Input) Release(r Receiver) {
	top := len(inp.stack) - 1

	if inp.stack[top] == r {
		if top == 0 {
			assert.Fatalf("input: Release() would leave focus stack empty")
			return
		}
		inp.stack = inp.stack[:top]
		r.Deactivate()
		inp.Current().Activate()
		return
	}

	for i := top - 1; i >= 0; i-- {
		if inp.stack[i] == r {
			if i == 0 {
				assert.Fatalf("input: Release() of bottom receiver")
				return
			}
			inp.stack = append(inp.stack[:i], inp.stack[i+1:]...)
			return
		}
	}

	assert.Fatalf("input: Release() of receiver not on focus stack")
}

// Current returns the receiver with focus.
func (inp *Input) Current() Receiver {
	return inp.stack[len(inp.stack)-1]
}

// Depth returns the number of receivers on the focus stack, including the
// receiver at the bottom of the stack that is installed by NewInput().
func (inp *Input) Depth() int {
	return len(inp.stack)
}
