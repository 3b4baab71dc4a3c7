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

// Package userinput is the per-frame input subsystem. It polls raw keyboard,
// mouse and game controller events from a Backend, normalises them into
// press, hold, release, move, wheel and stop events, and delivers those
// events to the Receiver at the top of a focus stack.
//
// The Input type is created with NewInput() and driven by calling Tick()
// once per frame from the same goroutine. Nothing in the package blocks and
// the number of raw events consumed per device class per frame is bounded.
// Events that do not fit in a frame's budget remain queued in the Backend
// for the next frame.
//
// Receivers are pushed onto the focus stack with Capture() and removed with
// Release(). The receiver at the top of the stack is the only receiver that
// sees events. A NopReceiver sits at the bottom of the stack so that there is
// always a receiver in focus.
//
// Game controllers are opened when the Input is created and whenever a
// device-added event is seen. They are closed when a device-removed event is
// seen and when the Input is destroyed.
package userinput
