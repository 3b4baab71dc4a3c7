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
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jetsetilly/frameinput/assert"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/performance"
)

// maximum number of raw events consumed per device class per frame.
const (
	MaxKeyboardEvents   = 64
	MaxMouseEvents      = 256
	MaxControllerEvents = 64
)

// Clock returns the time elapsed since some fixed point. It must never go
// backwards and should not return zero once the first frame has started.
type Clock func() time.Duration

type keyboardState [KeyboardCount]bool
type mouseState [MouseCount]bool
type controllerState [ControllerButtonCount]bool
type axisState [ControllerAxisCount]int16

// last movement time of each mouse axis. zero means no stop event is owed
type timestamps [mouseAxisCount]time.Duration

// Input is the input subsystem. It must only be used from one goroutine.
type Input struct {
	backend Backend
	cfg     *Config

	stack []Receiver
	reg   registry

	keyboard   keyboardState
	mouse      mouseState
	controller controllerState
	axes       axisState

	mouseTimestamps timestamps

	// the controller that most recently produced an axis event
	lastController InstanceID

	grabbed   bool
	exclusive bool

	clock    Clock
	now      time.Duration
	suppress func() bool

	timer   *performance.FrameTimer
	routine assert.SameGoRoutine

	// reused for every call to Backend.Peep()
	events []Event
}

// NewInput is the preferred method of initialisation for the Input type.
// Controllers that are already attached are opened.
func NewInput(backend Backend, cfg *Config, exclusive bool) *Input {
	logger.Log(logger.Allow, "input", "starting input device")

	inp := &Input{
		backend:        backend,
		cfg:            cfg,
		reg:            registry{devices: backend},
		lastController: NoController,
		exclusive:      exclusive,
		timer:          performance.NewFrameTimer(nil),
		events:         make([]Event, max(MaxKeyboardEvents, MaxMouseEvents, MaxControllerEvents)),
	}

	start := time.Now()
	inp.clock = func() time.Duration {
		return time.Since(start)
	}

	for i := range backend.NumDevices() {
		inp.reg.open(i)
	}

	inp.Capture(&sentinel{})

	backend.StopTextInput()

	return inp
}

// SetClock replaces the clock used to time mouse stop events.
func (inp *Input) SetClock(clock Clock) {
	inp.clock = clock
}

// SetSuppressor sets the function that decides whether input should be
// processed on a frame. Input is suppressed when the function returns true.
// A nil function means input is never suppressed.
func (inp *Input) SetSuppressor(suppress func() bool) {
	inp.suppress = suppress
}

// Config returns the configuration of the input subsystem.
func (inp *Input) Config() *Config {
	return inp.cfg
}

// Tick processes the input events for a frame and sends the normalised
// events to the current receiver. It should be called once per frame.
//
// When input is suppressed no events are consumed and no button state is
// changed.
func (inp *Input) Tick() {
	if !inp.routine.Check() {
		assert.Fatalf("input: Tick() called from more than one goroutine")
	}

	inp.timer.Begin()
	defer inp.timer.End()

	inp.now = inp.clock()

	if inp.suppress != nil && inp.suppress() {
		return
	}

	inp.backend.Pump()
	inp.keyboardUpdate()
	inp.mouseUpdate()
	inp.controllerUpdate()
}

// Destroy releases the grab and closes all controllers. The Input should not
// be used after Destroy().
func (inp *Input) Destroy() {
	inp.SetGrab(false)
	inp.reg.closeAll()
	inp.backend.QuitControllers()
	logger.Log(logger.Allow, "input", "stopped input device")
}

func (inp *Input) reset() {
	inp.keyboard = keyboardState{}
	inp.mouse = mouseState{}
	inp.controller = controllerState{}
	inp.axes = axisState{}
	inp.mouseTimestamps = timestamps{}
	inp.lastController = NoController
}

// AppActivate should be called when the application gains focus. The current
// receiver is activated and all input state is forgotten.
func (inp *Input) AppActivate() {
	inp.Current().Activate()
	inp.reset()
}

// AppDeactivate should be called when the application loses focus. The
// current receiver is deactivated and all input state is forgotten.
func (inp *Input) AppDeactivate() {
	inp.Current().Deactivate()
	inp.reset()
}

// Pressed returns the current state of a keyboard key, mouse button or
// controller button. Unknown keys are never pressed.
func (inp *Input) Pressed(key Key) bool {
	switch {
	case key.IsKeyboard():
		return inp.keyboard[key]
	case key.IsMouse():
		for i, k := range mouseButtonToKey {
			if k == key {
				return inp.mouse[i]
			}
		}
	case key.IsControllerButton():
		return inp.controller[key-ControllerButtonInvalid-1]
	}
	return false
}

// KeyName returns a name for the key suitable for presenting to the user.
// Only keyboard keys can be named. Returns false if the key cannot be named.
func (inp *Input) KeyName(key Key) (string, bool) {
	if !key.IsKeyboard() {
		return "", false
	}
	name := inp.backend.ScancodeName(int(key))
	if name == "" {
		return "", false
	}
	return name, true
}

// MousePosition returns the position of the cursor in the window.
func (inp *Input) MousePosition() (int32, int32) {
	return inp.backend.MousePosition()
}

// WarpMouse moves the cursor to the position in the window.
func (inp *Input) WarpMouse(x, y int32) {
	inp.backend.WarpMouse(x, y)
}

// MouseDelta scales a mouse movement by the configured sensitivity. The
// vertical movement is inverted if MouseInvert is set.
func (inp *Input) MouseDelta(dx, dy int) (float32, float32) {
	sens := inp.cfg.MouseSens.Get().(float64) * inp.cfg.MouseSensScale.Get().(float64)
	x := float64(dx) * sens
	y := float64(dy) * sens
	if inp.cfg.MouseInvert.Get().(bool) {
		y = -y
	}
	return float32(x), float32(y)
}

// ControllerDelta scales a stick position by the configured controller
// sensitivity.
func (inp *Input) ControllerDelta(x, y float32) (float32, float32) {
	sens := float32(inp.cfg.ControllerSens.Get().(float64))
	return x * sens, y * sens
}

// DumpStatistics writes the average time spent in Tick().
func (inp *Input) DumpStatistics(w io.Writer) {
	ms := inp.timer.Milliseconds()
	if math.IsNaN(ms) {
		ms = 0
	}
	fmt.Fprintf(w, "*** INPUT:    %2.2fms\n", ms)
}

// ControllerInfo describes an open controller.
type ControllerInfo struct {
	ID   InstanceID
	Name string
}

// State is a summary of the Input at the time of the call to Snapshot().
type State struct {
	Pressed        []Key
	Axes           [ControllerAxisCount]int16
	Receivers      int
	Controllers    []ControllerInfo
	LastController InstanceID
	Grabbed        bool
	Exclusive      bool
	FrameTime      time.Duration
}

// Snapshot returns the current State of the Input.
func (inp *Input) Snapshot() State {
	s := State{
		Axes:           inp.axes,
		Receivers:      len(inp.stack),
		LastController: inp.lastController,
		Grabbed:        inp.grabbed,
		Exclusive:      inp.exclusive,
		FrameTime:      inp.timer.Average(),
	}

	for i, b := range inp.keyboard {
		if b {
			s.Pressed = append(s.Pressed, Key(i))
		}
	}
	for i, b := range inp.mouse {
		if b {
			s.Pressed = append(s.Pressed, mouseButtonToKey[i])
		}
	}
	for i, b := range inp.controller {
		if b {
			s.Pressed = append(s.Pressed, controllerButtonToKey[i])
		}
	}

	for _, c := range inp.reg.controllers {
		s.Controllers = append(s.Controllers, ControllerInfo{ID: c.InstanceID(), Name: c.Name()})
	}

	return s
}
