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
	"fmt"
	"runtime"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// size of the raw event buffer. must be at least as big as the largest
// batch requested by userinput
const rawEventBuffer = 256

// Backend is the SDL implementation of userinput.Backend.
type Backend struct {
	window *sdl.Window
	raw    []sdl.Event
}

// NewBackend is the preferred method of initialisation for the Backend type.
// The window is created with the title and dimensions.
func NewBackend(title string, width int32, height int32) (*Backend, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	b := &Backend{
		raw: make([]sdl.Event, rawEventBuffer),
	}

	b.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_INPUT_FOCUS)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	return b, nil
}

// Destroy closes the window and shuts down SDL.
func (b *Backend) Destroy() error {
	if b.window != nil {
		err := b.window.Destroy()
		if err != nil {
			return curated.Errorf("sdl: %v", err)
		}
		b.window = nil
	}
	sdl.Quit()
	return nil
}

// SetTitle changes the title of the window.
func (b *Backend) SetTitle(title string) {
	b.window.SetTitle(title)
}

// the SDL event range for each device class
var classRange = map[userinput.Class][2]uint32{
	userinput.ClassKeyboard:         {sdl.KEYDOWN, sdl.TEXTINPUT},
	userinput.ClassMouse:            {sdl.MOUSEMOTION, sdl.MOUSEWHEEL},
	userinput.ClassControllerAttach: {sdl.CONTROLLERDEVICEADDED, sdl.CONTROLLERDEVICEADDED},
	userinput.ClassController:       {sdl.CONTROLLERAXISMOTION, sdl.CONTROLLERDEVICEREMOVED},
}

// the SDL events that are never read. this is everything outside of
// classRange, QUIT and WINDOWEVENT. unread events must be flushed or they
// will fill the SDL queue, after which new events are dropped.
//
// game controllers are also joysticks and SDL queues an event for both. the
// joystick events are in these ranges, as are touch, gesture, controller
// touchpad and sensor, drop and clipboard events.
var unreadRanges = [][2]uint32{
	{sdl.FIRSTEVENT, sdl.QUIT - 1},
	{sdl.QUIT + 1, sdl.WINDOWEVENT - 1},
	{sdl.WINDOWEVENT + 1, sdl.KEYDOWN - 1},
	{sdl.TEXTINPUT + 1, sdl.MOUSEMOTION - 1},
	{sdl.MOUSEWHEEL + 1, sdl.CONTROLLERAXISMOTION - 1},
	{sdl.CONTROLLERDEVICEREMOVED + 1, sdl.LASTEVENT},
}

// Pump implements the userinput.Source interface.
func (b *Backend) Pump() {
	sdl.PumpEvents()
	for _, r := range unreadRanges {
		sdl.FlushEvents(r[0], r[1])
	}
}

// Peep implements the userinput.Source interface.
func (b *Backend) Peep(class userinput.Class, events []userinput.Event) int {
	rng, ok := classRange[class]
	if !ok {
		return 0
	}

	raw := b.raw[:min(len(events), len(b.raw))]
	count, err := sdl.PeepEvents(raw, sdl.GETEVENT, rng[0], rng[1])
	if err != nil {
		logger.Log(logger.Allow, "sdl", curated.Errorf("peep: %v", err))
		return 0
	}

	var n int
	for _, r := range raw[:count] {
		if ev, ok := decode(r); ok {
			events[n] = ev
			n++
		}
	}

	return n
}

// Window is the state of the window as reported by PollWindow().
type Window struct {
	Quit        bool
	FocusGained bool
	FocusLost   bool
}

func (w Window) String() string {
	return fmt.Sprintf("quit=%v gained=%v lost=%v", w.Quit, w.FocusGained, w.FocusLost)
}

// PollWindow consumes the quit and window events in the queue. It does not
// pump the event queue so it should be called after userinput.Input.Tick().
func (b *Backend) PollWindow() Window {
	var w Window

	n, _ := sdl.PeepEvents(b.raw, sdl.GETEVENT, sdl.QUIT, sdl.QUIT)
	w.Quit = n > 0

	n, _ = sdl.PeepEvents(b.raw, sdl.GETEVENT, sdl.WINDOWEVENT, sdl.WINDOWEVENT)
	for _, ev := range b.raw[:n] {
		if ev, ok := ev.(*sdl.WindowEvent); ok {
			switch ev.Event {
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				w.FocusGained = true
				w.FocusLost = false
			case sdl.WINDOWEVENT_FOCUS_LOST:
				w.FocusLost = true
				w.FocusGained = false
			case sdl.WINDOWEVENT_CLOSE:
				w.Quit = true
			}
		}
	}

	return w
}

// ShowCursor implements the userinput.Platform interface.
func (b *Backend) ShowCursor(show bool) error {
	toggle := sdl.DISABLE
	if show {
		toggle = sdl.ENABLE
	}
	_, err := sdl.ShowCursor(toggle)
	return err
}

// SetWindowGrab implements the userinput.Platform interface.
func (b *Backend) SetWindowGrab(grab bool) {
	b.window.SetGrab(grab)
}

// SetRelativeMouseMode implements the userinput.Platform interface.
func (b *Backend) SetRelativeMouseMode(relative bool) {
	sdl.SetRelativeMouseMode(relative)
}

// StopTextInput implements the userinput.Platform interface.
func (b *Backend) StopTextInput() {
	sdl.StopTextInput()
}

// MousePosition implements the userinput.Platform interface.
func (b *Backend) MousePosition() (int32, int32) {
	x, y, _ := sdl.GetMouseState()
	return x, y
}

// WarpMouse implements the userinput.Platform interface.
func (b *Backend) WarpMouse(x, y int32) {
	b.window.WarpMouseInWindow(x, y)
}

// ScancodeName implements the userinput.KeyNamer interface.
func (b *Backend) ScancodeName(scancode int) string {
	return sdl.GetKeyName(sdl.GetKeyFromScancode(sdl.Scancode(scancode)))
}
