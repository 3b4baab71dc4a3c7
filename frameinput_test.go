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


package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/frameinput/test"
	"github.com/jetsetilly/frameinput/userinput"
)

// fakePlatform is a platform with no devices. events are added to the queue
// directly
type fakePlatform struct {
	queue     []userinput.Event
	state     platformState
	grab      bool
	destroyed bool
}

func (p *fakePlatform) Pump() {}

func (p *fakePlatform) Peep(class userinput.Class, events []userinput.Event) int {
	var n int
	var remaining []userinput.Event
	for _, ev := range p.queue {
		if n < len(events) && ev.Class() == class {
			events[n] = ev
			n++
		} else {
			remaining = append(remaining, ev)
		}
	}
	p.queue = remaining
	return n
}

func (p *fakePlatform) NumDevices() int { return 0 }
func (p *fakePlatform) IsController(_ int) bool { return false }
func (p *fakePlatform) DeviceInstanceID(_ int) userinput.InstanceID { return userinput.NoController }
func (p *fakePlatform) OpenController(_ int) (userinput.Controller, error) { return nil, nil }
func (p *fakePlatform) QuitControllers() {}
func (p *fakePlatform) ShowCursor(_ bool) error { return nil }
func (p *fakePlatform) SetWindowGrab(grab bool) { p.grab = grab }
func (p *fakePlatform) SetRelativeMouseMode(_ bool) {}
func (p *fakePlatform) StopTextInput() {}
func (p *fakePlatform) MousePosition() (int32, int32) { return 0, 0 }
func (p *fakePlatform) WarpMouse(_, _ int32) {}

func (p *fakePlatform) ScancodeName(scancode int) string {
	if scancode == 4 {
		return "A"
	}
	return ""
}

func (p *fakePlatform) poll() platformState {
	st := p.state
	p.state = platformState{}
	return st
}

func (p *fakePlatform) destroy() error {
	p.destroyed = true
	return nil
}

func TestSession(t *testing.T) {
	cw := &test.CompareWriter{}
	plat := &fakePlatform{}

	s, err := newSession(plat, cw, sessionOptions{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, plat.grab)
	test.ExpectSuccess(t, cw.Compare("monitor: activated\n"))
	cw.Clear()

	plat.queue = append(plat.queue, userinput.EventKeyboard{Scancode: 4, Down: true})
	s.Service()
	test.ExpectSuccess(t, cw.Compare("key press: A\n"))
	cw.Clear()

	// losing focus deactivates the monitor and forgets the key press. there
	// is no release event for the key
	plat.state.focusLost = true
	s.Service()
	plat.queue = append(plat.queue, userinput.EventKeyboard{Scancode: 4, Down: false})
	s.Service()
	test.ExpectSuccess(t, cw.Compare("monitor: deactivated\n"), cw.String())
	cw.Clear()

	plat.state.focusGained = true
	s.Service()
	test.ExpectSuccess(t, cw.Compare("monitor: activated\n"), cw.String())
	cw.Clear()

	// the quit channel is closed once no matter how many times the platform
	// asks to quit
	plat.state.quit = true
	s.Service()
	plat.state.quit = true
	s.Service()
	select {
	case <-s.quit:
	default:
		t.Errorf("quit channel is not closed")
	}

	s.Destroy(cw)
	test.ExpectSuccess(t, plat.destroyed)
	test.ExpectFailure(t, plat.grab)
	test.ExpectSuccess(t, strings.Contains(cw.String(), "*** INPUT:"), cw.String())
}

func TestSessionMemviz(t *testing.T) {
	cw := &test.CompareWriter{}
	plat := &fakePlatform{}
	fn := filepath.Join(t.TempDir(), "input.dot")

	s, err := newSession(plat, cw, sessionOptions{memviz: fn})
	test.DemandSuccess(t, err)
	s.Service()
	s.Destroy(cw)

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestCRLFWriter(t *testing.T) {
	cw := &test.CompareWriter{}
	w := crlfWriter{w: cw}

	n, err := w.Write([]byte("a\nb\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, cw.Compare("a\r\nb\r\n"))
}
