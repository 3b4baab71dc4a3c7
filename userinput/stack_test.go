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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/frameinput/test"
	"github.com/jetsetilly/frameinput/userinput"
)

func newInput(t *testing.T) (*userinput.Input, *mockBackend) {
	t.Helper()
	b := newMockBackend()
	cfg, err := userinput.NewConfig()
	test.DemandSuccess(t, err)
	return userinput.NewInput(b, cfg, false), b
}

func TestFocusScenario(t *testing.T) {
	inp, _ := newInput(t)
	r1 := &recorder{name: "R1"}
	r2 := &recorder{name: "R2"}

	inp.Capture(r1)
	expectEvents(t, r1, "activate")

	inp.Capture(r2)
	expectEvents(t, r1, "deactivate")
	expectEvents(t, r2, "activate")

	// R1 is not at the top of the stack
	inp.Release(r1)
	expectEvents(t, r1)
	expectEvents(t, r2)
	test.ExpectEquality(t, inp.Depth(), 2)

	inp.Release(r2)
	expectEvents(t, r1)
	expectEvents(t, r2, "deactivate")
	test.ExpectEquality(t, inp.Depth(), 1)

	inp.Capture(r1)
	inp.Capture(r2)
	r1.flush()
	r2.flush()

	inp.Release(r2)
	expectEvents(t, r2, "deactivate")
	expectEvents(t, r1, "activate")
	test.ExpectEquality(t, inp.Current(), userinput.Receiver(r1))
}

func TestCaptureRelease(t *testing.T) {
	inp, _ := newInput(t)
	r1 := &recorder{name: "R1"}
	inp.Capture(r1)

	depth := inp.Depth()
	top := inp.Current()

	r2 := &recorder{name: "R2"}
	inp.Capture(r2)
	test.ExpectEquality(t, inp.Depth(), depth+1)
	test.ExpectEquality(t, inp.Current(), userinput.Receiver(r2))

	inp.Release(r2)
	test.ExpectEquality(t, inp.Depth(), depth)
	test.ExpectEquality(t, inp.Current(), top)
}

func TestReleaseNearest(t *testing.T) {
	inp, _ := newInput(t)
	r1 := &recorder{name: "R1"}
	r2 := &recorder{name: "R2"}
	r3 := &recorder{name: "R3"}

	inp.Capture(r1)
	inp.Capture(r2)
	inp.Capture(r1)
	inp.Capture(r3)
	r1.flush()
	r2.flush()
	r3.flush()

	// the occurrence of R1 nearest the top is removed
	inp.Release(r1)
	test.ExpectEquality(t, inp.Depth(), 4)
	expectEvents(t, r1)
	expectEvents(t, r3)

	inp.Release(r3)
	expectEvents(t, r3, "deactivate")
	expectEvents(t, r2, "activate")
	expectEvents(t, r1)

	inp.Release(r2)
	expectEvents(t, r2, "deactivate")
	expectEvents(t, r1, "activate")
	test.ExpectEquality(t, inp.Depth(), 2)
}

func TestEventsToTopOnly(t *testing.T) {
	inp, b := newInput(t)
	r1 := &recorder{name: "R1"}
	r2 := &recorder{name: "R2"}
	inp.Capture(r1)
	inp.Capture(r2)
	r1.flush()
	r2.flush()

	b.push(userinput.EventKeyboard{Scancode: 4, Down: true})
	inp.Tick()
	expectEvents(t, r1)
	expectEvents(t, r2, "key press 4")

	inp.Release(r2)
	r1.flush()

	// the key state is not reset when the focus changes
	inp.Tick()
	expectEvents(t, r1, "key hold 4")
}

func TestStackContract(t *testing.T) {
	inp, _ := newInput(t)

	expectFatal(t, func() {
		inp.Capture(nil)
	})
	test.ExpectEquality(t, inp.Depth(), 1)

	expectFatal(t, func() {
		inp.Release(&recorder{})
	})
	test.ExpectEquality(t, inp.Depth(), 1)

	// the receiver at the bottom of the stack can not be released
	expectFatal(t, func() {
		inp.Release(inp.Current())
	})
	test.ExpectEquality(t, inp.Depth(), 1)

	r := &recorder{name: "R"}
	bottom := inp.Current()
	inp.Capture(r)
	expectFatal(t, func() {
		inp.Release(bottom)
	})
	test.ExpectEquality(t, inp.Depth(), 2)
	expectEvents(t, r, "activate")
}

// opener is a receiver that captures another receiver in response to input,
// in the way that a menu might open a popup
type opener struct {
	recorder
	inp   *userinput.Input
	popup userinput.Receiver
}

func (o *opener) KeyPress(k userinput.Key) {
	o.recorder.KeyPress(k)
	if k == 4 {
		o.inp.Capture(o.popup)
	}
}

func (o *opener) MousePress(k userinput.Key) {
	o.recorder.MousePress(k)
	o.inp.Capture(o.popup)
}

func (o *opener) ControllerPress(k userinput.Key, x, y float32) {
	o.recorder.ControllerPress(k, x, y)
	o.inp.Capture(o.popup)
}

func TestCaptureDuringFrame(t *testing.T) {
	inp, b, _, _ := setup(mockDevice{controller: true, id: 7})
	popup := &recorder{name: "popup"}
	o := &opener{recorder: recorder{name: "opener"}, inp: inp, popup: popup}
	inp.Capture(o)
	o.flush()

	// the events after the key press go to the popup
	b.push(userinput.EventKeyboard{Scancode: 4, Down: true})
	b.push(userinput.EventKeyboard{Scancode: 5, Down: true})
	b.push(userinput.EventTextInput{Text: "b"})
	inp.Tick()
	expectEvents(t, &o.recorder, "key press 4", "deactivate")
	expectEvents(t, popup, "activate", "key press 5", `text "b"`)

	inp.Tick()
	expectEvents(t, &o.recorder)
	expectEvents(t, popup, "key hold 4", "key hold 5")

	inp.Release(popup)
	expectEvents(t, popup, "deactivate")
	o.flush()

	// mouse buttons and motion in the same frame
	b.push(userinput.EventMouseButton{Button: 1, Down: true})
	b.push(userinput.EventMouseMotion{XRel: 2, YRel: 3})
	inp.Tick()
	expectEvents(t, &o.recorder, "key hold 4", "key hold 5", "mouse press Mouse1", "deactivate")
	expectEvents(t, popup, "activate", "mouse move 2 3")

	inp.Release(popup)
	popup.flush()
	o.flush()

	// controller buttons and the stick in the same frame
	b.push(userinput.EventControllerButton{ID: 7, Button: 0, Down: true})
	b.push(userinput.EventControllerAxis{ID: 7, Axis: 0, Value: 32767})
	inp.Tick()
	expectEvents(t, &o.recorder, "key hold 4", "key hold 5", "mouse hold Mouse1", "controller press ControllerA 1 0", "deactivate")
	expectEvents(t, popup, "activate", "controller press ControllerAxisLeft 100 0")
}
