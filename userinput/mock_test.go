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
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/frameinput/assert"
	"github.com/jetsetilly/frameinput/test"
	"github.com/jetsetilly/frameinput/userinput"
)

type rumble struct {
	triggers bool
	low      uint16
	high     uint16
	ms       uint32
}

type mockController struct {
	id      userinput.InstanceID
	rumbles []rumble
	closed  int
	fail    bool
}

func (c *mockController) InstanceID() userinput.InstanceID {
	return c.id
}

func (c *mockController) Name() string {
	return fmt.Sprintf("mock controller %d", c.id)
}

func (c *mockController) Rumble(low, high uint16, ms uint32) error {
	if c.fail {
		return errors.New("rumble not supported")
	}
	c.rumbles = append(c.rumbles, rumble{low: low, high: high, ms: ms})
	return nil
}

func (c *mockController) RumbleTriggers(low, high uint16, ms uint32) error {
	if c.fail {
		return errors.New("rumble not supported")
	}
	c.rumbles = append(c.rumbles, rumble{triggers: true, low: low, high: high, ms: ms})
	return nil
}

func (c *mockController) Close() {
	c.closed++
}

// mockDevice is a device that can be opened by the mockBackend
type mockDevice struct {
	controller bool
	id         userinput.InstanceID
	fail       bool
}

// mockBackend implements userinput.Backend. Events are added to the queue
// with push() and are removed by Peep() in the order they were pushed.
type mockBackend struct {
	queue []userinput.Event
	pumps int

	devices []mockDevice
	opened  map[userinput.InstanceID]*mockController
	opens   int
	quit    bool

	cursor     []bool
	windowGrab bool
	relative   bool
	textInput  bool
	x, y       int32

	names map[int]string
}

func newMockBackend(devices ...mockDevice) *mockBackend {
	return &mockBackend{
		devices:   devices,
		opened:    make(map[userinput.InstanceID]*mockController),
		textInput: true,
		names: map[int]string{
			4:  "A",
			44: "Space",
		},
	}
}

func (b *mockBackend) push(events ...userinput.Event) {
	b.queue = append(b.queue, events...)
}

func (b *mockBackend) attach(d mockDevice) int {
	b.devices = append(b.devices, d)
	return len(b.devices) - 1
}

func matchClass(class userinput.Class, ev userinput.Event) bool {
	if class == userinput.ClassController {
		return ev.Class() == userinput.ClassController || ev.Class() == userinput.ClassControllerAttach
	}
	return ev.Class() == class
}

func (b *mockBackend) Pump() {
	b.pumps++
}

func (b *mockBackend) Peep(class userinput.Class, events []userinput.Event) int {
	var n int
	var remaining []userinput.Event
	for _, ev := range b.queue {
		if n < len(events) && matchClass(class, ev) {
			events[n] = ev
			n++
		} else {
			remaining = append(remaining, ev)
		}
	}
	b.queue = remaining
	return n
}

func (b *mockBackend) NumDevices() int {
	return len(b.devices)
}

func (b *mockBackend) IsController(index int) bool {
	return index >= 0 && index < len(b.devices) && b.devices[index].controller
}

func (b *mockBackend) DeviceInstanceID(index int) userinput.InstanceID {
	return b.devices[index].id
}

func (b *mockBackend) OpenController(index int) (userinput.Controller, error) {
	b.opens++
	d := b.devices[index]
	if d.fail {
		return nil, errors.New("device unavailable")
	}
	c := &mockController{id: d.id}
	b.opened[d.id] = c
	return c, nil
}

func (b *mockBackend) QuitControllers() {
	b.quit = true
}

func (b *mockBackend) ShowCursor(show bool) error {
	b.cursor = append(b.cursor, show)
	return nil
}

func (b *mockBackend) SetWindowGrab(grab bool) {
	b.windowGrab = grab
}

func (b *mockBackend) SetRelativeMouseMode(relative bool) {
	b.relative = relative
}

func (b *mockBackend) StopTextInput() {
	b.textInput = false
}

func (b *mockBackend) MousePosition() (int32, int32) {
	return b.x, b.y
}

func (b *mockBackend) WarpMouse(x, y int32) {
	b.x = x
	b.y = y
}

func (b *mockBackend) ScancodeName(scancode int) string {
	return b.names[scancode]
}

// recorder is a userinput.Receiver that keeps a list of every event it
// receives
type recorder struct {
	name   string
	events []string
}

func (r *recorder) record(s string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(s, args...))
}

// flush returns and forgets the recorded events
func (r *recorder) flush() []string {
	e := r.events
	r.events = nil
	return e
}

func (r *recorder) Activate() {
	r.record("activate")
}

func (r *recorder) Deactivate() {
	r.record("deactivate")
}

func (r *recorder) KeyPress(k userinput.Key) {
	r.record("key press %d", k)
}

func (r *recorder) KeyHold(k userinput.Key) {
	r.record("key hold %d", k)
}

func (r *recorder) KeyRelease(k userinput.Key) {
	r.record("key release %d", k)
}

func (r *recorder) MousePress(k userinput.Key) {
	r.record("mouse press %v", k)
}

func (r *recorder) MouseHold(k userinput.Key) {
	r.record("mouse hold %v", k)
}

func (r *recorder) MouseRelease(k userinput.Key) {
	r.record("mouse release %v", k)
}

func (r *recorder) MouseMove(dx, dy int) {
	r.record("mouse move %d %d", dx, dy)
}

func (r *recorder) MouseWheel(v, h int) {
	r.record("mouse wheel %d %d", v, h)
}

func (r *recorder) MouseStop(a userinput.MouseAxis) {
	r.record("mouse stop %v", a)
}

func (r *recorder) ControllerPress(k userinput.Key, x, y float32) {
	r.record("controller press %v %.0f %.0f", k, x, y)
}

func (r *recorder) ControllerHold(k userinput.Key, x, y float32) {
	r.record("controller hold %v %.0f %.0f", k, x, y)
}

func (r *recorder) ControllerRelease(k userinput.Key, x, y float32) {
	r.record("controller release %v %.0f %.0f", k, x, y)
}

func (r *recorder) TextInput(s string) {
	r.record("text %q", s)
}

// clock is a manually advanced userinput.Clock
type clock struct {
	now time.Duration
}

func (c *clock) advance(ms int) {
	c.now += time.Duration(ms) * time.Millisecond
}

func (c *clock) time() time.Duration {
	return c.now
}

// setup returns an Input with a recorder capturing the input. the mouse
// stop delay is the default of 25ms
func setup(devices ...mockDevice) (*userinput.Input, *mockBackend, *recorder, *clock) {
	b := newMockBackend(devices...)
	cfg, err := userinput.NewConfig()
	if err != nil {
		panic(err)
	}
	inp := userinput.NewInput(b, cfg, false)

	clk := &clock{now: time.Second}
	inp.SetClock(clk.time)

	r := &recorder{name: "R"}
	inp.Capture(r)
	r.flush()

	return inp, b, r, clk
}

// expectEvents compares the events recorded by the receiver with the
// expected events. the recorded events are forgotten
func expectEvents(t *testing.T, r *recorder, expected ...string) {
	t.Helper()
	test.ExpectEquality(t, strings.Join(r.flush(), "; "), strings.Join(expected, "; "), r.name)
}

// expectFatal runs the function, which should break a programming contract.
// with assertions enabled the function must panic
func expectFatal(t *testing.T, f func()) {
	t.Helper()
	if !assert.Enabled {
		f()
		return
	}
	defer func() {
		t.Helper()
		test.ExpectInequality(t, recover(), nil)
	}()
	f()
}
