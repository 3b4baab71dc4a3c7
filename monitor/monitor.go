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


package monitor

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/userinput"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Input defines the userinput.Input functions used by the Monitor.
type Input interface {
	KeyName(userinput.Key) (string, bool)
	MouseDelta(dx, dy int) (float32, float32)
	ControllerDelta(x, y float32) (float32, float32)
	Feedback(kind userinput.FeedbackKind, s1 float32, s2 float32, duration float32)
	SetGrab(bool)
	IsGrabbed() bool
	SetExclusive(bool)
	IsExclusive() bool
}

// scancodes of the keys with special meaning to the monitor
const (
	scancodeEscape = 41
	scancodeTab    = 43
)

// Record is the form of each line of output when the Monitor's JSON field is
// set.
type Record struct {
	Event  string    `json:"event"`
	Key    string    `json:"key,omitempty"`
	Values []float32 `json:"values,omitempty"`
	Text   string    `json:"text,omitempty"`
}

// Monitor is an implementation of userinput.Receiver.
type Monitor struct {
	output io.Writer
	inp    Input

	// print hold events. there is one hold event for every held button on
	// every frame so they are not printed by default
	Holds bool

	// output each event as a line of JSON
	JSON bool

	// number of events received since the last call to Activate()
	count int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(output io.Writer, inp Input) *Monitor {
	return &Monitor{
		output: output,
		inp:    inp,
	}
}

// Count returns the number of events received since the monitor was last
// activated.
func (mon *Monitor) Count() int {
	return mon.count
}

// write the record as JSON or the formatted string as plain text
func (mon *Monitor) write(rec Record, format string, args ...any) {
	if !mon.JSON {
		fmt.Fprintf(mon.output, format, args...)
		fmt.Fprintln(mon.output)
		return
	}

	b, err := json.Marshal(rec)
	if err != nil {
		logger.Log(logger.Allow, "monitor", curated.Errorf("json: %v", err))
		return
	}
	b = append(b, '\n')
	_, _ = mon.output.Write(b)
}

// report an input event
func (mon *Monitor) report(rec Record, format string, args ...any) {
	mon.count++
	mon.write(rec, format, args...)
}

// report a change to the monitor or to the input state
func (mon *Monitor) status(event string, value any) {
	if value == nil {
		mon.write(Record{Event: event}, "monitor: %s", event)
		return
	}
	v := fmt.Sprint(value)
	mon.write(Record{Event: event, Text: v}, "monitor: %s=%s", event, v)
}

// name of key for printing. keyboard keys are named by userinput if possible
func (mon *Monitor) name(key userinput.Key) string {
	if name, ok := mon.inp.KeyName(key); ok {
		return name
	}
	return key.String()
}

// Activate implements the userinput.Receiver interface.
func (mon *Monitor) Activate() {
	mon.count = 0
	mon.status("activated", nil)
}

// Deactivate implements the userinput.Receiver interface.
func (mon *Monitor) Deactivate() {
	mon.status("deactivated", nil)
}

// KeyPress implements the userinput.Receiver interface.
func (mon *Monitor) KeyPress(key userinput.Key) {
	n := mon.name(key)
	mon.report(Record{Event: "key press", Key: n}, "key press: %s", n)

	switch key {
	case scancodeEscape:
		mon.inp.SetGrab(!mon.inp.IsGrabbed())
		mon.status("grabbed", mon.inp.IsGrabbed())
	case scancodeTab:
		mon.inp.SetExclusive(!mon.inp.IsExclusive())
		mon.status("exclusive", mon.inp.IsExclusive())
	}
}

// KeyHold implements the userinput.Receiver interface.
func (mon *Monitor) KeyHold(key userinput.Key) {
	if mon.Holds {
		n := mon.name(key)
		mon.report(Record{Event: "key hold", Key: n}, "key hold: %s", n)
	}
}

// KeyRelease implements the userinput.Receiver interface.
func (mon *Monitor) KeyRelease(key userinput.Key) {
	n := mon.name(key)
	mon.report(Record{Event: "key release", Key: n}, "key release: %s", n)
}

// MousePress implements the userinput.Receiver interface.
func (mon *Monitor) MousePress(key userinput.Key) {
	n := mon.name(key)
	mon.report(Record{Event: "mouse press", Key: n}, "mouse press: %s", n)
}

// MouseHold implements the userinput.Receiver interface.
func (mon *Monitor) MouseHold(key userinput.Key) {
	if mon.Holds {
		n := mon.name(key)
		mon.report(Record{Event: "mouse hold", Key: n}, "mouse hold: %s", n)
	}
}

// MouseRelease implements the userinput.Receiver interface.
func (mon *Monitor) MouseRelease(key userinput.Key) {
	n := mon.name(key)
	mon.report(Record{Event: "mouse release", Key: n}, "mouse release: %s", n)
}

// MouseMove implements the userinput.Receiver interface.
func (mon *Monitor) MouseMove(dx, dy int) {
	x, y := mon.inp.MouseDelta(dx, dy)
	mon.report(Record{Event: "mouse move", Values: []float32{float32(dx), float32(dy), x, y}},
		"mouse move: %d %d (%.2f %.2f)", dx, dy, x, y)
}

// MouseWheel implements the userinput.Receiver interface.
func (mon *Monitor) MouseWheel(vertical, horizontal int) {
	mon.report(Record{Event: "mouse wheel", Values: []float32{float32(vertical), float32(horizontal)}},
		"mouse wheel: %d %d", vertical, horizontal)
}

// MouseStop implements the userinput.Receiver interface.
func (mon *Monitor) MouseStop(axis userinput.MouseAxis) {
	mon.report(Record{Event: "mouse stop", Key: axis.String()}, "mouse stop: %s", axis)
}

// ControllerPress implements the userinput.Receiver interface.
func (mon *Monitor) ControllerPress(key userinput.Key, x, y float32) {
	x, y = mon.inp.ControllerDelta(x, y)
	n := mon.name(key)
	mon.report(Record{Event: "controller press", Key: n, Values: []float32{x, y}},
		"controller press: %s %.2f %.2f", n, x, y)

	switch key {
	case userinput.ControllerButtonA:
		mon.inp.Feedback(userinput.FeedbackController, 0.5, 0.5, 0.25)
	case userinput.ControllerAxisTriggerLeft:
		mon.inp.Feedback(userinput.FeedbackTriggers, 1, 0, 0.25)
	case userinput.ControllerAxisTriggerRight:
		mon.inp.Feedback(userinput.FeedbackTriggers, 0, 1, 0.25)
	}
}

// ControllerHold implements the userinput.Receiver interface.
func (mon *Monitor) ControllerHold(key userinput.Key, x, y float32) {
	if mon.Holds {
		x, y = mon.inp.ControllerDelta(x, y)
		n := mon.name(key)
		mon.report(Record{Event: "controller hold", Key: n, Values: []float32{x, y}},
			"controller hold: %s %.2f %.2f", n, x, y)
	}
}

// ControllerRelease implements the userinput.Receiver interface.
func (mon *Monitor) ControllerRelease(key userinput.Key, _, _ float32) {
	n := mon.name(key)
	mon.report(Record{Event: "controller release", Key: n}, "controller release: %s", n)
}

// TextInput implements the userinput.Receiver interface.
func (mon *Monitor) TextInput(text string) {
	mon.report(Record{Event: "text", Text: text}, "text: %q", text)
}
