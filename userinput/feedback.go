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
	"math"

	"github.com/jetsetilly/frameinput/assert"
	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/logger"
)

// FeedbackKind selects the controllers and the motors used by Feedback().
type FeedbackKind int

// List of valid FeedbackKind values.
const (
	// the main rumble motors of every open controller
	FeedbackController FeedbackKind = iota

	// the trigger motors of the controller that most recently moved an axis
	FeedbackTriggers
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackController:
		return "controller"
	case FeedbackTriggers:
		return "triggers"
	}
	return "unknown"
}

// the largest value accepted by Controller.Rumble()
const rumbleMax = math.MaxUint16

// strength converts a value between 0 and 1 to the rumble range. values
// outside of that range are clamped.
func strength(s float32) uint16 {
	if math.IsNaN(float64(s)) || s <= 0 {
		return 0
	}
	if s >= 1 {
		return rumbleMax
	}
	return uint16(s * rumbleMax)
}

// Feedback starts the haptic motors of one or more controllers. The
// strengths are between 0 and 1 and the duration is in seconds. The first
// strength is for the low frequency (or left trigger) motor and the second
// strength is for the high frequency (or right trigger) motor.
//
// Controllers that fail to rumble are logged and otherwise ignored.
func (inp *Input) Feedback(kind FeedbackKind, s1 float32, s2 float32, duration float32) {
	low := strength(s1)
	high := strength(s2)

	var ms uint32
	if duration > 0 {
		ms = uint32(duration * 1000)
	}

	switch kind {
	case FeedbackController:
		for _, c := range inp.reg.controllers {
			if err := c.Rumble(low, high, ms); err != nil {
				logger.Log(logger.Allow, "input", curated.Errorf("feedback: %d: %v", c.InstanceID(), err))
			}
		}

	case FeedbackTriggers:
		if inp.lastController == NoController {
			return
		}
		c := inp.reg.lookup(inp.lastController)
		if c == nil {
			return
		}
		if err := c.RumbleTriggers(low, high, ms); err != nil {
			logger.Log(logger.Allow, "input", curated.Errorf("feedback: %d: %v", c.InstanceID(), err))
		}

	default:
		assert.Fatalf("input: unknown feedback kind (%d)", int(kind))
	}
}
