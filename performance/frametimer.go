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

package performance

import "time"

// number of frames over which the frame time is averaged
const frameTimerWindow = 60

// FrameTimer measures the time taken between calls to Begin() and End()
// and keeps a rolling average over the most recent frames.
type FrameTimer struct {
	now func() time.Time

	begin   time.Time
	samples [frameTimerWindow]time.Duration
	idx     int
	count   int
	total   time.Duration
}

// NewFrameTimer is the preferred method of initialisation for the FrameTimer
// type. The now argument can be nil, in which case time.Now() is used.
func NewFrameTimer(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{now: now}
}

// Begin the measurement of a frame.
func (ft *FrameTimer) Begin() {
	ft.begin = ft.now()
}

// End the measurement of a frame. End() has no effect without a preceding
// call to Begin().
func (ft *FrameTimer) End() {
	if ft.begin.IsZero() {
		return
	}

	d := ft.now().Sub(ft.begin)
	ft.begin = time.Time{}

	ft.total -= ft.samples[ft.idx]
	ft.samples[ft.idx] = d
	ft.total += d
	ft.idx = (ft.idx + 1) % frameTimerWindow
	ft.count = min(ft.count+1, frameTimerWindow)
}

// Average returns the mean frame time of the recent frames.
func (ft *FrameTimer) Average() time.Duration {
	if ft.count == 0 {
		return 0
	}
	return ft.total / time.Duration(ft.count)
}

// Milliseconds returns the average frame time in milliseconds.
func (ft *FrameTimer) Milliseconds() float64 {
	return float64(ft.Average()) / float64(time.Millisecond)
}

// Frames returns the number of frames contributing to the average.
func (ft *FrameTimer) Frames() int {
	return ft.count
}
