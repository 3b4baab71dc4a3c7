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
	"slices"
	"testing"

	"github.com/jetsetilly/frameinput/test"
	"github.com/jetsetilly/frameinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func unread(typ uint32) bool {
	for _, r := range unreadRanges {
		if typ >= r[0] && typ <= r[1] {
			return true
		}
	}
	return false
}

// every event type is either read or flushed, and never both
func TestEventRangesCoverQueue(t *testing.T) {
	ranges := slices.Clone(unreadRanges)
	for class, r := range classRange {
		// device-added events are also part of the ClassController range
		if class == userinput.ClassControllerAttach {
			continue
		}
		ranges = append(ranges, r)
	}

	// events read by PollWindow()
	ranges = append(ranges, [2]uint32{sdl.QUIT, sdl.QUIT})
	ranges = append(ranges, [2]uint32{sdl.WINDOWEVENT, sdl.WINDOWEVENT})

	slices.SortFunc(ranges, func(a, b [2]uint32) int {
		return int(a[0]) - int(b[0])
	})

	test.ExpectEquality(t, ranges[0][0], uint32(sdl.FIRSTEVENT))
	for i := 1; i < len(ranges); i++ {
		test.ExpectEquality(t, ranges[i][0], ranges[i-1][1]+1, i)
	}
	test.ExpectEquality(t, ranges[len(ranges)-1][1], uint32(sdl.LASTEVENT))
}

func TestUnreadEvents(t *testing.T) {
	for _, typ := range []uint32{
		sdl.JOYAXISMOTION, sdl.JOYDEVICEREMOVED, sdl.KEYMAPCHANGED,
		sdl.FINGERDOWN, sdl.MULTIGESTURE, sdl.DROPFILE,
		sdl.CLIPBOARDUPDATE, sdl.USEREVENT,
	} {
		test.ExpectSuccess(t, unread(typ), typ)
	}

	for _, typ := range []uint32{
		sdl.QUIT, sdl.WINDOWEVENT, sdl.KEYDOWN, sdl.TEXTINPUT,
		sdl.MOUSEMOTION, sdl.MOUSEWHEEL, sdl.CONTROLLERAXISMOTION,
		sdl.CONTROLLERDEVICEADDED, sdl.CONTROLLERDEVICEREMOVED,
	} {
		test.ExpectFailure(t, unread(typ), typ)
	}
}
