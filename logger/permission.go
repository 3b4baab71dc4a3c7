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

package logger

import "sync/atomic"

// Permission is consulted before every log request. Entries are only made
// when AllowLogging() returns true.
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow never refuses a log request.
var Allow Permission = always{}

// Once allows a single entry and then refuses until Reset() is called. Used
// for conditions that can repeat every frame, such as a full event queue,
// where only the first occurrence is interesting.
//
// The zero value is ready to use and safe for concurrent use.
type Once struct {
	logged atomic.Bool
}

func (o *Once) AllowLogging() bool {
	return !o.logged.Swap(true)
}

// Reset re-arms the permission.
func (o *Once) Reset() {
	o.logged.Store(false)
}
