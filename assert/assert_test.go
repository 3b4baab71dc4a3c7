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

package assert_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/frameinput/assert"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestFatalf(t *testing.T) {
	if assert.Enabled {
		defer func() {
			test.ExpectInequality(t, recover(), nil)
		}()
		assert.Fatalf("broken contract %d", 1)
		return
	}

	logger.Clear()
	assert.Fatalf("broken contract %d", 1)
	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "assert: broken contract 1\n")
}
