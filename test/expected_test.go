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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/frameinput/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, "press", "pre"+"ss")
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10.0, 10.5, 0.1)
	test.ExpectApproximate(t, float32(33.3), float32(33.33), 0.01)
}

func TestCompareWriter(t *testing.T) {
	cw := &test.CompareWriter{}
	cw.Write([]byte("key: A\n"))
	test.ExpectSuccess(t, cw.Compare("key: A\n"))
	cw.Write([]byte("key: B\n"))
	test.ExpectEquality(t, len(cw.Lines()), 2)
	test.ExpectEquality(t, cw.Lines()[1], "key: B")
	cw.Clear()
	test.ExpectSuccess(t, cw.Compare(""))
	test.ExpectEquality(t, len(cw.Lines()), 0)
}
