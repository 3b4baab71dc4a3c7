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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/test"
)

const testPattern = "controller: %d: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("sdlinput: %v", "open failed")
	test.ExpectEquality(t, e.Error(), "sdlinput: open failed")

	// wrapping errors with the same prefix does not repeat the prefix
	f := curated.Errorf("sdlinput: %v", e)
	test.ExpectEquality(t, f.Error(), "sdlinput: open failed")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, 3, "not a game controller")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))

	f := curated.Errorf("input: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("device busy")
	e := curated.Errorf(testPattern, 0, cause)
	test.ExpectSuccess(t, errors.Is(e, cause))
	test.ExpectEquality(t, e.Error(), "controller: 0: device busy")
}
