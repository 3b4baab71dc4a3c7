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

package assert

import (
	"fmt"

	"github.com/jetsetilly/frameinput/logger"
)

// Fatalf reports a broken programming contract. It panics if assertions are
// enabled and logs the message otherwise.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if Enabled {
		panic(fmt.Sprintf("assert: %s", msg))
	}
	logger.Log(logger.Allow, "assert", msg)
}
