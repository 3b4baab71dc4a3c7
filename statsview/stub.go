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


//go:build !statsview

package statsview

import (
	"io"

	"github.com/jetsetilly/frameinput/logger"
)

// Launch does nothing because the statsview build tag was not set.
func Launch(_ io.Writer, _ string) {
	logger.Log(logger.Allow, "statsview", "not available in this build")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
