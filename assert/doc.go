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

// Package assert helps enforce programming contracts. Contract violations
// are fatal when the program is built with the "assertions" build tag. In
// other builds the violation is logged and the caller is expected to carry
// on as if the offending call had not been made.
//
//	go build -tags=assertions
package assert
