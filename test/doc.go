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

// Package test contains helper functions to remove common boilerplate from
// the tests in frameinput.
//
// The Expect*() functions log a test error and allow the test to continue.
// The Demand*() functions stop the test immediately. Use a Demand*()
// function when subsequent checks depend on the value being correct, for
// example the number of events recorded by a receiver before the individual
// events are inspected.
//
// The success and failure functions interpret their argument according to
// type. A bool is successful if it is true. An error is successful if it is
// nil. The untyped nil value is always a success, which is how a nil error
// arrives at the function once it has been boxed in an interface.
package test
