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

// Package monitor implements a userinput.Receiver that writes a line of text
// for every event it receives. It also exercises some of the features of the
// userinput package in response to input:
//
//	Escape                   toggles the mouse grab
//	Tab                      toggles exclusive input
//	controller button A      rumbles every controller
//	controller triggers      rumble the triggers of the last used controller
//
// When the JSON field is set each event is written as a JSON object on a
// line of its own, for use by other programs. See the Record type.
package monitor
