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

// Package prefs provides typed preference values. Each value can be set from
// its native Go type or from a string, which makes the values suitable for
// setting from the command line. Pre and post hooks allow the owner of a
// value to validate a new value before it is stored and to react to it
// afterwards.
//
// The command line stack (see PushCommandLineStack()) allows a group of
// "key::value" pairs to take priority over the default values of
// preferences as they are created.
//
// Preferences are not written to or read from disk.
package prefs
