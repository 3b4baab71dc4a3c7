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

// Package modalflag wraps the flag package so that a command line can select
// a mode of operation, with each mode having its own flags. For example:
//
//	frameinput -prefs "input.mouse.invert::true" monitor -exclusive
//
// Modes are parsed one level at a time. The arguments are given with
// NewArgs(), the flags and sub-modes for the first level are added and then
// Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "TTY")
//	prefs := md.AddString("prefs", "", "preferences")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// Mode() is now the selected mode, or the first sub-mode if no mode was
// named on the command line. The flags for the next level are added after a
// call to NewMode() and the arguments are parsed again with Parse().
//
// Sub-mode names are not case sensitive. Mode() always returns the name in
// upper case.
package modalflag
