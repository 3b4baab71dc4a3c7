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

// Package logger is the central logging facility for frameinput. Entries are
// made up of a tag, identifying the part of the program making the entry, and
// a detail. Consecutive identical entries are collapsed into a single entry
// with a repeat count, which keeps per-frame anomalies from flooding the log.
//
// Every logging request carries a Permission. Use logger.Allow if the entry
// should always be made.
package logger
