// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log repository for the emulation. Entries are
// made with the Log() and Logf() functions. Each entry has a tag and a detail
// string. The tag is used to identify the emulation component making the
// entry:
//
//	logger.Logf(logger.Allow, "cpu", "unsupported opcode (%#02x)", opcode)
//
// The first argument to the logging functions is a Permission. This allows
// a log request to be made conditional on the state of the caller. Use
// logger.Allow if the entry should always be made.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The central log has a maximum number of entries; the oldest
// entries are forgotten when the maximum is exceeded.
//
// New entries can be echoed to an io.Writer with SetEcho(). If the writer is
// a terminal the echoed entries will be coloured.
package logger
