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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different set
// of flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(), which takes no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "version")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If the first argument after the flags is one of the sub-modes then it is
// consumed and becomes the current Mode(). If it is not, the first sub-mode in
// the list is used. Sub-mode comparisons are case insensitive and modes are
// always reported in upper case.
//
// Once a mode has been selected, NewMode() prepares the Modes type for the
// flags of that mode. A second call to Parse() processes the arguments that
// follow the mode selector:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "print trace")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		run(*trace, md.RemainingArgs())
//	}
//
// Help messages for the -help flag are written to the Output field
// automatically, including the list of sub-modes and any text given to
// AdditionalHelp().
package modalflag
