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

// Package prefs facilitates the storage of preferential values in the
// Gopher2A03 system. It is used by packages that have settings which should
// survive between runs of the program, the CPU's random power-on state for
// example.
//
// Each preference is a typed value (Bool or Int) registered with a
// Disk under a unique key:
//
//	var randState prefs.Bool
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("hardware.randstate", &randState)
//	err = dsk.Load()
//
// The values are stored on disk, one per line, in the form:
//
//	key :: value
//
// Keys in the file that have not been added to a Disk instance are
// preserved when the Disk is saved, so more than one Disk can share the same
// file.
//
// Values can be overridden for the lifetime of a program with the command
// line stack. See PushCommandLineStack() for the format of the string. Values
// on the command line stack are consumed the first time a Disk instance
// containing the key is loaded.
package prefs
