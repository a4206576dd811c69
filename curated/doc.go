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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The arguments are
// the same as for fmt.Errorf() but the first argument is thought of as a
// pattern rather than a format. The pattern is what distinguishes one curated
// error from another:
//
//	e := curated.Errorf("cpu: unsupported opcode (%#02x) at (%#04x)", 0x02, 0xc000)
//
//	if curated.Is(e, "cpu: unsupported opcode (%#02x) at (%#04x)") {
//		fmt.Println("true")
//	}
//
// Patterns that are tested for by other packages should be stored as a
// package level const string and the const used in calls to Errorf() and Is().
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain. In the following, Has() is true but Is() is
// false because the unsupported opcode error is wrapped:
//
//	f := curated.Errorf("run: %v", e)
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. So a wrapping of the form:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: bad thing"))
//
// will print as "cpu: bad thing" and not "cpu: cpu: bad thing". This means that
// a function can wrap errors returned by other functions in the same package
// without worrying about repeating the package prefix.
//
// Curated errors also implement the Unwrap() []error function expected by the
// errors package in the standard library, so errors.Is() and errors.As() will
// find any error value given as a placeholder argument.
package curated
