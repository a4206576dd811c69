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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// if the expectation is not met. The Demand*() functions are the same except
// that a failure is fatal for the test. Use the Demand*() functions when the
// value is used by subsequent parts of the test and so must be correct.
//
// The optional tags arguments to all functions are printed as part of the
// failure message. If the first tag is a string containing formatting verbs
// then the remaining tags are used as the arguments. Otherwise the tags are
// printed with spaces between them. This is useful when the test is running
// inside a loop and the iteration is needed to identify the failure.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the nil
// type because it is not obvious. The nil type is considered a success.
// Because of how error values work (nil to indicate no error) we *need* to
// interpret nil in this way.
package test
