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

// Package functional_test runs the 6502 functional test as defined by Klaus
// Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binary is not distributed with the source. To run the test, assemble
// 6502_functional_test.a65 with disable_decimal set to 1 (the 2A03 has no
// decimal mode) and place the binary in the testdata directory as
// 6502_functional_test.bin. The test is skipped if the file is not present.
//
// The address of the success trap depends on the assembly options. The
// default is the address for the standard build; the FUNCTIONAL_SUCCESS
// environment variable overrides it, for example FUNCTIONAL_SUCCESS=0x336d.
package functional_test
