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

// Package singlestep contains the 6502 single-step tests as created and
// maintained by Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included in the repository. Add the
// instructions you want to test from the nes6502/v1 directory on Github to the
// nes6502/v1 directory in this package. The nes6502 variant of the tests
// expects binary arithmetic only, which is how the 2A03 behaves.
//
// The test is skipped if the directory does not exist.
package singlestep
