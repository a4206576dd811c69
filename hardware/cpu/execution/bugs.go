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

package execution

// Bug names a known quirk of the CPU that was triggered during execution.
type Bug string

// List of CPU bugs.
const (
	NoBug Bug = ""

	// JMP ($xxFF) reads the high byte of the target from $xx00
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// zero page pointer for (zp,X) wraps within the zero page
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// zero page pointer for (zp),Y wraps within the zero page
	IndirectIndexedAddressingBug Bug = "indirect indexed addressing bug"

	// zp,X and zp,Y wrap within the zero page
	ZeroPageIndexBug Bug = "zero page index bug"

	// high byte of the target address of SHA, SHX, SHY and TAS is replaced
	// by the stored value when indexing crosses a page
	UnstableHighByteBug Bug = "unstable high byte bug"
)
