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

package instructions

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// the number of bytes in an instruction using the addressing mode
func (m AddressingMode) bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}

// map of addressing mode names as used in instructions.csv
var addressingModes = map[string]AddressingMode{
	"IMPLIED":             Implied,
	"ACCUMULATOR":         Accumulator,
	"IMMEDIATE":           Immediate,
	"RELATIVE":            Relative,
	"ABSOLUTE":            Absolute,
	"ZERO_PAGE":           ZeroPage,
	"INDIRECT":            Indirect,
	"INDEXED_INDIRECT":    IndexedIndirect,
	"INDIRECT_INDEXED":    IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": ZeroPageIndexedY,
}
