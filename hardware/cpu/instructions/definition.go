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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Operator       Operator
	PageSensitive  bool
	Effect         Category
	Status         Status
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s status=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode,
		defn.PageSensitive, defn.Effect, defn.Status)
}

// IsBranch returns true if instruction is a branch instruction. Branch
// instructions take one more cycle when the branch is taken.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsDocumented returns true if the opcode is part of the documented
// instruction set.
func (defn Definition) IsDocumented() bool {
	return defn.Status == Documented
}
