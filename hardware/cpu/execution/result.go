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

import (
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the result is of an
	// interrupt sequence (other than BRK)
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction. for branch instructions this is the
	// offset value
	InstructionData uint16

	// the number of cycles taken by the instruction, counted as it executes
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow.
	// for branch instructions, whether the branch crossed a page
	PageFault bool

	// whether the branch instruction branched
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// the interrupt sequence that was performed
	Interrupt Interrupt

	// whether this data has been finalised. some fields may be undefined
	// until Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
