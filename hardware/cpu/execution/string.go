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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// width of the disassembly columns. matches the layout of nestest.log style
// trace files
const (
	hexWidth = 8
	asmWidth = 32
)

// Operand returns the operand of the instruction formatted according to the
// addressing mode. Relative operands are shown as the branch target.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", r.InstructionData)
	case instructions.Relative:
		offset := r.InstructionData
		if offset&0x0080 == 0x0080 {
			offset |= 0xff00
		}
		return fmt.Sprintf("$%04X", r.Address+uint16(r.Defn.Bytes)+offset)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", r.InstructionData)
	}

	return ""
}

// ByteCode returns the bytes of the instruction as hex values.
func (r Result) ByteCode() string {
	if r.Defn == nil {
		return ""
	}

	b := []string{fmt.Sprintf("%02X", r.Defn.OpCode)}
	if r.ByteCount >= 2 {
		b = append(b, fmt.Sprintf("%02X", r.InstructionData&0x00ff))
	}
	if r.ByteCount >= 3 {
		b = append(b, fmt.Sprintf("%02X", r.InstructionData>>8))
	}
	return strings.Join(b, " ")
}

// Disassembly returns the address, bytes and assembly of the instruction in
// fixed width columns. Undocumented opcodes are marked with an asterisk.
func (r Result) Disassembly() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04X  %-*s  %-*s", r.Address, hexWidth, "", asmWidth,
			fmt.Sprintf("[%s]", r.Interrupt))
	}

	marker := " "
	if !r.Defn.IsDocumented() {
		marker = "*"
	}

	asm := r.Defn.Mnemonic
	if op := r.Operand(); op != "" {
		asm = fmt.Sprintf("%s %s", asm, op)
	}

	return fmt.Sprintf("%04X  %-*s %s%-*s", r.Address, hexWidth, r.ByteCode(), marker, asmWidth, asm)
}

// Notes returns the execution details that are not part of the disassembly:
// the number of cycles, page faults, branches and bugs.
func (r Result) Notes() string {
	s := strings.Builder{}

	if r.Final {
		s.WriteString(fmt.Sprintf("[%d]", r.Cycles))
	} else {
		s.WriteString("[v]")
	}
	if r.BranchSuccess {
		s.WriteString(" branched")
	}
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}

func (r Result) String() string {
	return fmt.Sprintf("%s %s", strings.TrimRight(r.Disassembly(), " "), r.Notes())
}
