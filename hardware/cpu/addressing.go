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

package cpu

import (
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// operand is the result of resolving the addressing mode of an instruction.
type operand struct {
	// the effective address after any indexing has taken place. for relative
	// addressing this is the unextended offset
	address uint16

	// the value read from the effective address for Read and RMW effects. for
	// immediate addressing it is the byte following the opcode
	value uint8

	// the address before indexing and whether indexing crossed a page. used
	// by the unstable store instructions
	base    uint16
	crossed bool
}

// resolve performs the addressing cycles of the instruction. for Read and
// RMW effects the value at the effective address is also read. in the case of
// RMW the unmodified value is written back to the address (the dummy write).
func (mc *CPU) resolve(defn *instructions.Definition) (operand, error) {
	var op operand
	var err error

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		if defn.Operator == instructions.Brk {
			// BRK skips the byte following the opcode
			// +1 cycle
			_, err = mc.read8BitPC(loByte)
			if err != nil {
				return op, err
			}
		} else {
			// the byte following the opcode is read but the PC is not
			// incremented
			// +1 cycle
			err = mc.dummyRead(mc.PC.Address())
			if err != nil {
				return op, err
			}
		}

	case instructions.Immediate:
		// +1 cycle
		op.value, err = mc.read8BitPC(loByte)
		if err != nil {
			return op, err
		}

	case instructions.Relative:
		// most of the cycles for this addressing mode are consumed by branch()
		// +1 cycle
		_, err = mc.read8BitPC(loByte)
		if err != nil {
			return op, err
		}
		op.address = mc.LastResult.InstructionData

	case instructions.Absolute:
		// JSR reads the address in a different order to other instructions. the
		// reading is deferred to the execution of the operator
		if defn.Effect == instructions.Subroutine {
			return op, nil
		}

		// +2 cycles
		op.address, err = mc.read16BitPC()
		if err != nil {
			return op, err
		}

	case instructions.ZeroPage:
		// +1 cycle
		_, err = mc.read8BitPC(loByte)
		if err != nil {
			return op, err
		}
		op.address = mc.LastResult.InstructionData

	case instructions.ZeroPageIndexedX:
		op.address, err = mc.zeroPageIndexed(mc.X.Value())
		if err != nil {
			return op, err
		}

	case instructions.ZeroPageIndexedY:
		op.address, err = mc.zeroPageIndexed(mc.Y.Value())
		if err != nil {
			return op, err
		}

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		op.base, err = mc.read16BitPC()
		if err != nil {
			return op, err
		}
		err = mc.indexed(defn, &op, mc.X.Value())
		if err != nil {
			return op, err
		}

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		op.base, err = mc.read16BitPC()
		if err != nil {
			return op, err
		}
		err = mc.indexed(defn, &op, mc.Y.Value())
		if err != nil {
			return op, err
		}

	case instructions.Indirect:
		// only used by JMP

		// +2 cycles
		var pointer uint16
		pointer, err = mc.read16BitPC()
		if err != nil {
			return op, err
		}

		// +1 cycle
		var lo, hi uint8
		lo, err = mc.read8Bit(pointer)
		if err != nil {
			return op, err
		}

		// the carry from incrementing the low byte of the pointer is never
		// added to the high byte. JMP ($xxff) reads the high byte of the
		// target address from $xx00
		if pointer&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		// +1 cycle
		hi, err = mc.read8Bit((pointer & 0xff00) | ((pointer + 1) & 0x00ff))
		if err != nil {
			return op, err
		}

		op.address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		// x indexing

		// +1 cycle
		_, err = mc.read8BitPC(loByte)
		if err != nil {
			return op, err
		}
		base := uint8(mc.LastResult.InstructionData)

		// dummy read before adjusting the index
		// +1 cycle
		err = mc.dummyRead(uint16(base))
		if err != nil {
			return op, err
		}

		// pointer never leaves the zero page
		pointer := base + mc.X.Value()
		if uint16(base)+uint16(mc.X.Value()) > 0xff || pointer == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		// +2 cycles
		op.address, err = mc.readZeroPagePointer(pointer)
		if err != nil {
			return op, err
		}

	case instructions.IndirectIndexed:
		// y indexing

		// +1 cycle
		_, err = mc.read8BitPC(loByte)
		if err != nil {
			return op, err
		}
		pointer := uint8(mc.LastResult.InstructionData)

		if pointer == 0xff {
			mc.LastResult.CPUBug = execution.IndirectIndexedAddressingBug
		}

		// +2 cycles
		op.base, err = mc.readZeroPagePointer(pointer)
		if err != nil {
			return op, err
		}

		err = mc.indexed(defn, &op, mc.Y.Value())
		if err != nil {
			return op, err
		}

	default:
		return op, curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory using the address resolved above only when:
	//  a) the addressing mode has an effective address. for immediate mode we
	//     already have the value and for implied modes we don't need one
	//  b) instruction is Read or RMW. for write modes we only use the address
	//     to write a value we already have. flow instructions use the address
	//     in specific ways
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return op, nil
	}

	switch defn.Effect {
	case instructions.Read:
		// +1 cycle
		op.value, err = mc.read8Bit(op.address)
		if err != nil {
			return op, err
		}

	case instructions.RMW:
		// +1 cycle
		op.value, err = mc.read8Bit(op.address)
		if err != nil {
			return op, err
		}

		// dummy write of the unmodified value
		// +1 cycle
		err = mc.write8Bit(op.address, op.value)
		if err != nil {
			return op, err
		}
	}

	return op, nil
}

// zeroPageIndexed reads the zero page base address and adds the index. the
// result never leaves the zero page
func (mc *CPU) zeroPageIndexed(index uint8) (uint16, error) {
	// +1 cycle
	_, err := mc.read8BitPC(loByte)
	if err != nil {
		return 0, err
	}
	base := uint8(mc.LastResult.InstructionData)

	// dummy read from base address before index adjustment
	// +1 cycle
	err = mc.dummyRead(uint16(base))
	if err != nil {
		return 0, err
	}

	if uint16(base)+uint16(index) > 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return uint16(base + index), nil
}

// readZeroPagePointer reads a 16bit address from the zero page. the high
// byte is read from the start of the zero page if the pointer is 0xff
func (mc *CPU) readZeroPagePointer(pointer uint8) (uint16, error) {
	// +1 cycle
	lo, err := mc.read8Bit(uint16(pointer))
	if err != nil {
		return 0, err
	}

	// +1 cycle
	hi, err := mc.read8Bit(uint16(pointer + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// indexed adds the index to the base address of the operand. the index is
// added to the low byte first. the address formed before the carry is added
// to the high byte is read if the carry is needed, or if the instruction
// writes to memory
func (mc *CPU) indexed(defn *instructions.Definition, op *operand, index uint8) error {
	op.address = op.base + uint16(index)
	op.crossed = op.address&0xff00 != op.base&0xff00

	if op.crossed || isIndexedWrite(defn) {
		// dummy read of the unfixed address
		// +1 cycle
		err := mc.dummyRead((op.base & 0xff00) | (op.address & 0x00ff))
		if err != nil {
			return err
		}
	}

	// only read instructions take an extra cycle when the page is crossed
	mc.LastResult.PageFault = op.crossed && !isIndexedWrite(defn)

	return nil
}
