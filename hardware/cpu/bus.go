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
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// cycle ends the current cycle and calls the cycle callback.
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	mc.TotalCycles++
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val := mc.mem.Read(address)

	// +1 cycle
	err := mc.cycle()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	mc.mem.Write(address, value)

	// +1 cycle
	return mc.cycle()
}

// read16Bit returns 16bit value from the specified address. the low byte is
// read first
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read 8bits from the PC location has additional side-effects depending on
// context
type read8BitPCeffect int

const (
	opcode read8BitPCeffect = iota
	loByte
	hiByte
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData for loByte and hiByte effects
func (mc *CPU) read8BitPC(effect read8BitPCeffect) (uint8, error) {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Increment()

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case loByte:
		mc.LastResult.InstructionData = uint16(v)
	case hiByte:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	err := mc.cycle()
	if err != nil {
		return 0, err
	}

	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - same as read8BitPC() for each 8bit read
func (mc *CPU) read16BitPC() (uint16, error) {
	_, err := mc.read8BitPC(loByte)
	if err != nil {
		return 0, err
	}
	_, err = mc.read8BitPC(hiByte)
	if err != nil {
		return 0, err
	}
	return mc.LastResult.InstructionData, nil
}

// dummyRead is a read of the address where the result is discarded. the
// hardware does this on cycles where it is busy internally
func (mc *CPU) dummyRead(address uint16) error {
	_, err := mc.read8Bit(address)
	return err
}

// push writes a value to the stack and decrements the stack pointer
func (mc *CPU) push(value uint8) error {
	return mc.write8Bit(mc.SP.Push(), value)
}

// pull increments the stack pointer and reads the value from the stack
func (mc *CPU) pull() (uint8, error) {
	return mc.read8Bit(mc.SP.Pop())
}

// isIndexedWrite returns true if the effect of the instruction means that an
// indexed address is always fixed before the final access
func isIndexedWrite(defn *instructions.Definition) bool {
	return defn.Effect == instructions.Write || defn.Effect == instructions.RMW
}
