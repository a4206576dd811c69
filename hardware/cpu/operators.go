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
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// execute performs the operation of the instruction on the resolved operand.
// for RMW instructions the modified value is written back to memory.
func (mc *CPU) execute(defn *instructions.Definition, op operand) error {
	var err error

	// value is modified by RMW instructions and written back to memory at the
	// end of the function
	value := op.value
	address := op.address

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.delayInterruptDisable()
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.delayInterruptDisable()
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		err = mc.push(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Php:
		// status is always pushed with the break bit set
		// +1 cycle
		err = mc.push(mc.Status.Value() | registers.Break)
		if err != nil {
			return err
		}

	case instructions.Pla:
		// +1 cycle
		err = mc.dummyRead(mc.SP.Address())
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Plp:
		// +1 cycle
		err = mc.dummyRead(mc.SP.Address())
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.delayInterruptDisable()
		mc.Status.LoadFromStack(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Sta:
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		// +1 cycle
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		// +1 cycle
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Asl:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.ASL()
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Lsr:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.LSR()
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Rol:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Ror:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Adc:
		// no decimal mode on the 2A03
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.Status.SetZN(mc.acc8.Value())
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.Status.SetZN(mc.acc8.Value())
		value = mc.acc8.Value()

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, address)
		if err != nil {
			return err
		}

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, address)
		if err != nil {
			return err
		}

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, address)
		if err != nil {
			return err
		}

	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, address)
		if err != nil {
			return err
		}

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, address)
		if err != nil {
			return err
		}

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, address)
		if err != nil {
			return err
		}

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, address)
		if err != nil {
			return err
		}

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, address)
		if err != nil {
			return err
		}

	case instructions.Jsr:
		// +1 cycle
		_, err = mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

		// the PC now points to the last byte of the instruction. this is the
		// value pushed onto the stack. RTS corrects for this when it returns

		// dummy read of the stack
		// +1 cycle
		err = mc.dummyRead(mc.SP.Address())
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}

		// +1 cycle
		_, err = mc.read8BitPC(hiByte)
		if err != nil {
			return err
		}

		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// +1 cycle
		err = mc.dummyRead(mc.SP.Address())
		if err != nil {
			return err
		}

		// +2 cycles
		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return err
		}
		hi, err = mc.pull()
		if err != nil {
			return err
		}
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		// +1 cycle
		err = mc.dummyRead(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Increment()

	case instructions.Brk:
		mc.LastResult.Interrupt = execution.BRK

		// +3 cycles
		err = mc.pushPC()
		if err != nil {
			return err
		}
		err = mc.push(mc.Status.Value() | registers.Break)
		if err != nil {
			return err
		}

		mc.Status.InterruptDisable = true

		// +2 cycles
		err = mc.loadVector(cpubus.IRQ)
		if err != nil {
			return err
		}

	case instructions.Rti:
		// +1 cycle
		err = mc.dummyRead(mc.SP.Address())
		if err != nil {
			return err
		}

		// the change to the interrupt disable flag is immediate
		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.LoadFromStack(value)

		// +2 cycles
		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return err
		}
		hi, err = mc.pull()
		if err != nil {
			return err
		}
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	// undocumented instructions

	case instructions.Slo:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		value = mc.acc8.Value()
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Rla:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Sre:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		value = mc.acc8.Value()
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Rra:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Sax:
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value()&mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.Status.SetZN(value)

	case instructions.Dcp:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		value = mc.acc8.Value()
		mc.compare(mc.A.Value(), value)

	case instructions.Isc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		value = mc.acc8.Value()
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Anc:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetZN(mc.A.Value())

	case instructions.Arr:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = mc.A.Value()&0x40 == 0x40
		mc.Status.Overflow = ((mc.A.Value()>>6)^(mc.A.Value()>>5))&0x01 == 0x01

	case instructions.Ane:
		// unstable. the constant ORed with the accumulator varies between
		// chips. 0xee is the most commonly observed value
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lxa:
		mc.A.Load((mc.A.Value() | 0xee) & value)
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Axs:
		t := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = t >= value
		mc.X.Load(t - value)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Sha:
		err = mc.unstableStore(op, mc.A.Value()&mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Shx:
		err = mc.unstableStore(op, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Shy:
		err = mc.unstableStore(op, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		err = mc.unstableStore(op, mc.SP.Value())
		if err != nil {
			return err
		}

	case instructions.Las:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.Status.SetZN(v)

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// write the modified value of RMW instructions. the accumulator versions
	// of the shift instructions have already updated the register
	if defn.Effect == instructions.RMW && defn.AddressingMode != instructions.Accumulator {
		// +1 cycle
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// rmwRegister returns the register to be used by the shift and rotate
// instructions. the accumulator is used for the accumulator addressing mode.
// otherwise the internal acc8 register is loaded with the value
func (mc *CPU) rmwRegister(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc8.Load(value)
	return &mc.acc8
}

// compare sets the status flags as though value had been subtracted from reg
func (mc *CPU) compare(reg uint8, value uint8) {
	mc.acc8.Load(reg)
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.Status.SetZN(mc.acc8.Value())
}

// unstableStore is the final cycle of SHA, SHX, SHY and TAS. the stored value
// is ANDed with the high byte of the base address plus one. if indexing
// crossed a page then the high byte of the address is replaced with the value
func (mc *CPU) unstableStore(op operand, v uint8) error {
	v &= uint8(op.base>>8) + 1

	address := op.address
	if op.crossed {
		mc.LastResult.CPUBug = execution.UnstableHighByteBug
		address = (uint16(v) << 8) | (address & 0x00ff)
	}

	// +1 cycle
	return mc.write8Bit(address, v)
}

// branch moves the PC by offset if flag is true. a taken branch takes an
// additional cycle. a branch that crosses a page takes a further cycle
func (mc *CPU) branch(flag bool, offset uint16) error {
	// the offset is an 8bit signed value
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	mc.LastResult.BranchSuccess = flag
	if !flag {
		return nil
	}

	// +1 cycle
	err := mc.dummyRead(mc.PC.Address())
	if err != nil {
		return err
	}

	oldPC := mc.PC.Address()
	target := oldPC + offset

	if oldPC&0xff00 != target&0xff00 {
		mc.LastResult.PageFault = true

		// the low byte of the PC is updated before the high byte. the read on
		// this cycle is of the address with the unfixed high byte
		// +1 cycle
		err = mc.dummyRead((oldPC & 0xff00) | (target & 0x00ff))
		if err != nil {
			return err
		}
	}

	mc.PC.Load(target)

	return nil
}
