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

package registers

import (
	"strings"
)

// bit patterns of the status register
const (
	Sign             = uint8(0x80)
	Overflow         = uint8(0x40)
	Unused           = uint8(0x20)
	Break            = uint8(0x10)
	DecimalMode      = uint8(0x08)
	InterruptDisable = uint8(0x04)
	Zero             = uint8(0x02)
	Carry            = uint8(0x01)
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
//
// The unused bit is not stored. It always reads as one.
//
// The break flag is not a physical flag in the CPU. It is stored so that a
// value loaded with Load() can be reproduced exactly by Value() but values
// pulled from the stack with LoadFromStack() always clear it.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the flags in NV-BDIZC order. Upper case indicates the flag
// is set.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(v bool, set rune, unset rune) {
		if v {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// SetZN sets the zero and sign flags according to the value.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&Sign == Sign
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister into an 8 bit value. The unused bit is
// always set.
func (sr StatusRegister) Value() uint8 {
	v := Unused

	if sr.Sign {
		v |= Sign
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.Break {
		v |= Break
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// Load sets every flag, including the break flag, from an 8 bit value.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Sign == Sign
	sr.Overflow = v&Overflow == Overflow
	sr.Break = v&Break == Break
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}

// LoadFromStack sets the flags from a value pulled from the stack. The break
// bit of the value is discarded.
func (sr *StatusRegister) LoadFromStack(v uint8) {
	sr.Load(v &^ Break)
}
