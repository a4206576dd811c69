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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	rtest "github.com/jetsetilly/gopher2a03/hardware/cpu/registers/test"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestUndocumentedCombined(t *testing.T) {
	mc, mem := newTestCPU(t)
	mem.data[0x10] = 0x80
	mem.data[0x12] = 0x01
	mem.data[0x13] = 0x0f
	mem.data[0x14] = 0x81
	mem.data[0x15] = 0x01
	mem.data[0x16] = 0x02
	mem.data[0x17] = 0x03
	mem.putInstructions(origin,
		0xa7, 0x10, // LAX $10
		0x87, 0x11, // SAX $11
		0xc7, 0x12, // DCP $12
		0xe7, 0x13, // ISC $13
		0x07, 0x14, // SLO $14
		0x27, 0x15, // RLA $15
		0x47, 0x16, // SRE $16
		0x67, 0x17, // RRA $17
	)

	step(t, mc, 3)
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateRegisters(t, mc.X, 0x80)
	test.ExpectEquality(t, mc.Status.Sign, true)

	mc.A.Load(0xf0)
	mc.X.Load(0x3c)
	step(t, mc, 3)
	test.ExpectEquality(t, mem.data[0x11], uint8(0x30))

	mc.A.Load(0x00)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x12], uint8(0x00))
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)

	mc.A.Load(0x20)
	mc.Status.Carry = true
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x13], uint8(0x10))
	rtest.EquateRegisters(t, mc.A, 0x10)
	test.ExpectEquality(t, mc.Status.Carry, true)

	mc.A.Load(0x01)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x14], uint8(0x02))
	rtest.EquateRegisters(t, mc.A, 0x03)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// carry is still set from SLO
	mc.A.Load(0xff)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x15], uint8(0x03))
	rtest.EquateRegisters(t, mc.A, 0x03)
	test.ExpectEquality(t, mc.Status.Carry, false)

	mc.A.Load(0x00)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x16], uint8(0x01))
	rtest.EquateRegisters(t, mc.A, 0x01)
	test.ExpectEquality(t, mc.Status.Carry, false)

	// ROR of 0x03 with carry clear is 0x01 with carry set. the carry is
	// then added to the accumulator
	mc.A.Load(0x10)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x17], uint8(0x01))
	rtest.EquateRegisters(t, mc.A, 0x12)
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func TestUndocumentedImmediate(t *testing.T) {
	mc, mem := newTestCPU(t)
	mem.putInstructions(origin,
		0x0b, 0x80, // ANC #$80
		0x4b, 0x03, // ALR #$03
		0x6b, 0xff, // ARR #$ff
		0xcb, 0x02, // AXS #$02
		0x8b, 0x0f, // ANE #$0f
		0xab, 0x33, // LXA #$33
		0xeb, 0x01, // SBC #$01
		0x80, 0xff, // NOP #$ff
	)

	mc.A.Load(0xff)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x80)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Carry, true)

	mc.A.Load(0xff)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x01)
	test.ExpectEquality(t, mc.Status.Carry, true)

	mc.A.Load(0xc0)
	mc.Status.Carry = false
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x60)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Overflow, false)

	mc.A.Load(0x0f)
	mc.X.Load(0x07)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.X, 0x05)
	test.ExpectEquality(t, mc.Status.Carry, true)

	mc.A.Load(0x00)
	mc.X.Load(0xff)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x0e)

	mc.A.Load(0x00)
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x22)
	rtest.EquateRegisters(t, mc.X, 0x22)

	mc.A.Load(0x10)
	mc.Status.Carry = true
	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x0f)
	test.ExpectEquality(t, mc.Status.Carry, true)

	step(t, mc, 2)
	rtest.EquateRegisters(t, mc.A, 0x0f)
	rtest.EquateRegisters(t, mc.PC, 0x8010)
}

func TestUnstableStores(t *testing.T) {
	mc, mem := newTestCPU(t)
	mem.data[0x1234] = 0xf3
	mem.putInstructions(origin,
		0x9e, 0xf0, 0x10, // SHX $10f0,Y
		0x9e, 0x00, 0x10, // SHX $1000,Y
		0x9b, 0x00, 0x20, // TAS $2000,Y
		0xbb, 0x34, 0x12, // LAS $1234,Y
	)

	// page crossed. high byte of the address is replaced by the value
	mc.X.Load(0x01)
	mc.Y.Load(0x20)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x0110], uint8(0x01))
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.UnstableHighByteBug)

	mc.X.Load(0xff)
	mc.Y.Load(0x01)
	step(t, mc, 5)
	test.ExpectEquality(t, mem.data[0x1001], uint8(0x11))
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	mc.A.Load(0xff)
	mc.X.Load(0x0f)
	mc.Y.Load(0x00)
	step(t, mc, 5)
	rtest.EquateRegisters(t, mc.SP, 0x0f)
	test.ExpectEquality(t, mem.data[0x2000], uint8(0x01))

	step(t, mc, 4)
	rtest.EquateRegisters(t, mc.A, 0x03)
	rtest.EquateRegisters(t, mc.X, 0x03)
	rtest.EquateRegisters(t, mc.SP, 0x03)
}
