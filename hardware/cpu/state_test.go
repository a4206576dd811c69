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

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	rtest "github.com/jetsetilly/gopher2a03/hardware/cpu/registers/test"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestSnapshotRestore(t *testing.T) {
	mc, mem := newTestCPU(t)
	mem.putInstructions(origin,
		0xa2, 0x05, // LDX #$05
		0xca,       // DEX
		0xd0, 0xfd, // BNE -3
		0x58, // CLI
		0xea, // NOP
	)
	mem.putInstructions(irqHandler, 0xea) // NOP

	step(t, mc, 2)
	mc.SetInterruptLine(cpu.IRQ, true)
	s := mc.Snapshot()

	run := func() []int {
		var cycles []int
		for range 14 {
			c, err := mc.Step()
			test.DemandSuccess(t, err)
			cycles = append(cycles, c)
		}
		return cycles
	}

	first := run()
	after := mc.Snapshot()

	test.DemandSuccess(t, mc.Restore(s))
	test.ExpectEquality(t, mc.Snapshot(), s)
	rtest.EquateRegisters(t, mc.X, 0x05)

	second := run()
	test.DemandEquality(t, len(second), len(first))
	for i := range first {
		test.ExpectEquality(t, second[i], first[i], "step", i)
	}
	test.ExpectEquality(t, mc.Snapshot(), after)

	// the IRQ was serviced in both runs
	rtest.EquateRegisters(t, mc.PC, int(irqHandler)+1)
}

func TestRestoreMidInstruction(t *testing.T) {
	mc, mem := newTestCPU(t)
	mem.putInstructions(origin, 0xea)

	s := mc.Snapshot()
	err := mc.ExecuteInstruction(func() error {
		return mc.Restore(s)
	})
	test.ExpectSuccess(t, curated.Is(err, cpu.MidInstruction))
}

func TestStateFields(t *testing.T) {
	mc, _ := newTestCPU(t)
	mc.SetInterruptLine(cpu.NMI, true)
	mc.RequestReset()

	s := mc.Snapshot()
	test.ExpectEquality(t, s.PC, origin)
	test.ExpectEquality(t, s.SP, uint8(0xfd))
	test.ExpectEquality(t, s.NMILine, true)
	test.ExpectEquality(t, s.NMIPending, true)
	test.ExpectEquality(t, s.ResetPending, true)
	test.ExpectEquality(t, s.IRQLine, false)
	test.ExpectEquality(t, s.TotalCycles, uint64(7))
	test.ExpectEquality(t, s.Status.InterruptDisable, true)
}
