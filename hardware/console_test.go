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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/clocks"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/test"
)

func newConsole(t *testing.T) *hardware.Console {
	t.Helper()

	mem := memory.NewRAM()
	test.DemandSuccess(t, mem.Load(0x8000, []uint8{
		0xa9, 0x01, // LDA #$01
		0x4c, 0x02, 0x80, // JMP $8002
	}))
	test.DemandSuccess(t, mem.Load(0x9000, []uint8{
		0xe8, // INX
		0x40, // RTI
	}))
	mem.SetVector(cpubus.Reset, 0x8000)
	mem.SetVector(cpubus.NMI, 0x9000)

	con, err := hardware.NewConsole(nil, mem)
	test.DemandSuccess(t, err)

	return con
}

func TestConsoleTrap(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.PowerOn())
	test.ExpectEquality(t, con.CPU.TotalCycles, uint64(7))
	test.ExpectFailure(t, con.IsTrapped())

	var steps int
	err := con.Run(func() (hardware.RunState, error) {
		steps++
		if con.IsTrapped() {
			return hardware.Ending, nil
		}
		return hardware.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, steps, 2)
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x01))
	test.ExpectEquality(t, con.CPU.TotalCycles, uint64(12))
}

func TestConsoleStepCallback(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.PowerOn())

	var cycles int
	test.ExpectSuccess(t, con.Step(func() error {
		cycles++
		return nil
	}))
	test.ExpectEquality(t, cycles, 2)

	// a nil callback is allowed
	test.ExpectSuccess(t, con.Step(nil))
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8002))

	// errors from the callback are returned
	err := con.Step(func() error {
		return curated.Errorf("test: %v", "stop")
	})
	test.ExpectSuccess(t, curated.Is(err, "test: %v"))

	// the CPU is stuck mid-instruction until it is powered on again
	err = con.Step(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.MidInstruction))
	test.ExpectSuccess(t, con.PowerOn())
	test.ExpectSuccess(t, con.Step(nil))
}

func TestConsoleFrameTimer(t *testing.T) {
	con := newConsole(t)
	con.AttachFrameTimer(clocks.SpecNTSC)
	test.DemandSuccess(t, con.PowerOn())

	err := con.RunForCycles(clocks.FrameNTSC*2+100, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.Frame.Frames(), 2)

	// the NMI handler increments X once per frame
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(2))
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8002))
}

func TestConsoleReset(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.PowerOn())
	test.DemandSuccess(t, con.RunForCycles(10, nil))
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8002))

	con.Reset()
	test.ExpectSuccess(t, con.Step(nil))
	test.ExpectEquality(t, con.CPU.LastResult.Cycles, 7)
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8000))
}

func TestConsoleSnapshot(t *testing.T) {
	con := newConsole(t)
	con.AttachFrameTimer(clocks.SpecPAL)
	test.DemandSuccess(t, con.PowerOn())

	s := con.Snapshot()
	test.DemandSuccess(t, con.RunForCycles(clocks.FramePAL+50, nil))
	test.ExpectEquality(t, con.Frame.Frames(), 1)
	x := con.CPU.X.Value()
	pc := con.CPU.PC.Address()
	cycles := con.CPU.TotalCycles

	test.DemandSuccess(t, con.Plumb(s))
	test.ExpectEquality(t, con.Frame.Frames(), 0)
	test.ExpectEquality(t, con.CPU.TotalCycles, uint64(7))

	test.DemandSuccess(t, con.RunForCycles(clocks.FramePAL+50, nil))
	test.ExpectEquality(t, con.Frame.Frames(), 1)
	test.ExpectEquality(t, con.CPU.X.Value(), x)
	test.ExpectEquality(t, con.CPU.PC.Address(), pc)
	test.ExpectEquality(t, con.CPU.TotalCycles, cycles)

	test.ExpectFailure(t, con.Plumb(nil))
}
