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

package functional_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jetsetilly/gopher2a03/hardware/clocks"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/test"
)

// these addresses are specific to the functional test binary
const (
	programOrigin  = uint16(0x0400)
	loadAddress    = uint16(0x0000)
	defaultSuccess = uint16(0x3469)
)

// the test takes a little under 100 million cycles. anything more means the
// program has gone wrong without hitting a trap
const cycleLimit = 200000000

func successAddress(t *testing.T) uint16 {
	t.Helper()
	s, ok := os.LookupEnv("FUNCTIONAL_SUCCESS")
	if !ok {
		return defaultSuccess
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		t.Fatalf("FUNCTIONAL_SUCCESS: %v", err)
	}
	return uint16(v)
}

func TestFunctional(t *testing.T) {
	bin, err := os.ReadFile(filepath.Join("testdata", "6502_functional_test.bin"))
	if err != nil {
		t.Skipf("functional test binary not available: %v", err)
	}

	success := successAddress(t)

	mem := memory.NewRAM()
	test.DemandSuccess(t, mem.Load(loadAddress, bin))
	mem.SetVector(cpubus.Reset, programOrigin)

	mc := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, mc.PowerOn())

	// history of executed instructions to be shown in case of failure
	var history [15]string

	startTime := time.Now()

	for mc.TotalCycles < cycleLimit {
		addr := mc.PC.Address()

		err := mc.ExecuteInstruction(cpu.NilCycleCallback)
		if err != nil {
			t.Fatal(err)
		}

		copy(history[:], history[1:])
		history[len(history)-1] = mc.LastResult.String()

		// "Loop on program counter determines error or successful completion of test"
		if mc.PC.Address() == addr {
			break
		}
	}

	if mc.PC.Address() != success {
		for _, h := range history {
			t.Log(h)
		}
		t.Log(mc.String())
		t.Log(mem.Dump(cpubus.StackPage|uint16(mc.SP.Value()), cpubus.StackPage|0xff))
		t.Fatalf("functional test trapped at %#04x", mc.PC.Address())
	}

	frames := int(mc.TotalCycles) / clocks.FrameNTSC
	elapsed := time.Since(startTime).Seconds()
	if elapsed > 0 {
		t.Logf("approx FPS: %.0f", float64(frames)/elapsed)
	}
	t.Logf("cycles: %d (%d NTSC frames)", mc.TotalCycles, frames)
}
