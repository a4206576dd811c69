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
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/test"
)

// the address of the first instruction after power on
const origin = uint16(0x8000)

// interrupt handlers
const (
	nmiHandler = uint16(0x9000)
	irqHandler = uint16(0xa000)
)

type access struct {
	address uint16
	data    uint8
	write   bool
}

func (a access) String() string {
	if a.write {
		return fmt.Sprintf("write %04x %02x", a.address, a.data)
	}
	return fmt.Sprintf("read %04x %02x", a.address, a.data)
}

func read(address uint16, data uint8) access {
	return access{address: address, data: data}
}

func write(address uint16, data uint8) access {
	return access{address: address, data: data, write: true}
}

// mockMem is a flat 64k memory that records every access
type mockMem struct {
	data [0x10000]uint8
	log  []access
}

func (mem *mockMem) Read(address uint16) uint8 {
	v := mem.data[address]
	mem.log = append(mem.log, read(address, v))
	return v
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address] = data
	mem.log = append(mem.log, write(address, data))
}

// putInstructions writes the bytes to memory at the address and returns the
// address following the last byte
func (mem *mockMem) putInstructions(address uint16, bytes ...uint8) uint16 {
	for _, b := range bytes {
		mem.data[address] = b
		address++
	}
	return address
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.data[vector] = uint8(address)
	mem.data[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) clearLog() {
	mem.log = mem.log[:0]
}

// expectLog compares the recorded accesses with the expected accesses
func (mem *mockMem) expectLog(t *testing.T, expected ...access) {
	t.Helper()
	if !test.ExpectEquality(t, len(mem.log), len(expected), "number of bus accesses") {
		t.Logf("bus accesses: %v", mem.log)
		return
	}
	for i := range expected {
		test.ExpectEquality(t, mem.log[i], expected[i], "bus access", i)
	}
}

func newMockMem() *mockMem {
	mem := &mockMem{}
	mem.putVector(cpubus.Reset, origin)
	mem.putVector(cpubus.NMI, nmiHandler)
	mem.putVector(cpubus.IRQ, irqHandler)
	return mem
}

// newTestCPU returns a CPU that has been powered on with the PC at origin
func newTestCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, mc.PowerOn())
	mem.clearLog()
	return mc, mem
}

// step executes one instruction and checks the number of cycles and the
// validity of the result
func step(t *testing.T, mc *cpu.CPU, expectedCycles int) {
	t.Helper()
	cycles, err := mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, expectedCycles, mc.LastResult.String())
	test.ExpectSuccess(t, mc.LastResult.IsValid(), mc.LastResult.String())
}
