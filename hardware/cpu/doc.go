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

// Package cpu emulates the Ricoh 2A03, the 6502 derivative found in the NES.
// Like all 8-bit processors of the era, the 2A03 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// The 2A03 has no decimal mode. The D flag can be set and cleared but ADC and
// SBC always perform binary arithmetic.
//
// The CPU type requires an implementation of the cpubus.Memory interface.
// Every cycle of an instruction is one access of that memory, including the
// dummy reads and writes performed by the real hardware.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction. This is how the rest of the NES hardware is
// kept in step with the CPU. The PPU for example, runs three times for every
// CPU cycle.
//
//	mc := cpu.NewCPU(nil, mem)
//	err := mc.PowerOn()
//
//	for err == nil {
//		err = mc.ExecuteInstruction(func() error {
//			ppu.Step()
//			ppu.Step()
//			ppu.Step()
//			return nil
//		})
//	}
//
// The Step() function is a convenience for when no callback is required. It
// returns the number of cycles consumed.
//
// Interrupts are signalled with SetInterruptLine() and RequestReset(). The
// lines are sampled at the beginning of ExecuteInstruction() and, if an
// interrupt is due, the interrupt sequence is performed instead of the next
// instruction. The LastResult field describes what happened during the most
// recent call to ExecuteInstruction(), including the interrupt sequence that
// was performed if any.
//
// The state of the CPU can be saved and restored with Snapshot() and
// Restore().
package cpu
