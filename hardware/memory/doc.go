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

// Package memory implements the memory seen by the CPU through the
// cpubus.Memory interface. There are two implementations.
//
// RAM is a flat 64k of read/write memory. It is useful for testing and for
// running programs that have been assembled for a bare 6502.
//
// NES is the memory map of the NES. It is divided into areas, as defined in
// the memorymap package.
//
//	                           ---- RAM (2k, mirrored to $1fff)
//	                          |
//	                          |---- PPU registers ---- Device
//	                          |
//	    CPU ---- cpu bus ---- *---- APU/IO registers ---- Device
//	                          |
//	                          |---- Cartridge RAM (8k)
//	                          |
//	                           -<-- Cartridge ROM (16k or 32k)
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The arrow pointing away from the Cartridge ROM
// indicates that the CPU can only read from it.
//
// Hardware that responds to the register addresses is attached with the
// Attach() function. Reading an address that nothing responds to returns the
// last value seen on the data bus (the open bus).
package memory
