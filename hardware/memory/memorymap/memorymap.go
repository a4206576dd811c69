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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU/IO"
	case Test:
		return "Test"
	case Expansion:
		return "Expansion"
	case CartridgeRAM:
		return "Cartridge RAM"
	case CartridgeROM:
		return "Cartridge ROM"
	}

	return "undefined"
}

// The different memory areas in the NES
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Test
	Expansion
	CartridgeRAM
	CartridgeROM
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x3fff)
	OriginAPU       = uint16(0x4000)
	MemtopAPU       = uint16(0x4017)
	OriginTest      = uint16(0x4018)
	MemtopTest      = uint16(0x401f)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x5fff)
	OriginCartRAM   = uint16(0x6000)
	MemtopCartRAM   = uint16(0x7fff)
	OriginCartROM   = uint16(0x8000)
	MemtopCartROM   = uint16(0xffff)
)

// The 2k of internal RAM is mirrored four times and the eight PPU registers
// are mirrored throughout the PPU area. The masks keep only the relevant bits
// of an address in those areas.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return OriginPPU | (address & MaskPPU), PPU
	case address <= MemtopAPU:
		return address, APU
	case address <= MemtopTest:
		return address, Test
	case address <= MemtopExpansion:
		return address, Expansion
	case address <= MemtopCartRAM:
		return address, CartridgeRAM
	}
	return address, CartridgeROM
}

// IsArea returns true if the address is in the specified area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
