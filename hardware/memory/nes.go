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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/logger"
)

// sizes of the memory areas backed by storage
const (
	ramSize     = 0x0800
	cartRAMSize = 0x2000
	prgBankSize = 0x4000
)

// NES implements the CPU memory map of the NES with the simplest cartridge
// arrangement (NROM). The PRG ROM is either 16k, in which case it is mirrored
// at $c000, or 32k.
type NES struct {
	ram     [ramSize]uint8
	cartRAM [cartRAMSize]uint8
	prg     []uint8

	devices []attachment

	// the last value on the data bus. returned when reading an address that
	// nothing responds to
	dataBus uint8
}

// NewNES is the preferred method of initialisation for the NES type.
func NewNES(prg []uint8) (*NES, error) {
	if len(prg) != prgBankSize && len(prg) != prgBankSize*2 {
		return nil, curated.Errorf(BadPRGSize, len(prg))
	}

	mem := &NES{
		prg: make([]uint8, len(prg)),
	}
	copy(mem.prg, prg)

	return mem, nil
}

func (mem *NES) String() string {
	return fmt.Sprintf("NES memory: %dk PRG ROM, %d devices", len(mem.prg)/1024, len(mem.devices))
}

// Attach a device to the range of addresses. The range must be entirely
// within the PPU area or the APU/IO and test areas and must not overlap the
// range of another device.
func (mem *NES) Attach(dev Device, origin uint16, memtop uint16) error {
	att := attachment{dev: dev, origin: origin, memtop: memtop}

	switch {
	case origin >= memorymap.OriginPPU && memtop <= memorymap.OriginPPU|memorymap.MaskPPU:
	case origin >= memorymap.OriginAPU && memtop <= memorymap.MemtopTest:
	default:
		return curated.Errorf(DeviceBadRange, dev.Label(), origin, memtop)
	}
	if origin > memtop {
		return curated.Errorf(DeviceBadRange, dev.Label(), origin, memtop)
	}

	for _, d := range mem.devices {
		if d.overlaps(att) {
			return curated.Errorf(DeviceOverlap, dev.Label(), d.dev.Label())
		}
	}

	mem.devices = append(mem.devices, att)

	return nil
}

func (mem *NES) device(address uint16) (Device, bool) {
	for _, d := range mem.devices {
		if d.contains(address) {
			return d.dev, true
		}
	}
	return nil, false
}

// Read is an implementation of cpubus.Memory.
func (mem *NES) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.dataBus = mem.ram[ma]
	case memorymap.PPU, memorymap.APU, memorymap.Test:
		if dev, ok := mem.device(ma); ok {
			mem.dataBus = dev.Read(ma)
		}
	case memorymap.CartridgeRAM:
		mem.dataBus = mem.cartRAM[ma-memorymap.OriginCartRAM]
	case memorymap.CartridgeROM:
		mem.dataBus = mem.prg[int(ma-memorymap.OriginCartROM)%len(mem.prg)]
	}

	return mem.dataBus
}

// Write is an implementation of cpubus.Memory.
func (mem *NES) Write(address uint16, data uint8) {
	mem.dataBus = data

	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.ram[ma] = data
	case memorymap.PPU, memorymap.APU, memorymap.Test:
		if dev, ok := mem.device(ma); ok {
			dev.Write(ma, data)
		}
	case memorymap.CartridgeRAM:
		mem.cartRAM[ma-memorymap.OriginCartRAM] = data
	case memorymap.CartridgeROM:
		logger.Logf(logger.Allow, "memory", "write of %#02x to cartridge ROM (%#04x) ignored", data, address)
	}
}

// Peek returns the value at the address without affecting the state of the
// memory or any attached device. Addresses that are not backed by storage
// return zero and false.
func (mem *NES) Peek(address uint16) (uint8, bool) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.ram[ma], true
	case memorymap.CartridgeRAM:
		return mem.cartRAM[ma-memorymap.OriginCartRAM], true
	case memorymap.CartridgeROM:
		return mem.prg[int(ma-memorymap.OriginCartROM)%len(mem.prg)], true
	}

	return 0, false
}

// DataBus returns the last value seen on the data bus.
func (mem *NES) DataBus() uint8 {
	return mem.dataBus
}
