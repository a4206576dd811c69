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

// Device is the interface to hardware that responds to reads and writes of
// register addresses. The PPU and APU of the NES are examples.
//
// For devices attached to the PPU area the address is always the primary
// address, in the range $2000 to $2007.
type Device interface {
	Label() string
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// attachment records the address range a device responds to.
type attachment struct {
	dev    Device
	origin uint16
	memtop uint16
}

func (a attachment) contains(address uint16) bool {
	return address >= a.origin && address <= a.memtop
}

func (a attachment) overlaps(b attachment) bool {
	return a.origin <= b.memtop && b.origin <= a.memtop
}
