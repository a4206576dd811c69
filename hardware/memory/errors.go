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

// Error patterns returned by the memory package.
const (
	LoadOverflow   = "memory: data of %d bytes at %#04x overflows memory"
	BadPRGSize     = "memory: PRG ROM of %d bytes is not supported"
	DeviceOverlap  = "memory: device %s overlaps existing device %s"
	DeviceBadRange = "memory: device %s range (%#04x to %#04x) is not in a register area"
)
