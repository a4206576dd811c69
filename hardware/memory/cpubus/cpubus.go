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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Implementations map the 16-bit address to the correct device,
// resolving mirrors and unmapped (open bus) addresses themselves. Every
// address always returns some byte.
//
// Reads may have side effects (PPU status latches, for example) so the CPU
// issues exactly the reads the hardware would, in the same order.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
