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

package cpu

// Push writes the value to the stack page and decrements the stack pointer.
// Unlike the stack operations of an instruction, no cycles are consumed.
func (mc *CPU) Push(value uint8) {
	mc.mem.Write(mc.SP.Push(), value)
}

// Pop increments the stack pointer and returns the value from the stack
// page. Unlike the stack operations of an instruction, no cycles are
// consumed.
func (mc *CPU) Pop() uint8 {
	return mc.mem.Read(mc.SP.Pop())
}
