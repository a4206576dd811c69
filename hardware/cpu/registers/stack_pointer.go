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

package registers

import (
	"fmt"
)

// the page in memory the stack occupies
const stackPage = uint16(0x0100)

// StackPointer is the SP register. The value is an offset into the stack page.
// The stack grows downwards and wraps within the page in both directions.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the offset into the stack page.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in memory the SP points to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load a new offset into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to write the pushed value to and then decrements
// the SP.
func (sp *StackPointer) Push() uint16 {
	addr := sp.Address()
	sp.value--
	return addr
}

// Pop increments the SP and returns the address to read the popped value
// from.
func (sp *StackPointer) Pop() uint16 {
	sp.value++
	return sp.Address()
}

// Decrement the SP without producing an address. The reset sequence moves
// the SP without writing to the stack.
func (sp *StackPointer) Decrement() {
	sp.value--
}
