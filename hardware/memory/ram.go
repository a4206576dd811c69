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
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
)

// RAM is a flat 64k of memory. Every address can be read and written.
type RAM struct {
	memory [0x10000]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Read is an implementation of cpubus.Memory.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address] = data
}

// Load copies data into memory starting at the origin. An error is returned
// if the data does not fit.
func (ram *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(ram.memory) {
		return curated.Errorf(LoadOverflow, len(data), origin)
	}
	copy(ram.memory[origin:], data)
	return nil
}

// SetVector writes the address to the vector, low byte first.
func (ram *RAM) SetVector(vector uint16, address uint16) {
	ram.memory[vector] = uint8(address)
	ram.memory[vector+1] = uint8(address >> 8)
}

// Dump returns the memory between the two addresses (inclusive) in rows of
// sixteen bytes.
func (ram *RAM) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	for a := uint32(from) &^ 0x0f; a <= uint32(to); a += 16 {
		s.WriteString(fmt.Sprintf("%04x |", a))
		for x := range uint32(16) {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(a+x)&0xffff]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
