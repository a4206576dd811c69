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

package execution

// Interrupt identifies the interrupt sequence performed by the CPU.
type Interrupt int

// List of interrupt sequences.
const (
	NoInterrupt Interrupt = iota
	Reset
	NMI
	IRQ

	// software interrupt caused by the BRK instruction
	BRK
)

func (i Interrupt) String() string {
	switch i {
	case NoInterrupt:
		return ""
	case Reset:
		return "RESET"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	case BRK:
		return "BRK"
	}
	return "unknown interrupt"
}

// InterruptCycles is the number of cycles taken by every interrupt sequence.
const InterruptCycles = 7
