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

package instructions

// Category of an instruction describes its effect.
type Category int

// List of effect categories.
const (
	Read Category = iota
	Write
	RMW

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

var categories = map[string]Category{
	"READ":       Read,
	"WRITE":      Write,
	"RMW":        RMW,
	"FLOW":       Flow,
	"SUBROUTINE": Subroutine,
	"INTERRUPT":  Interrupt,
}

// Status indicates whether an opcode is part of the documented instruction
// set.
type Status int

// List of opcode statuses.
const (
	Documented Status = iota

	// undocumented opcodes that behave the same on every 2A03
	Undocumented

	// undocumented opcodes whose results depend on analogue effects. the
	// emulation uses the commonly observed values
	Unstable

	// opcodes that halt the CPU
	Jam
)

func (s Status) String() string {
	switch s {
	case Documented:
		return "documented"
	case Undocumented:
		return "undocumented"
	case Unstable:
		return "unstable"
	case Jam:
		return "jam"
	}
	return "unknown status"
}

var statuses = map[string]Status{
	"DOCUMENTED":   Documented,
	"UNDOCUMENTED": Undocumented,
	"UNSTABLE":     Unstable,
	"JAM":          Jam,
}
