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

import (
	"github.com/jetsetilly/gopher2a03/curated"
)

// NotSupported is the error pattern returned by Decode().
const NotSupported = "instructions: %s opcode (%#02x) not supported"

// Decode returns the definition for the opcode. An error is returned if the
// opcode jams the CPU, or if the opcode is not documented and the
// undocumented argument is false. The definition is returned even when there
// is an error.
func Decode(opcode uint8, undocumented bool) (*Definition, error) {
	defn := definitions[opcode]

	switch defn.Status {
	case Documented:
		return defn, nil
	case Undocumented, Unstable:
		if undocumented {
			return defn, nil
		}
	}

	return defn, curated.Errorf(NotSupported, defn.Status, opcode)
}
