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

package test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between two instances of a
// register type. The value is an int, or for the StatusRegister, a string
// of the form returned by StatusRegister.String().
func EquateRegisters(t *testing.T, value, expectedValue any) {
	t.Helper()

	switch r := value.(type) {
	default:
		t.Errorf("equate registers: unhandled type (%T)", value)

	case registers.Register:
		EquateRegisters(t, &r, expectedValue)

	case *registers.Register:
		v, ok := expectedValue.(int)
		if !ok {
			t.Errorf("equate registers: Register can only be compared with int (not %T)", expectedValue)
			return
		}
		if int(r.Value()) != v {
			t.Errorf("equate registers: %s is %#02x (wanted %#02x)", r.Label(), r.Value(), v)
		}

	case registers.ProgramCounter:
		EquateRegisters(t, &r, expectedValue)

	case *registers.ProgramCounter:
		v, ok := expectedValue.(int)
		if !ok {
			t.Errorf("equate registers: ProgramCounter can only be compared with int (not %T)", expectedValue)
			return
		}
		if int(r.Address()) != v {
			t.Errorf("equate registers: PC is %#04x (wanted %#04x)", r.Address(), v)
		}

	case registers.StackPointer:
		EquateRegisters(t, &r, expectedValue)

	case *registers.StackPointer:
		v, ok := expectedValue.(int)
		if !ok {
			t.Errorf("equate registers: StackPointer can only be compared with int (not %T)", expectedValue)
			return
		}
		if int(r.Value()) != v {
			t.Errorf("equate registers: SP is %#02x (wanted %#02x)", r.Value(), v)
		}

	case registers.StatusRegister:
		EquateRegisters(t, &r, expectedValue)

	case *registers.StatusRegister:
		switch v := expectedValue.(type) {
		case int:
			if int(r.Value()) != v {
				t.Errorf("equate registers: P is %#02x (wanted %#02x)", r.Value(), v)
			}
		case string:
			if r.String() != v {
				t.Errorf("equate registers: P is %s (wanted %s)", r.String(), v)
			}
		default:
			t.Errorf("equate registers: StatusRegister can only be compared with int or string (not %T)", expectedValue)
		}
	}
}
