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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	rtest "github.com/jetsetilly/gopher2a03/hardware/cpu/registers/test"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	rtest.EquateRegisters(t, pc, 127)
	pc.Add(2)
	rtest.EquateRegisters(t, pc, 129)
	pc.Increment()
	rtest.EquateRegisters(t, pc, 130)

	// wrap at 16 bits
	pc.Load(0xffff)
	test.ExpectSuccess(t, pc.Add(2))
	rtest.EquateRegisters(t, pc, 0x0001)
	test.ExpectEquality(t, pc.String(), "0001")
}
