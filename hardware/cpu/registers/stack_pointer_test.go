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

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Address(), 0x01fd)

	test.ExpectEquality(t, sp.Push(), 0x01fd)
	rtest.EquateRegisters(t, sp, 0xfc)
	test.ExpectEquality(t, sp.Pop(), 0x01fd)
	rtest.EquateRegisters(t, sp, 0xfd)
}

func TestStackPointerWrap(t *testing.T) {
	// push from $00 wraps to $ff
	sp := registers.NewStackPointer(0x00)
	test.ExpectEquality(t, sp.Push(), 0x0100)
	rtest.EquateRegisters(t, sp, 0xff)

	// pop from $ff wraps to $00
	test.ExpectEquality(t, sp.Pop(), 0x0100)
	rtest.EquateRegisters(t, sp, 0x00)

	sp.Load(0xff)
	test.ExpectEquality(t, sp.Pop(), 0x0100)
	rtest.EquateRegisters(t, sp, 0x00)

	sp.Decrement()
	rtest.EquateRegisters(t, sp, 0xff)
}
