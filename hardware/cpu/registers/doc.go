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

// Package registers implements the register types found in the 2A03: the
// 8 bit Register used for A, X and Y, the ProgramCounter, the StackPointer
// and the StatusRegister.
//
// Arithmetic and logical operations do not affect the status register. The
// CPU updates the flags explicitly from the results of the operations. For
// example:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.SetZN(a.Value())
//
// In this case, the zero flag in the status register will be false and the
// sign flag will be true.
package registers
