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

// Package instructions defines the table of instruction definitions for the
// 2A03. The table is total: every one of the 256 opcodes has a definition,
// including the undocumented opcodes and the opcodes that jam the CPU.
//
// The table is built once, when the package is initialised, from the
// instructions.csv file embedded in the package. It is never modified after
// that.
//
// Decode() looks up the definition for an opcode and decides whether the
// opcode can be executed.
package instructions
