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

// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detailed information about each instruction or
// interrupt sequence executed by the CPU.
//
// The Result type is updated cycle by cycle during execution and is only
// complete when the Final field is true. Result.IsValid() checks a final
// result for consistency with the instruction definition and is useful when
// testing the CPU.
//
// Result.String() and Result.Disassembly() format the result for trace logs.
package execution
