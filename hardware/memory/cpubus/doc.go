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

// Package cpubus defines the contract between the CPU and the rest of the
// system. The CPU sees the whole machine (RAM, cartridge, PPU and APU
// registers) through the Memory interface and nothing else.
//
// The package also names the fixed addresses the CPU itself knows about: the
// interrupt vectors and the stack page.
package cpubus
