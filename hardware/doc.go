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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// CPU and the memory it is connected to.
//
// The Console type is the root of the emulation. It contains the CPU, the
// memory, and optionally a frame timer that raises NMI once per frame in the
// place of a PPU.
//
// The hardware package also provides the Run() function. This runs the
// emulation as quickly as possible until the continue check function says
// otherwise.
package hardware
