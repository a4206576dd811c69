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

// Package clocks defines the constant values that define the speed of the CPU
// in the different NES consoles, and the number of CPU cycles in a single video
// frame.
//
// The FrameTimer type uses the frame length to pulse the NMI line of the CPU
// once per frame. This stands in for the PPU, which raises NMI at the start
// of the vertical blank.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks
