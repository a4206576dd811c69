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

package clocks

// CPU clock speeds in MHz.
const (
	NTSC  = 1.789773
	PAL   = 1.662607
	Dendy = 1.773448
)

// Number of CPU cycles in a single frame, rounded down. The PPU runs at three
// times the CPU clock on NTSC and at 3.2 times on PAL.
const (
	FrameNTSC  = 29780
	FramePAL   = 33247
	FrameDendy = 35464
)

// Spec identifies one of the NES console types.
type Spec string

// List of valid Spec values.
const (
	SpecNTSC  Spec = "NTSC"
	SpecPAL   Spec = "PAL"
	SpecDendy Spec = "DENDY"
)

// Clock returns the CPU clock speed for the Spec, in MHz. Unknown specs are
// treated as NTSC.
func (s Spec) Clock() float64 {
	switch s {
	case SpecPAL:
		return PAL
	case SpecDendy:
		return Dendy
	}
	return NTSC
}

// FrameCycles returns the number of CPU cycles in a frame for the Spec.
// Unknown specs are treated as NTSC.
func (s Spec) FrameCycles() int {
	switch s {
	case SpecPAL:
		return FramePAL
	case SpecDendy:
		return FrameDendy
	}
	return FrameNTSC
}
