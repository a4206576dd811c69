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

package cpubus

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. Shared by the
// BRK instruction.
const IRQ = uint16(0xfffe)

// StackPage is the base address of the stack. The stack pointer is an offset
// into this page.
const StackPage = uint16(0x0100)

// Register represents a named address in PPU/APU/IO memory.
type Register string

// List of NES registers visible on the CPU bus.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"
	SQ1VOL    Register = "SQ1_VOL"
	SQ1SWEEP  Register = "SQ1_SWEEP"
	SQ1LO     Register = "SQ1_LO"
	SQ1HI     Register = "SQ1_HI"
	SQ2VOL    Register = "SQ2_VOL"
	SQ2SWEEP  Register = "SQ2_SWEEP"
	SQ2LO     Register = "SQ2_LO"
	SQ2HI     Register = "SQ2_HI"
	TRILINEAR Register = "TRI_LINEAR"
	TRILO     Register = "TRI_LO"
	TRIHI     Register = "TRI_HI"
	NOISEVOL  Register = "NOISE_VOL"
	NOISELO   Register = "NOISE_LO"
	NOISEHI   Register = "NOISE_HI"
	DMCFREQ   Register = "DMC_FREQ"
	DMCRAW    Register = "DMC_RAW"
	DMCSTART  Register = "DMC_START"
	DMCLEN    Register = "DMC_LEN"
	OAMDMA    Register = "OAMDMA"
	SNDCHN    Register = "SND_CHN"
	JOY1      Register = "JOY1"
	JOY2      Register = "JOY2"
)

// PPURegisters indexes the PPU registers by primary address.
var PPURegisters = [8]Register{
	PPUCTRL, PPUMASK, PPUSTATUS, OAMADDR, OAMDATA, PPUSCROLL, PPUADDR, PPUDATA,
}

// IORegisters indexes the APU and IO registers by address from $4000.
// Unused addresses are the empty string.
var IORegisters = [0x18]Register{
	SQ1VOL, SQ1SWEEP, SQ1LO, SQ1HI,
	SQ2VOL, SQ2SWEEP, SQ2LO, SQ2HI,
	TRILINEAR, "", TRILO, TRIHI,
	NOISEVOL, "", NOISELO, NOISEHI,
	DMCFREQ, DMCRAW, DMCSTART, DMCLEN,
	OAMDMA, SNDCHN, JOY1, JOY2,
}

// RegisterName returns the name of the register at the address. The address
// should be the primary mirror of a register. Returns false if there is no
// register at that address.
func RegisterName(address uint16) (Register, bool) {
	switch {
	case address >= 0x2000 && address <= 0x2007:
		return PPURegisters[address-0x2000], true
	case address >= 0x4000 && address < 0x4000+uint16(len(IORegisters)):
		r := IORegisters[address-0x4000]
		return r, r != ""
	}
	return "", false
}
