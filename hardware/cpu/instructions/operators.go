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

package instructions

// Operator defines which operation is performed by the opcode. Many opcodes
// share an Operator, differing only in addressing mode.
type Operator int

// List of operators. The undocumented operators follow the documented set.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented
	Slo
	Rla
	Sre
	Rra
	Sax
	Lax
	Dcp
	Isc
	Anc
	Alr
	Arr
	Ane
	Lxa
	Axs
	Sha
	Shx
	Shy
	Tas
	Las
	Kil
)

var operatorNames = []string{
	"NOP", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE",
	"BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR",
	"LDA", "LDX", "LDY", "LSR", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"SLO", "RLA", "SRE", "RRA", "SAX", "LAX", "DCP", "ISC", "ANC", "ALR",
	"ARR", "ANE", "LXA", "AXS", "SHA", "SHX", "SHY", "TAS", "LAS", "JAM",
}

func (o Operator) String() string {
	if int(o) < 0 || int(o) >= len(operatorNames) {
		return "unknown operator"
	}
	return operatorNames[o]
}

// returns the operator with the mnemonic
func operatorFromMnemonic(mnemonic string) (Operator, bool) {
	for i, n := range operatorNames {
		if n == mnemonic {
			return Operator(i), true
		}
	}
	return Nop, false
}
