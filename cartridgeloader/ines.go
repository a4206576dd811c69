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

package cartridgeloader

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
)

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
	prgBankSize     = 0x4000
	chrBankSize     = 0x2000
)

// Mirroring of the PPU nametables, as indicated by the iNES header.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four screen"
	}
	return "horizontal"
}

// INES is the result of parsing data in the iNES format.
type INES struct {
	Mapper    int
	Mirroring Mirroring
	Battery   bool
	Trainer   []byte
	PRG       []byte
	CHR       []byte
}

func (ines INES) String() string {
	return fmt.Sprintf("mapper %d: %dk PRG, %dk CHR, %s mirroring", ines.Mapper, len(ines.PRG)/1024, len(ines.CHR)/1024, ines.Mirroring)
}

// ParseINES parses the data as an iNES image. Only mapper 0 is supported.
func ParseINES(data []byte) (*INES, error) {
	if len(data) < inesHeaderSize || string(data[:4]) != string(inesMagic) {
		return nil, curated.Errorf("cartridgeloader: %v", "not an iNES image")
	}

	flags6 := data[6]
	flags7 := data[7]

	ines := &INES{
		Mapper:  int(flags7&0xf0) | int(flags6>>4),
		Battery: flags6&0x02 == 0x02,
	}

	switch {
	case flags6&0x08 == 0x08:
		ines.Mirroring = FourScreen
	case flags6&0x01 == 0x01:
		ines.Mirroring = Vertical
	}

	if ines.Mapper != 0 {
		return nil, curated.Errorf("cartridgeloader: %v", fmt.Sprintf("mapper %d is not supported", ines.Mapper))
	}

	prgSize := int(data[4]) * prgBankSize
	chrSize := int(data[5]) * chrBankSize

	if prgSize != prgBankSize && prgSize != prgBankSize*2 {
		return nil, curated.Errorf("cartridgeloader: %v", fmt.Sprintf("PRG ROM of %d banks is not supported", data[4]))
	}

	p := inesHeaderSize
	if flags6&0x04 == 0x04 {
		if len(data) < p+inesTrainerSize {
			return nil, curated.Errorf("cartridgeloader: %v", "iNES image is truncated")
		}
		ines.Trainer = data[p : p+inesTrainerSize]
		p += inesTrainerSize
	}

	if len(data) < p+prgSize+chrSize {
		return nil, curated.Errorf("cartridgeloader: %v", "iNES image is truncated")
	}

	ines.PRG = data[p : p+prgSize]
	p += prgSize
	ines.CHR = data[p : p+chrSize]

	return ines, nil
}
