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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/test"
)

func inesImage(prgBanks uint8, flags6 uint8, flags7 uint8) []byte {
	d := []byte{'N', 'E', 'S', 0x1a, prgBanks, 1, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 == 0x04 {
		d = append(d, make([]byte, 512)...)
	}
	prg := make([]byte, int(prgBanks)*0x4000)
	if len(prg) > 0 {
		prg[0] = 0xaa
	}
	d = append(d, prg...)
	d = append(d, make([]byte, 0x2000)...)
	return d
}

func TestNewLoader(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.NewLoader("test.nes", "").Format, cartridgeloader.FormatINES)
	test.ExpectEquality(t, cartridgeloader.NewLoader("test.Bin", "auto").Format, cartridgeloader.FormatRaw)
	test.ExpectEquality(t, cartridgeloader.NewLoader("test.xyz", "").Format, cartridgeloader.FormatAuto)
	test.ExpectEquality(t, cartridgeloader.NewLoader("test.nes", "raw").Format, cartridgeloader.FormatRaw)
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/test.nes", "").ShortName(), "test")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	raw := filepath.Join(dir, "program.dat")
	test.DemandSuccess(t, os.WriteFile(raw, []byte{0xa9, 0x01}, 0o644))

	cl := cartridgeloader.NewLoader(raw, "")
	test.ExpectEquality(t, len(cl.Data), 0)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 2)
	test.ExpectEquality(t, cl.Format, cartridgeloader.FormatRaw)
	test.ExpectEquality(t, len(cl.Hash), 40)

	// loading with the correct hash
	hash := cl.Hash
	cl = cartridgeloader.NewLoader(raw, "")
	cl.Hash = hash
	test.ExpectSuccess(t, cl.Load())

	// loading with an incorrect hash
	cl = cartridgeloader.NewLoader(raw, "")
	cl.Hash = "0000"
	test.ExpectFailure(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 0)

	// automatic detection of iNES data
	ines := filepath.Join(dir, "image.dat")
	test.DemandSuccess(t, os.WriteFile(ines, inesImage(1, 0, 0), 0o644))
	cl = cartridgeloader.NewLoader(ines, "")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Format, cartridgeloader.FormatINES)

	// missing file
	cl = cartridgeloader.NewLoader(filepath.Join(dir, "missing.nes"), "")
	test.ExpectFailure(t, cl.Load())
}

func TestParseINES(t *testing.T) {
	ines, err := cartridgeloader.ParseINES(inesImage(2, 0x01, 0))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ines.PRG), 0x8000)
	test.ExpectEquality(t, len(ines.CHR), 0x2000)
	test.ExpectEquality(t, ines.PRG[0], uint8(0xaa))
	test.ExpectEquality(t, ines.Mirroring, cartridgeloader.Vertical)
	test.ExpectEquality(t, ines.String(), "mapper 0: 32k PRG, 8k CHR, vertical mirroring")

	// with trainer
	ines, err = cartridgeloader.ParseINES(inesImage(1, 0x06, 0))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ines.Trainer), 512)
	test.ExpectEquality(t, ines.PRG[0], uint8(0xaa))
	test.ExpectSuccess(t, ines.Battery)

	// unsupported mapper
	_, err = cartridgeloader.ParseINES(inesImage(1, 0x10, 0))
	test.ExpectFailure(t, err)

	// unsupported PRG size
	_, err = cartridgeloader.ParseINES(inesImage(3, 0, 0))
	test.ExpectFailure(t, err)

	// truncated
	_, err = cartridgeloader.ParseINES(inesImage(1, 0, 0)[:100])
	test.ExpectFailure(t, err)

	// not iNES
	_, err = cartridgeloader.ParseINES([]byte{0xa9, 0x00})
	test.ExpectFailure(t, err)
}
