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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
	"github.com/jetsetilly/gopher2a03/version"
)

// LDA #$01 ; JMP $8002
var trapProgram = []byte{0xa9, 0x01, 0x4c, 0x02, 0x80}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func TestRunRaw(t *testing.T) {
	prg := writeFile(t, "trap.bin", trapProgram)
	prefs := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs, prg}, tw)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, tw.String(), "trap.bin: trapped at $8002 after 12 cycles\n")
}

func TestRunTrace(t *testing.T) {
	prg := writeFile(t, "trap.bin", trapProgram)
	prefs := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs, "-trace", prg}, tw)
	test.ExpectEquality(t, v, exitOK)

	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "8000  A9 01"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "CYC:7"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "8002  4C 02 80"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "CYC:9"))
}

func TestRunCycleLimit(t *testing.T) {
	// JMP $8000 at $8003 means the program never traps
	prg := writeFile(t, "loop.bin", []byte{0xa9, 0x01, 0xea, 0x4c, 0x00, 0x80})
	prefs := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs, "-cycles", "20", prg}, tw)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "loop.bin: cycle limit reached"))
}

func TestRunParallel(t *testing.T) {
	a := writeFile(t, "a.bin", trapProgram)
	b := writeFile(t, "b.bin", trapProgram)
	prefs := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs, "-nmi", "ntsc", a, b}, tw)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, tw.String(),
		"a.bin: trapped at $8002 after 12 cycles (0 frames)\n"+
			"b.bin: trapped at $8002 after 12 cycles (0 frames)\n")
}

// iNES image with a single 16k PRG bank starting with the program
func inesImage(program []byte) []byte {
	img := []byte{'N', 'E', 'S', 0x1a, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 0x4000)
	copy(prg, program)
	// the 16k PRG ROM is mirrored so the reset vector is at the end of the bank
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	return append(img, prg...)
}

func TestRunINES(t *testing.T) {
	rom := writeFile(t, "trap.nes", inesImage(trapProgram))
	prefs := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs, rom}, tw)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, tw.String(), "trap.nes: trapped at $8002 after 12 cycles\n")
}

func TestRunLog(t *testing.T) {
	rom := writeFile(t, "trap.nes", inesImage(trapProgram))
	prefs := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs, "-log", rom}, tw)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "gopher2a03: trap: mapper 0: 16k PRG"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "memory: 0000 -> 1fff\tRAM\n"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "memory: 8000 -> ffff\tCartridge ROM\n"))
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "trap.nes: trapped at $8002 after 12 cycles\n"))
}

func TestRunErrorLog(t *testing.T) {
	prg := writeFile(t, "jam.bin", []byte{0x02})
	prefs := filepath.Join(t.TempDir(), "preferences")

	// the most recent log entries are shown with the error
	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs, prg}, tw)
	test.ExpectEquality(t, v, exitModeError)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "cpu: cpu: unsupported opcode (0x2) at (0x8000)\n* error in RUN mode"))
}

func TestRunErrors(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-prefs", prefs}, tw)
	test.ExpectEquality(t, v, exitModeError)

	tw.Clear()
	v = launch(context.Background(), []string{"RUN", "-prefs", prefs, filepath.Join(t.TempDir(), "missing.bin")}, tw)
	test.ExpectEquality(t, v, exitModeError)

	// JAM opcode is never supported
	prg := writeFile(t, "jam.bin", []byte{0x02})
	tw.Clear()
	v = launch(context.Background(), []string{"RUN", "-prefs", prefs, prg}, tw)
	test.ExpectEquality(t, v, exitModeError)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "unsupported opcode"))

	tw.Clear()
	v = launch(context.Background(), []string{"RUN", "-prefs", prefs, "-nmi", "secam", prg}, tw)
	test.ExpectEquality(t, v, exitModeError)

	tw.Clear()
	v = launch(context.Background(), []string{"-unknown"}, tw)
	test.ExpectEquality(t, v, exitParseError)
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-help"}, tw)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Usage: for RUN mode\n"))
}

func TestVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"VERSION"}, tw)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, tw.String(), version.Get().String()+"\n")
}
