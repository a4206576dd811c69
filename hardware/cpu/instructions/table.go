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

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed instructions.csv
var definitionsCSV []byte

// the definitions table is indexed by opcode. it is populated once by init()
// and never changed
var definitions [256]*Definition

func init() {
	err := parseCSV(definitionsCSV)
	if err != nil {
		panic(fmt.Sprintf("instructions: %v", err))
	}
}

func parseCSV(data []byte) error {
	csvr := csv.NewReader(bytes.NewReader(data))
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = 7

	for {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		line, _ := csvr.FieldPos(0)

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := &Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if definitions[defn.OpCode] != nil {
			return fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic
		defn.Mnemonic = strings.ToUpper(rec[1])
		var ok bool
		defn.Operator, ok = operatorFromMnemonic(defn.Mnemonic)
		if !ok {
			return fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		defn.AddressingMode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.bytes()

		// BRK is implied addressing but the byte after the opcode is skipped
		if defn.Operator == Brk {
			defn.Bytes = 2
		}

		// field: page sensitive
		defn.PageSensitive, err = strconv.ParseBool(strings.ToLower(rec[4]))
		if err != nil {
			return fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: effect category
		defn.Effect, ok = categories[strings.ToUpper(rec[5])]
		if !ok {
			return fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
		}

		// field: status
		defn.Status, ok = statuses[strings.ToUpper(rec[6])]
		if !ok {
			return fmt.Errorf("unknown status for %#02x (%s) [line %d]", defn.OpCode, rec[6], line)
		}

		definitions[defn.OpCode] = defn
	}

	for i, d := range definitions {
		if d == nil {
			return fmt.Errorf("missing definition for opcode (%#02x)", i)
		}
	}

	return nil
}

// Lookup returns the definition for the opcode. Lookup never returns nil.
// Use Decode() to also check whether the opcode can be executed.
func Lookup(opcode uint8) *Definition {
	return definitions[opcode]
}
