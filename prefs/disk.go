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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/logger"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the prefs file.
const separator = " :: "

// Error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the prefs file and return the key/value pairs it contains. a missing
// file is not an error; an empty map is returned.
func (dsk *Disk) read() (map[string]string, error) {
	kv := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kv, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line is the boilerplate
	if !scanner.Scan() {
		return kv, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, fmt.Errorf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		kv[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return kv, nil
}

// Save current preference values to disk. Values in the file that are not
// part of this Disk are preserved.
func (dsk *Disk) Save() error {
	kv, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		kv[k] = p.String()
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(kv[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take priority over values in the file.
func (dsk *Disk) Load() error {
	kv, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set from command line (%v)", k, v)
			continue
		}

		if v, ok := kv[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}
