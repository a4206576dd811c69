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

package preferences

import (
	"github.com/jetsetilly/gopher2a03/prefs"
)

// Preferences defines and collates the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	// initialise registers to an unknown state on power on
	RandomState prefs.Bool

	// execute undocumented opcodes. if false then any opcode that isn't in the
	// documented set is an unsupported opcode
	Undocumented prefs.Bool

	// seed for random values generated by the hardware. zero means the seed
	// is chosen when the program starts
	RandSeed prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the file at pth if it exists. An
// empty pth means the preferences are not backed by a file.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if pth == "" {
		return p, nil
	}

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.undocumented", &p.Undocumented)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randseed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.Undocumented.Set(true)
	p.RandSeed.Set(0)
}

// Load hardware preferences from disk. Does nothing if the preferences are not
// backed by a file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save hardware preferences to disk. Does nothing if the preferences are not
// backed by a file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
