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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/clocks"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/preferences"
)

// Console struct is the main container for the emulated components of the
// NES.
type Console struct {
	Prefs *preferences.Preferences
	CPU   *cpu.CPU
	Mem   cpubus.Memory

	// the frame timer is optional. it will be nil unless
	// AttachFrameTimer() has been called
	Frame *clocks.FrameTimer
}

// NewConsole creates a new Console and everything associated with the
// hardware. A nil prefs argument means the default preferences are used.
func NewConsole(prefs *preferences.Preferences, mem cpubus.Memory) (*Console, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	con := &Console{
		Prefs: prefs,
		Mem:   mem,
	}
	con.CPU = cpu.NewCPU(con.Prefs, con.Mem)

	return con, nil
}

func (con *Console) String() string {
	if con.Frame == nil {
		return con.CPU.String()
	}
	return fmt.Sprintf("%s (%s)", con.CPU, con.Frame)
}

// AttachFrameTimer creates a frame timer for the console specification. The
// timer pulses the NMI line of the CPU once per frame.
func (con *Console) AttachFrameTimer(spec clocks.Spec) {
	con.Frame = clocks.NewFrameTimer(spec, con.nmi())
}

func (con *Console) nmi() clocks.NMIFunc {
	return func(level bool) {
		con.CPU.SetInterruptLine(cpu.NMI, level)
	}
}

// PowerOn the console. The CPU performs its reset sequence and is ready to
// execute the program pointed to by the reset vector.
func (con *Console) PowerOn() error {
	if con.Frame != nil {
		con.Frame = clocks.NewFrameTimer(con.Frame.Spec(), con.nmi())
	}
	return con.CPU.PowerOn()
}

// Reset the console. The reset sequence is performed on the next call to
// Step() or Run().
func (con *Console) Reset() {
	con.CPU.RequestReset()
}

// Step the emulation one CPU instruction. The cycleCallback function is
// called after every CPU cycle and can be nil.
func (con *Console) Step(cycleCallback func() error) error {
	if cycleCallback == nil {
		cycleCallback = cpu.NilCycleCallback
	}

	err := con.CPU.ExecuteInstruction(cycleCallback)
	if err != nil {
		return err
	}

	if con.Frame != nil {
		con.Frame.Advance(con.CPU.LastResult.Cycles)
	}

	return nil
}
