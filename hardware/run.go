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
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
)

// RunState is returned by the continueCheck function of the Run() function.
type RunState int

// List of valid RunState values.
const (
	Running RunState = iota
	Ending
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return hardware.Ending, nil
//		}
//	}
//	return hardware.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every CPU instruction and can be nil, in
// which case Run() only returns on error.
func (con *Console) Run(continueCheck func() (RunState, error)) error {
	if continueCheck == nil {
		continueCheck = func() (RunState, error) { return Running, nil }
	}

	var err error

	state := Running

	for state != Ending {
		switch state {
		case Running:
			err = con.Step(cpu.NilCycleCallback)
			if err != nil {
				return err
			}
		default:
			return curated.Errorf("hardware: unsupported emulation state (%d) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles sets the emulation running until at least the number of
// cycles have been executed or the continueCheck function says otherwise.
func (con *Console) RunForCycles(cycles uint64, continueCheck func() (RunState, error)) error {
	target := con.CPU.TotalCycles + cycles
	return con.Run(func() (RunState, error) {
		if con.CPU.TotalCycles >= target {
			return Ending, nil
		}
		if continueCheck == nil {
			return Running, nil
		}
		return continueCheck()
	})
}

// IsTrapped returns true if the most recent instruction left the PC
// unchanged. This is the usual way for a test program to indicate that it
// has finished.
func (con *Console) IsTrapped() bool {
	r := con.CPU.LastResult
	return r.Final && r.Defn != nil && r.Address == con.CPU.PC.Address()
}
