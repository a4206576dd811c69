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

package cpu

import (
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
)

// State is a copy of the CPU state as plain data. The copy can be restored
// with the Restore() function.
type State struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status registers.StatusRegister

	NMILine      bool
	NMIPending   bool
	IRQLine      bool
	ResetPending bool

	IRQMaskDelay            bool
	DelayedInterruptDisable bool

	TotalCycles uint64
}

// Snapshot returns the current state of the CPU.
func (mc *CPU) Snapshot() State {
	return State{
		PC:                      mc.PC.Address(),
		A:                       mc.A.Value(),
		X:                       mc.X.Value(),
		Y:                       mc.Y.Value(),
		SP:                      mc.SP.Value(),
		Status:                  mc.Status,
		NMILine:                 mc.nmiLine,
		NMIPending:              mc.nmiPending,
		IRQLine:                 mc.irqLine,
		ResetPending:            mc.resetPending,
		IRQMaskDelay:            mc.irqMaskDelay,
		DelayedInterruptDisable: mc.delayedInterruptDisable,
		TotalCycles:             mc.TotalCycles,
	}
}

// Restore the CPU to the state. LastResult is reset.
func (mc *CPU) Restore(s State) error {
	if mc.busy {
		return curated.Errorf(MidInstruction, "restore")
	}

	mc.PC.Load(s.PC)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.SP.Load(s.SP)
	mc.Status = s.Status
	mc.nmiLine = s.NMILine
	mc.nmiPending = s.NMIPending
	mc.irqLine = s.IRQLine
	mc.resetPending = s.ResetPending
	mc.irqMaskDelay = s.IRQMaskDelay
	mc.delayedInterruptDisable = s.DelayedInterruptDisable
	mc.TotalCycles = s.TotalCycles
	mc.LastResult.Reset()

	return nil
}
