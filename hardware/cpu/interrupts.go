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
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// Line identifies an interrupt line of the CPU.
type Line int

// List of interrupt lines.
const (
	// edge triggered. an interrupt is raised when the line goes from low to
	// high
	NMI Line = iota

	// level triggered. an interrupt is raised at every instruction boundary
	// while the line is high and interrupts are not disabled
	IRQ
)

func (l Line) String() string {
	switch l {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return "unknown line"
}

// InterruptState describes whether the CPU is servicing an interrupt.
type InterruptState int

// List of interrupt states.
const (
	Running InterruptState = iota
	ServicingReset
	ServicingNMI
	ServicingIRQ
)

func (s InterruptState) String() string {
	switch s {
	case Running:
		return "running"
	case ServicingReset:
		return "servicing reset"
	case ServicingNMI:
		return "servicing NMI"
	case ServicingIRQ:
		return "servicing IRQ"
	}
	return "unknown state"
}

// SetInterruptLine sets the level of the NMI or IRQ line. A level of true
// means the line is asserted.
func (mc *CPU) SetInterruptLine(line Line, level bool) {
	switch line {
	case NMI:
		if level && !mc.nmiLine {
			mc.nmiPending = true
		}
		mc.nmiLine = level
	case IRQ:
		mc.irqLine = level
	}
}

// RequestReset causes the reset sequence to be performed at the next
// instruction boundary.
func (mc *CPU) RequestReset() {
	mc.resetPending = true
}

// InterruptState returns the state of the interrupt controller. The state is
// Running unless an interrupt sequence is being performed. Useful when
// queried from the cycle callback.
func (mc *CPU) InterruptState() InterruptState {
	switch mc.servicing {
	case execution.Reset:
		return ServicingReset
	case execution.NMI:
		return ServicingNMI
	case execution.IRQ:
		return ServicingIRQ
	}
	return Running
}

// delayInterruptDisable is called by the instructions that change the
// interrupt disable flag after the interrupt lines have been polled. the
// value of the flag before the change is used when polling at the next
// instruction boundary
func (mc *CPU) delayInterruptDisable() {
	mc.irqMaskDelay = true
	mc.delayedInterruptDisable = mc.Status.InterruptDisable
}

// pendingInterrupt returns the interrupt that should be serviced at the
// instruction boundary, in order of priority.
func (mc *CPU) pendingInterrupt() execution.Interrupt {
	interruptDisable := mc.Status.InterruptDisable
	if mc.irqMaskDelay {
		interruptDisable = mc.delayedInterruptDisable
		mc.irqMaskDelay = false
	}

	if mc.resetPending {
		return execution.Reset
	}
	if mc.nmiPending {
		return execution.NMI
	}
	if mc.irqLine && !interruptDisable {
		return execution.IRQ
	}
	return execution.NoInterrupt
}

// interrupt performs the interrupt sequence. all sequences take seven cycles
func (mc *CPU) interrupt(kind execution.Interrupt) error {
	mc.servicing = kind
	defer func() {
		mc.servicing = execution.NoInterrupt
	}()

	mc.LastResult.Interrupt = kind

	// two dummy reads of the PC. the PC is not incremented
	// +2 cycles
	err := mc.dummyRead(mc.PC.Address())
	if err != nil {
		return err
	}
	err = mc.dummyRead(mc.PC.Address())
	if err != nil {
		return err
	}

	var vector uint16

	switch kind {
	case execution.Reset:
		mc.resetPending = false

		// the stack is accessed as though the PC and status register were
		// being pushed but the accesses are reads
		// +3 cycles
		for range 3 {
			err = mc.dummyRead(mc.SP.Push())
			if err != nil {
				return err
			}
		}
		vector = cpubus.Reset

	case execution.NMI:
		mc.nmiPending = false

		// +3 cycles
		err = mc.pushPC()
		if err != nil {
			return err
		}
		err = mc.push(mc.Status.Value() &^ registers.Break)
		if err != nil {
			return err
		}
		vector = cpubus.NMI

	case execution.IRQ:
		// +3 cycles
		err = mc.pushPC()
		if err != nil {
			return err
		}
		err = mc.push(mc.Status.Value() &^ registers.Break)
		if err != nil {
			return err
		}
		vector = cpubus.IRQ
	}

	mc.Status.InterruptDisable = true

	// +2 cycles
	return mc.loadVector(vector)
}

// pushPC pushes the high byte and then the low byte of the PC
func (mc *CPU) pushPC() error {
	// +1 cycle
	err := mc.push(uint8(mc.PC.Address() >> 8))
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.push(uint8(mc.PC.Address()))
}

// loadVector loads the PC with the address stored at the vector
func (mc *CPU) loadVector(vector uint16) error {
	// +2 cycles
	address, err := mc.read16Bit(vector)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}
