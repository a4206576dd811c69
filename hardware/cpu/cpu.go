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
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/preferences"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/random"
)

// the value of the status register after power on
const powerOnStatus = uint8(0x34)

// CPU implements the Ricoh 2A03 as found in the NES. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences
	rand  *random.Random

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// cycleCallback is called at the end of every cycle
	cycleCallback func() error

	// last result. if Final is false then an instruction is either in progress
	// or ended with an error from the cycle callback
	LastResult execution.Result

	// the number of cycles executed since power on
	TotalCycles uint64

	// an instruction has been started and not completed
	busy bool

	// interrupt lines
	nmiLine      bool
	nmiPending   bool
	irqLine      bool
	resetPending bool

	// CLI, SEI and PLP change the interrupt disable flag after the interrupt
	// lines have been polled
	irqMaskDelay            bool
	delayedInterruptDisable bool

	// the interrupt sequence being performed
	servicing execution.Interrupt

	// register values at the start of the most recent instruction
	trace traceState
}

type traceState struct {
	a, x, y, p, sp uint8
	cycles         uint64
}

// NewCPU is the preferred method of initialisation for the CPU structure. A
// nil value for prefs means the default preferences are used.
//
// The CPU is not in a usable state until PowerOn() has been called.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	if prefs == nil {
		// an empty path never results in an error
		prefs, _ = preferences.NewPreferences("")
	}

	mc := &CPU{
		prefs:         prefs,
		mem:           mem,
		PC:            registers.NewProgramCounter(0),
		A:             registers.NewRegister(0, "A"),
		X:             registers.NewRegister(0, "X"),
		Y:             registers.NewRegister(0, "Y"),
		SP:            registers.NewStackPointer(0),
		Status:        registers.NewStatusRegister(),
		acc8:          registers.NewRegister(0, "accumulator"),
		cycleCallback: NilCycleCallback,
	}

	mc.rand = random.NewRandom(mc, int64(prefs.RandSeed.Get().(int)))

	return mc
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// CycleCount returns the number of cycles executed since power on.
func (mc *CPU) CycleCount() uint64 {
	return mc.TotalCycles
}

// PowerOn puts the CPU into its power on state and then performs the reset
// sequence. The registers are zero, or random if the RandomState preference
// is set, before the reset sequence begins. Any interrupt lines are
// deasserted.
func (mc *CPU) PowerOn() error {
	mc.LastResult.Reset()
	mc.busy = false
	mc.TotalCycles = 0
	mc.nmiLine = false
	mc.nmiPending = false
	mc.irqLine = false
	mc.irqMaskDelay = false
	mc.delayedInterruptDisable = false
	mc.servicing = execution.NoInterrupt
	mc.cycleCallback = NilCycleCallback

	if mc.prefs.RandomState.Get().(bool) {
		b := mc.rand.Bytes(5)
		mc.A.Load(b[0])
		mc.X.Load(b[1])
		mc.Y.Load(b[2])
		mc.SP.Load(b[3])
		mc.Status.Load(b[4])
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
		mc.SP.Load(0)
		mc.Status.Load(powerOnStatus)
	}
	mc.PC.Load(0)

	mc.resetPending = true
	return mc.ExecuteInstruction(NilCycleCallback)
}

// LoadPC loads the address into the PC. Useful for starting execution at an
// address other than the one in the reset vector.
func (mc *CPU) LoadPC(address uint16) error {
	if mc.busy {
		return curated.Errorf(MidInstruction, "load PC")
	}
	mc.PC.Load(address)
	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. service any pending interrupt instead of the instruction
//  2. read opcode and look up instruction definition
//  3. read operands (if any) according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run, thereby allowing the rest of the NES
// hardware to operate.
//
// The cycleCallback argument should *never* be nil. Use the
// NilCycleCallback() function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if mc.busy {
		return curated.Errorf(MidInstruction, "starting a new instruction")
	}

	mc.cycleCallback = cycleCallback

	mc.trace = traceState{
		a:      mc.A.Value(),
		x:      mc.X.Value(),
		y:      mc.Y.Value(),
		p:      mc.Status.Value() &^ registers.Break,
		sp:     mc.SP.Value(),
		cycles: mc.TotalCycles,
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.busy = true

	if intr := mc.pendingInterrupt(); intr != execution.NoInterrupt {
		err := mc.interrupt(intr)
		if err != nil {
			return err
		}
		mc.finalise()
		return nil
	}

	// read next instruction
	// +1 cycle
	v, err := mc.read8BitPC(opcode)
	if err != nil {
		return err
	}

	defn, err := instructions.Decode(v, mc.prefs.Undocumented.Get().(bool))
	mc.LastResult.Defn = defn
	if err != nil {
		// the result is finalised even though the instruction has not been
		// executed. the caller may still want to make use of the result
		mc.LastResult.ByteCount = 1
		mc.finalise()

		err = curated.Errorf(UnsupportedOpcode, v, mc.LastResult.Address)
		logger.Log(logger.Allow, "cpu", err.Error())
		return err
	}

	op, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	err = mc.execute(defn, op)
	if err != nil {
		return err
	}

	mc.finalise()

	return nil
}

// finalise the result of the instruction or interrupt sequence
func (mc *CPU) finalise() {
	mc.LastResult.Final = true
	mc.busy = false
}

// Step executes one instruction (or interrupt sequence) and returns the
// number of cycles it took.
func (mc *CPU) Step() (int, error) {
	err := mc.ExecuteInstruction(NilCycleCallback)
	return mc.LastResult.Cycles, err
}

// TraceLine returns the disassembly of the most recent instruction followed
// by the value of the registers before the instruction was executed. The
// layout is the same as the widely used nestest log, which never shows the
// Break flag.
func (mc *CPU) TraceLine() string {
	return fmt.Sprintf("%sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		mc.LastResult.Disassembly(),
		mc.trace.a, mc.trace.x, mc.trace.y, mc.trace.p, mc.trace.sp,
		mc.trace.cycles)
}
