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

package clocks

import (
	"fmt"
	"strings"
)

// Interruptable is the part of the CPU that the FrameTimer needs. It is
// satisfied by the cpu.CPU type with an adaptor function.
type Interruptable interface {
	SetNMI(level bool)
}

// NMIFunc is a function that satisfies the Interruptable interface.
type NMIFunc func(level bool)

// SetNMI implements the Interruptable interface.
func (f NMIFunc) SetNMI(level bool) {
	f(level)
}

// lowCycles is the number of cycles the NMI line is held low (asserted) at
// the start of each frame.
const lowCycles = 7

// FrameTimer counts CPU cycles and asserts the NMI line at the start of every
// frame. It should be advanced by the number of cycles consumed by each step
// of the CPU.
type FrameTimer struct {
	spec   Spec
	target Interruptable

	cycles int
	frames int

	asserted bool
}

// NewFrameTimer is the preferred method of initialisation for the FrameTimer
// type.
func NewFrameTimer(spec Spec, target Interruptable) *FrameTimer {
	return &FrameTimer{
		spec:   spec,
		target: target,
	}
}

func (ft *FrameTimer) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s frame %d cycle %d", ft.spec, ft.frames, ft.cycles))
	if ft.asserted {
		s.WriteString(" [NMI]")
	}
	return s.String()
}

// Advance the timer by the number of CPU cycles. Returns true if a new frame
// started.
func (ft *FrameTimer) Advance(cycles int) bool {
	var newFrame bool

	ft.cycles += cycles
	for ft.cycles >= ft.spec.FrameCycles() {
		ft.cycles -= ft.spec.FrameCycles()
		ft.frames++
		newFrame = true
	}

	if newFrame {
		ft.asserted = true
		ft.target.SetNMI(true)
	} else if ft.asserted && ft.cycles >= lowCycles {
		ft.asserted = false
		ft.target.SetNMI(false)
	}

	return newFrame
}

// Frames returns the number of completed frames.
func (ft *FrameTimer) Frames() int {
	return ft.frames
}

// Cycles returns the number of cycles into the current frame.
func (ft *FrameTimer) Cycles() int {
	return ft.cycles
}

// Snapshot creates a copy of the FrameTimer in its current state. The copy
// must be plumbed before it is advanced.
func (ft *FrameTimer) Snapshot() *FrameTimer {
	n := *ft
	n.target = nil
	return &n
}

// Plumb a new target into the FrameTimer.
func (ft *FrameTimer) Plumb(target Interruptable) {
	ft.target = target
}

// Spec returns the specification the timer was created with.
func (ft *FrameTimer) Spec() Spec {
	return ft.spec
}
