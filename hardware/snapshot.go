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
	"github.com/jetsetilly/gopher2a03/hardware/clocks"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
)

// State stores the state of the console. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// The memory is not part of the snapshot.
type State struct {
	CPU   cpu.State
	Frame *clocks.FrameTimer
}

// Snapshot the state of the console.
func (con *Console) Snapshot() *State {
	s := &State{
		CPU: con.CPU.Snapshot(),
	}
	if con.Frame != nil {
		s.Frame = con.Frame.Snapshot()
	}
	return s
}

// Plumb a previously snapshotted state into the console.
func (con *Console) Plumb(state *State) error {
	if state == nil {
		return curated.Errorf("hardware: cannot plumb in a nil state")
	}

	if err := con.CPU.Restore(state.CPU); err != nil {
		return err
	}

	// take another snapshot of the frame timer so that the stored state is
	// not changed by the running console
	if state.Frame != nil {
		con.Frame = state.Frame.Snapshot()
		con.Frame.Plumb(con.nmi())
	} else {
		con.Frame = nil
	}

	return nil
}
