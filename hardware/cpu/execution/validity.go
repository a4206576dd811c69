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

package execution

import (
	"github.com/jetsetilly/gopher2a03/curated"
)

// Error patterns returned by IsValid().
const (
	NotFinal       = "execution: result not finalised"
	BadByteCount   = "execution: unexpected number of bytes read during decode for %#02x [%s] (%d instead of %d)"
	BadPageFault   = "execution: unexpected page fault for %#02x [%s]"
	BadCycleCount  = "execution: number of cycles wrong for %#02x [%s] (%d instead of %d)"
	BadInterrupt   = "execution: %s sequence took %d cycles (instead of %d)"
	BadBranchState = "execution: page fault without branch for %#02x [%s]"
)

// ExpectedCycles returns the number of cycles the instruction should have
// taken given the page fault and branch information in the result.
func (r Result) ExpectedCycles() int {
	if r.Defn == nil {
		return InterruptCycles
	}

	cycles := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			cycles++
			if r.PageFault {
				cycles++
			}
		}
	} else if r.Defn.PageSensitive && r.PageFault {
		cycles++
	}

	return cycles
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinal)
	}

	if r.Defn == nil {
		if r.Cycles != InterruptCycles {
			return curated.Errorf(BadInterrupt, r.Interrupt, r.Cycles, InterruptCycles)
		}
		return nil
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(BadByteCount, r.Defn.OpCode, r.Defn.Mnemonic, r.ByteCount, r.Defn.Bytes)
	}

	if r.PageFault {
		if r.Defn.IsBranch() {
			if !r.BranchSuccess {
				return curated.Errorf(BadBranchState, r.Defn.OpCode, r.Defn.Mnemonic)
			}
		} else if !r.Defn.PageSensitive {
			return curated.Errorf(BadPageFault, r.Defn.OpCode, r.Defn.Mnemonic)
		}
	}

	if r.Cycles != r.ExpectedCycles() {
		return curated.Errorf(BadCycleCount, r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.ExpectedCycles())
	}

	return nil
}
