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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for instances created without an explicit seed
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is the source of emulation time used to vary random numbers.
type Clock interface {
	CycleCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clk  Clock
	seed uint64
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means the base seed chosen when the program started.
func NewRandom(clk Clock, seed int64) *Random {
	rnd := &Random{clk: clk}
	if seed == 0 {
		rnd.seed = baseSeed
	} else {
		rnd.seed = uint64(seed)
	}
	return rnd
}

func (rnd *Random) rand() *rand.Rand {
	var cycles uint64
	if rnd.clk != nil {
		cycles = rnd.clk.CycleCount()
	}
	return rand.New(rand.NewPCG(rnd.seed, cycles))
}

// Bytes returns n random bytes from a single generator.
func (rnd *Random) Bytes(n int) []uint8 {
	r := rnd.rand()
	b := make([]uint8, n)
	for i := range b {
		b[i] = uint8(r.UintN(256))
	}
	return b
}
