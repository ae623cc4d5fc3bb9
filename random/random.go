// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is the random number generator used by the random instruction.
type Random struct {
	rand *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{
		rand: rand.New(rand.NewSource(baseSeed)),
	}
}

// NewZeroSeed returns a Random with a seed of zero. Random numbers from a
// zero seeded Random are predictable, which is only really useful for
// testing.
func NewZeroSeed() *Random {
	return &Random{
		rand: rand.New(rand.NewSource(0)),
	}
}

// Uint8 returns a random number uniform over [0, 255].
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand.Intn(256))
}
