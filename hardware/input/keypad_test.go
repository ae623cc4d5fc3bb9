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

package input_test

import (
	"testing"

	"github.com/clint07/gopher8/hardware/input"
	"github.com/clint07/gopher8/test"
)

func TestPressRelease(t *testing.T) {
	kp := input.NewKeypad()

	test.Equate(t, kp.IsDown(0xa), false)
	kp.Press(0xa)
	test.Equate(t, kp.IsDown(0xa), true)
	kp.Release(0xa)
	test.Equate(t, kp.IsDown(0xa), false)

	// key values are masked to the low nibble
	kp.Press(0x1a)
	test.Equate(t, kp.IsDown(0xa), true)
}

func TestPressedSince(t *testing.T) {
	kp := input.NewKeypad()

	// a key already held down when the sequence number is taken is not a
	// new press
	kp.Press(0x5)
	seq := kp.PressSeq()
	_, ok := kp.PressedSince(seq)
	test.Equate(t, ok, false)

	// holding the key generates no further press events
	kp.Press(0x5)
	_, ok = kp.PressedSince(seq)
	test.Equate(t, ok, false)

	// a new press is observed
	kp.Press(0x7)
	key, ok := kp.PressedSince(seq)
	test.Equate(t, ok, true)
	test.Equate(t, key, 0x7)

	// release and press of the same key counts as a new press
	seq = kp.PressSeq()
	kp.Release(0x7)
	kp.Press(0x7)
	key, ok = kp.PressedSince(seq)
	test.Equate(t, ok, true)
	test.Equate(t, key, 0x7)
}
