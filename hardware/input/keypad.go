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

// Package input implements the 16-key hexadecimal keypad of the CHIP-8. The
// key-skip instructions query the current key state; the key-wait
// instruction needs to observe a key being newly pressed, which is what the
// press sequence number is for.
package input

// NumKeys is the number of keys on the keypad, one per hexadecimal digit.
const NumKeys = 16

// Keypad is the current state of the 16 keys.
type Keypad struct {
	keys [NumKeys]bool

	// every press increments the sequence number. a consumer that wants to
	// wait for a new press records the sequence number and compares it
	// later, rather than looking for a key that happens to be down.
	pressSeq    int
	lastPressed uint8
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset the keypad to the all-up state.
func (kp *Keypad) Reset() {
	for i := range kp.keys {
		kp.keys[i] = false
	}
}

// Press the numbered key. Only the low nibble of the key value is
// considered. Holding a key down does not generate repeated press events.
func (kp *Keypad) Press(key uint8) {
	key &= 0x0f
	if kp.keys[key] {
		return
	}
	kp.keys[key] = true
	kp.lastPressed = key
	kp.pressSeq++
}

// Release the numbered key.
func (kp *Keypad) Release(key uint8) {
	kp.keys[key&0x0f] = false
}

// IsDown returns true if the numbered key is currently held down.
func (kp *Keypad) IsDown(key uint8) bool {
	return kp.keys[key&0x0f]
}

// PressSeq returns the current press sequence number, for later use with
// PressedSince().
func (kp *Keypad) PressSeq() int {
	return kp.pressSeq
}

// PressedSince returns the most recently pressed key if any key has been
// pressed since the given sequence number was taken.
func (kp *Keypad) PressedSince(seq int) (uint8, bool) {
	if kp.pressSeq > seq {
		return kp.lastPressed, true
	}
	return 0, false
}
