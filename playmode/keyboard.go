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

package playmode

import (
	"github.com/clint07/gopher8/curated"
	"github.com/clint07/gopher8/gui"
)

// keypadMap maps the left-hand block of a modern keyboard onto the 4x4
// hexadecimal keypad of the original machine:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keypadMap = map[string]uint8{
	"1": 0x01, "2": 0x02, "3": 0x03, "4": 0x0c,
	"Q": 0x04, "W": 0x05, "E": 0x06, "R": 0x0d,
	"A": 0x07, "S": 0x08, "D": 0x09, "F": 0x0e,
	"Z": 0x0a, "X": 0x00, "C": 0x0b, "V": 0x0f,
}

// keyboardHandler handles keypresses for play mode.
func (pl *playmode) keyboardHandler(ev gui.EventDataKeyboard) error {
	if ev.Key == "Escape" {
		if ev.Down {
			return curated.Errorf(quitEvent)
		}
		return nil
	}

	key, ok := keypadMap[ev.Key]
	if !ok {
		return nil
	}

	if ev.Down {
		pl.ch8.Keypad.Press(key)
	} else {
		pl.ch8.Keypad.Release(key)
	}

	return nil
}
