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

package hardware

import (
	"github.com/clint07/gopher8/hardware/cpu"
)

// Step the machine forward one instruction. If the CPU is waiting for a key
// the instruction stream is left alone and the keypad is polled instead.
// The timers advance on their own wall-clock schedule either way.
func (ch8 *Chip8) Step() error {
	var err error

	if ch8.CPU.Status == cpu.WaitingForKey {
		ch8.CPU.ResolveWait()
	} else {
		err = ch8.CPU.ExecuteInstruction()
	}

	ch8.Driver.Step()

	return err
}

// Run the machine until continueCheck instructs otherwise or an error
// occurs. continueCheck is called after every instruction. A nil
// continueCheck sets the machine running forever.
func (ch8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error

	for cont {
		if err = ch8.Step(); err != nil {
			return err
		}

		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
