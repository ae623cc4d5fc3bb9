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
	"github.com/clint07/gopher8/hardware/input"
	"github.com/clint07/gopher8/hardware/memory"
	"github.com/clint07/gopher8/hardware/timer"
	"github.com/clint07/gopher8/hardware/video"
	"github.com/clint07/gopher8/logger"
	"github.com/clint07/gopher8/random"
	"github.com/clint07/gopher8/romloader"
)

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.RAM
	Scr    *video.Display
	Keypad *input.Keypad
	Timer  *timer.Timer

	// the timer driver is not part of the machine but is attached to it. it
	// decouples the decrement rate of the two timers from the instruction
	// rate
	Driver *timer.Driver
}

// NewChip8 creates a new Chip8 and everything associated with the hardware.
func NewChip8(rnd *random.Random) *Chip8 {
	ch8 := &Chip8{
		Mem:    memory.NewRAM(),
		Scr:    video.NewDisplay(),
		Keypad: input.NewKeypad(),
		Timer:  timer.NewTimer(),
	}
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Scr, ch8.Keypad, ch8.Timer, rnd)
	ch8.Driver = timer.NewDriver(ch8.Timer)
	return ch8
}

// AttachProgram loads a program into the emulated machine's memory and
// resets the machine. The loader's Load() function is called if it has not
// been already.
func (ch8 *Chip8) AttachProgram(ld *romloader.Loader) error {
	if !ld.HasLoaded() {
		if err := ld.Load(); err != nil {
			return err
		}
	}

	if err := ch8.Mem.LoadProgram(ld.Data); err != nil {
		return err
	}

	logger.Logf("chip8", "%s (%d bytes) %s", ld.ShortName(), len(ld.Data), ld.Hash)

	ch8.Reset()

	return nil
}

// Reset the machine. Program data already in memory is preserved, everything
// else returns to the power-on state.
func (ch8 *Chip8) Reset() {
	ch8.CPU.Reset()
	ch8.Scr.Reset()
	ch8.Keypad.Reset()
	ch8.Timer.Reset()
	ch8.Driver.Reset()
}
