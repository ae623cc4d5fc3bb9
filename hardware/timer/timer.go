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

// Package timer implements the delay and sound timers of the CHIP-8 and the
// fixed-rate clock that drives them. The two timers decrement at TickRate
// regardless of how quickly the CPU is executing instructions.
package timer

import (
	"fmt"
	"time"
)

// TickRate is the number of times per second the timers decrement.
const TickRate = 60

// tickDuration is the interval between timer decrements.
const tickDuration = time.Second / TickRate

// Timer is the pair of countdown registers. Each decrements by exactly one
// on every tick while non-zero and floors at zero.
type Timer struct {
	Delay uint8
	Sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr Timer) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.Delay, tmr.Sound)
}

// Reset the timer registers.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Tick decrements both registers, flooring at zero. It should only be called
// by the Driver.
func (tmr *Timer) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// SoundActive is true while the sound timer is non-zero. The host should be
// emitting a tone while this is true.
func (tmr *Timer) SoundActive() bool {
	return tmr.Sound > 0
}

// Driver ticks a Timer at the fixed TickRate. The Step() function can be
// called as often or as rarely as the host likes; elapsed time is
// accumulated and the timer is ticked once for every whole tick interval
// that has passed.
type Driver struct {
	tmr *Timer

	// Clock is the time source for the driver. It can be substituted for a
	// fake clock in tests.
	Clock func() time.Time

	accumulated time.Duration
	lastStep    time.Time
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(tmr *Timer) *Driver {
	drv := &Driver{
		tmr:   tmr,
		Clock: time.Now,
	}
	drv.lastStep = drv.Clock()
	return drv
}

// Reset the driver, forgetting any accumulated time.
func (drv *Driver) Reset() {
	drv.accumulated = 0
	drv.lastStep = drv.Clock()
}

// Step the driver forward. The number of ticks that fired is returned -
// usually zero or one, more if the host has stalled for several tick
// intervals.
func (drv *Driver) Step() int {
	now := drv.Clock()
	drv.accumulated += now.Sub(drv.lastStep)
	drv.lastStep = now

	ticks := 0
	for drv.accumulated >= tickDuration {
		drv.accumulated -= tickDuration
		drv.tmr.Tick()
		ticks++
	}

	return ticks
}
