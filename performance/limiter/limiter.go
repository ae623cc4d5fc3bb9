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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. It is used to pin the instruction rate of the emulation, which
// would otherwise run as fast as the host allows.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(500)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		executeInstruction()
//	}
package limiter

import (
	"time"
)

// probably only any good if base performance of the machine is well above
// the required rate.

// Limiter triggers at a fixed number of events per second.
type Limiter struct {
	eventsPerSecond int
	perEvent        time.Duration

	tick chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(eventsPerSecond int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(eventsPerSecond)

	lim.tick = make(chan bool)

	// run ticker concurrently. the sleep period is adjusted every event to
	// absorb the drift caused by sleep overshoot
	go func() {
		adjustedPerEvent := lim.perEvent
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedPerEvent)
			nt := time.Now()
			adjustedPerEvent -= nt.Sub(t) - lim.perEvent
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the Limiter waits.
func (lim *Limiter) SetLimit(eventsPerSecond int) {
	lim.eventsPerSecond = eventsPerSecond
	lim.perEvent = time.Second / time.Duration(eventsPerSecond)
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}
