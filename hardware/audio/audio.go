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

// Package audio defines the interface between the emulation and the sound
// hardware of the host. The CHIP-8 has no waveform control, only a tone that
// is audible while the sound timer is non-zero.
package audio

// Mixer implementations produce (or record) the beep of the CHIP-8.
type Mixer interface {
	// SetTone is called by the host loop with the current state of the tone
	// signal. Implementations should expect repeated calls with an
	// unchanged value.
	SetTone(active bool) error

	// EndMixing is called when the emulation ends.
	EndMixing() error
}
