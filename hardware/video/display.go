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

// Package video implements the 64x32 monochrome display buffer of the
// CHIP-8. The buffer is written only by the draw instruction, which XORs
// sprite rows into the grid, and read by a PixelRenderer implementation.
package video

import (
	"strings"
)

// The dimensions of the display.
const (
	HorizPixels = 64
	Scanlines   = 32
)

// Display is the 64x32 monochrome pixel grid.
type Display struct {
	pixels [Scanlines * HorizPixels]bool

	// dirty is set whenever the buffer changes and cleared when the
	// renderer acknowledges that it has consumed the buffer.
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// String returns a crude ASCII rendering of the display. Handy when
// eyeballing test failures.
func (scr *Display) String() string {
	s := strings.Builder{}
	for y := 0; y < Scanlines; y++ {
		for x := 0; x < HorizPixels; x++ {
			if scr.pixels[y*HorizPixels+x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Clear the display. The buffer is marked dirty so the renderer wipes its
// own copy.
func (scr *Display) Clear() {
	for i := range scr.pixels {
		scr.pixels[i] = false
	}
	scr.dirty = true
}

// Reset the display.
func (scr *Display) Reset() {
	scr.Clear()
}

// DrawSprite XORs a sprite into the grid at the given origin. Each byte of
// the sprite is one row of eight pixels, leftmost pixel in the most
// significant bit. Pixel coordinates wrap around the display edges per bit.
//
// Returns true if any pixel was flipped from set to unset during the draw.
func (scr *Display) DrawSprite(x, y uint8, sprite []uint8) bool {
	collision := false

	for row, b := range sprite {
		py := (int(y) + row) % Scanlines
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) == 0 {
				continue
			}
			px := (int(x) + bit) % HorizPixels
			i := py*HorizPixels + px
			if scr.pixels[i] {
				collision = true
			}
			scr.pixels[i] = !scr.pixels[i]
		}
	}

	scr.dirty = true

	return collision
}

// Pixel returns the state of the pixel at the (wrapped) coordinates.
func (scr *Display) Pixel(x, y int) bool {
	return scr.pixels[(y%Scanlines)*HorizPixels+(x%HorizPixels)]
}

// Dirty is true when the buffer has changed since the last call to
// AcknowledgeDirty().
func (scr *Display) Dirty() bool {
	return scr.dirty
}

// AcknowledgeDirty is called by the renderer once it has consumed the
// buffer.
func (scr *Display) AcknowledgeDirty() {
	scr.dirty = false
}

// Snapshot returns a copy of the pixel grid, in row order. Renderers running
// in another thread must work with a snapshot, never the live buffer.
func (scr *Display) Snapshot() []bool {
	c := make([]bool, len(scr.pixels))
	copy(c, scr.pixels[:])
	return c
}
