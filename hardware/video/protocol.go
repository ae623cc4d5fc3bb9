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

package video

// PixelRenderer implementations display, or otherwise work with, the pixels
// of the Display.
//
// The expected sequence is: check Display.Dirty(), pass Display.Snapshot()
// to the renderer and then call Display.AcknowledgeDirty(). The emulation
// never blocks on a renderer.
type PixelRenderer interface {
	// SetPixels supplies the current state of the display, HorizPixels *
	// Scanlines values in row order. The slice is a snapshot and the
	// renderer is free to keep it.
	SetPixels(pixels []bool) error
}
