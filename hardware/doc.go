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

// Package hardware assembles the computer components of the CHIP-8 into a
// single Chip8 type. The sub-packages do the work of emulating each
// component; this package connects them together and provides the Run() and
// Step() functions that drive the machine.
//
// The machine knows nothing about the world outside of it. Video output,
// sound output and keypad input travel through the narrow interfaces and
// types of the video, audio and input packages. Hosts that want to present
// the machine to a user should look at the playmode package.
package hardware
