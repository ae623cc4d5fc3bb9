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

// Package romloader is used to specify the CHIP-8 program to load into the
// emulated machine. Programs can be loaded from the local filesystem or
// over HTTP. An empty filename asks the operating system for one with a
// native file selection dialog.
//
// The loader records the SHA1 hash of the loaded data. An expected hash can
// be set before calling Load(), in which case a mismatch is an error.
package romloader
