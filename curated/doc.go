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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like the
// Errorf() function from the fmt package except that the format string
// doubles as an identifying pattern:
//
//	e := curated.Errorf("frame: %v", err)
//
//	if curated.Is(e, "frame: %v") {
//		fmt.Println("true")
//	}
//
// Packages that want their errors to be identifiable by callers should
// declare the pattern as an exported const.
//
// The Has() function is like Is() but checks for the pattern anywhere in the
// error chain, rather than just the outermost error.
package curated
