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

// Package cpu implements the instruction set of the CHIP-8. The register
// file, the decoder and the executor live here. Execution is driven one
// instruction at a time with ExecuteInstruction(); the key-wait instruction
// moves the CPU into a waiting state that the host resolves by polling
// ResolveWait() as keypad input arrives.
//
// The decoder is total over the instruction set. Every instruction word
// either decodes to one of the thirty-five operators or returns an
// UnknownOpcode fault. Nothing is silently skipped.
package cpu
