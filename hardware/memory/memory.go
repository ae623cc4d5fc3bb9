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

// Package memory implements the flat 4KB address space of the CHIP-8.
// Addresses are always masked into range, matching the wraparound convention
// of the original interpreter. The font table occupies the bottom of memory
// and program data is loaded at OriginProgram.
package memory

import (
	"github.com/clint07/gopher8/curated"
)

// The dimensions of the address space.
const (
	// number of addressable cells.
	Memtop = 0x1000

	// addresses are masked with AddressMask wherever memory is addressed.
	AddressMask = 0x0fff

	// program data is loaded at OriginProgram. everything below is reserved
	// for the font table.
	OriginProgram = 0x0200
)

// MaxProgramSize is the largest program that can fit in memory.
const MaxProgramSize = Memtop - OriginProgram

// Sentinal error returned by LoadProgram().
const ProgramTooLarge = "memory: program of %d bytes is too large (max %d)"

// RAM is the 4KB memory of the CHIP-8.
type RAM struct {
	internal [Memtop]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// font table is in place on return.
func NewRAM() *RAM {
	mem := &RAM{}
	mem.Reset()
	return mem
}

// Reset contents of RAM and reload the font table.
func (mem *RAM) Reset() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
	copy(mem.internal[:], fontTable[:])
}

// Read8 returns the byte at the (masked) address.
func (mem *RAM) Read8(address uint16) uint8 {
	return mem.internal[address&AddressMask]
}

// Write8 stores a byte at the (masked) address.
func (mem *RAM) Write8(address uint16, data uint8) {
	mem.internal[address&AddressMask] = data
}

// ReadInstruction returns the 16-bit big-endian instruction word at the
// (masked) address.
func (mem *RAM) ReadInstruction(address uint16) uint16 {
	return uint16(mem.Read8(address))<<8 | uint16(mem.Read8(address+1))
}

// LoadProgram copies program data into RAM starting at OriginProgram. The
// check against MaxProgramSize happens before anything is copied.
func (mem *RAM) LoadProgram(data []byte) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data), MaxProgramSize)
	}

	copy(mem.internal[OriginProgram:], data)

	return nil
}
