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

package cpu

import (
	"fmt"
	"strings"

	"github.com/clint07/gopher8/hardware/memory"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// FlagRegister is the index of VF. VF is a general purpose register but it
// is overwritten by every instruction that defines a carry, borrow or
// collision outcome.
const FlagRegister = 0x0f

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// Registers is the register file of the CHIP-8: the sixteen 8-bit V
// registers, the 16-bit index register I, the program counter and the call
// stack.
type Registers struct {
	// the program counter is even-aligned in practice. it advances by two
	// for a normal instruction and four for a taken skip.
	PC uint16

	// the index register. masked to 12 bits whenever it is used as a memory
	// address.
	I uint16

	V [NumRegisters]uint8

	// SP indicates the next free slot in the stack. values are in the range
	// [0, StackDepth].
	SP    int
	Stack [StackDepth]uint16
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	reg := &Registers{}
	reg.Reset()
	return reg
}

// Reset the register file. The program counter points at the start of
// program memory.
func (reg *Registers) Reset() {
	reg.PC = memory.OriginProgram
	reg.I = 0
	reg.SP = 0
	for i := range reg.V {
		reg.V[i] = 0
	}
	for i := range reg.Stack {
		reg.Stack[i] = 0
	}
}

func (reg Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d\n", reg.PC, reg.I, reg.SP))
	for i := range reg.V {
		s.WriteString(fmt.Sprintf("V%X=%#02x ", i, reg.V[i]))
	}
	s.WriteString("\n")
	return s.String()
}
