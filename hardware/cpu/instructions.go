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

	"github.com/clint07/gopher8/curated"
)

// Operator is the decoded operation of an instruction. The enumeration is
// closed: every valid bit pattern decodes to exactly one Operator and any
// other pattern is an UnknownOpcode fault at decode time.
type Operator int

// The 35 operators of the CHIP-8. Sys (0nnn) is decoded for completeness
// but machine language routines cannot be executed.
const (
	Sys Operator = iota
	Clear
	Return
	Jump
	Call
	SkipEqual
	SkipNotEqual
	SkipEqualXY
	Load
	Add
	LoadXY
	Or
	And
	Xor
	AddXY
	SubXY
	ShiftRight
	SubYX
	ShiftLeft
	SkipNotEqualXY
	LoadIndex
	JumpV0
	Random
	Draw
	SkipKey
	SkipNotKey
	LoadFromDelay
	WaitKey
	LoadDelay
	LoadSound
	AddIndex
	LoadGlyph
	StoreBCD
	StoreRegisters
	LoadRegisters
)

// NumOperators is the number of entries in the Operator enumeration.
const NumOperators = 35

// how the operands of an instruction are presented by the String() function.
type operandFormat int

const (
	operandNone operandFormat = iota
	operandNNN
	operandX
	operandXKK
	operandXY
	operandXYN
)

// definition is the property list for each operator.
type definition struct {
	mnemonic string
	format   operandFormat
}

var definitions = map[Operator]definition{
	Sys:            {mnemonic: "SYS", format: operandNNN},
	Clear:          {mnemonic: "CLS", format: operandNone},
	Return:         {mnemonic: "RET", format: operandNone},
	Jump:           {mnemonic: "JP", format: operandNNN},
	Call:           {mnemonic: "CALL", format: operandNNN},
	SkipEqual:      {mnemonic: "SE", format: operandXKK},
	SkipNotEqual:   {mnemonic: "SNE", format: operandXKK},
	SkipEqualXY:    {mnemonic: "SE", format: operandXY},
	Load:           {mnemonic: "LD", format: operandXKK},
	Add:            {mnemonic: "ADD", format: operandXKK},
	LoadXY:         {mnemonic: "LD", format: operandXY},
	Or:             {mnemonic: "OR", format: operandXY},
	And:            {mnemonic: "AND", format: operandXY},
	Xor:            {mnemonic: "XOR", format: operandXY},
	AddXY:          {mnemonic: "ADD", format: operandXY},
	SubXY:          {mnemonic: "SUB", format: operandXY},
	ShiftRight:     {mnemonic: "SHR", format: operandX},
	SubYX:          {mnemonic: "SUBN", format: operandXY},
	ShiftLeft:      {mnemonic: "SHL", format: operandX},
	SkipNotEqualXY: {mnemonic: "SNE", format: operandXY},
	LoadIndex:      {mnemonic: "LD I,", format: operandNNN},
	JumpV0:         {mnemonic: "JP V0,", format: operandNNN},
	Random:         {mnemonic: "RND", format: operandXKK},
	Draw:           {mnemonic: "DRW", format: operandXYN},
	SkipKey:        {mnemonic: "SKP", format: operandX},
	SkipNotKey:     {mnemonic: "SKNP", format: operandX},
	LoadFromDelay:  {mnemonic: "LD DT ->", format: operandX},
	WaitKey:        {mnemonic: "LD K ->", format: operandX},
	LoadDelay:      {mnemonic: "LD DT,", format: operandX},
	LoadSound:      {mnemonic: "LD ST,", format: operandX},
	AddIndex:       {mnemonic: "ADD I,", format: operandX},
	LoadGlyph:      {mnemonic: "LD F,", format: operandX},
	StoreBCD:       {mnemonic: "LD B,", format: operandX},
	StoreRegisters: {mnemonic: "LD [I],", format: operandX},
	LoadRegisters:  {mnemonic: "LD [I] ->", format: operandX},
}

// Instruction is the result of decoding a 16-bit instruction word. The
// operand fields are all extracted regardless of which of them the operator
// actually uses.
type Instruction struct {
	// the raw instruction word.
	Opcode uint16

	Operator Operator

	// x and y register indices (second and third nibbles).
	X uint8
	Y uint8

	// fourth nibble.
	N uint8

	// low byte.
	KK uint8

	// low 12 bits.
	NNN uint16
}

func (ins Instruction) String() string {
	def := definitions[ins.Operator]
	switch def.format {
	case operandNNN:
		return fmt.Sprintf("%s $%03x", def.mnemonic, ins.NNN)
	case operandX:
		return fmt.Sprintf("%s V%X", def.mnemonic, ins.X)
	case operandXKK:
		return fmt.Sprintf("%s V%X, $%02x", def.mnemonic, ins.X, ins.KK)
	case operandXY:
		return fmt.Sprintf("%s V%X, V%X", def.mnemonic, ins.X, ins.Y)
	case operandXYN:
		return fmt.Sprintf("%s V%X, V%X, $%01x", def.mnemonic, ins.X, ins.Y, ins.N)
	}
	return def.mnemonic
}

// Sentinal error returned by Decode().
const UnknownOpcode = "cpu: unknown opcode (%#04x)"

// Decode a 16-bit instruction word. An instruction word matching no known
// pattern is an UnknownOpcode fault, never a no-op.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0f,
		Y:      uint8(opcode>>4) & 0x0f,
		N:      uint8(opcode) & 0x0f,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0fff,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode & 0x0fff {
		case 0x0e0:
			ins.Operator = Clear
		case 0x0ee:
			ins.Operator = Return
		default:
			ins.Operator = Sys
		}
	case 0x1:
		ins.Operator = Jump
	case 0x2:
		ins.Operator = Call
	case 0x3:
		ins.Operator = SkipEqual
	case 0x4:
		ins.Operator = SkipNotEqual
	case 0x5:
		if ins.N != 0 {
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		ins.Operator = SkipEqualXY
	case 0x6:
		ins.Operator = Load
	case 0x7:
		ins.Operator = Add
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = LoadXY
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = AddXY
		case 0x5:
			ins.Operator = SubXY
		case 0x6:
			ins.Operator = ShiftRight
		case 0x7:
			ins.Operator = SubYX
		case 0xe:
			ins.Operator = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0x9:
		if ins.N != 0 {
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		ins.Operator = SkipNotEqualXY
	case 0xa:
		ins.Operator = LoadIndex
	case 0xb:
		ins.Operator = JumpV0
	case 0xc:
		ins.Operator = Random
	case 0xd:
		ins.Operator = Draw
	case 0xe:
		switch ins.KK {
		case 0x9e:
			ins.Operator = SkipKey
		case 0xa1:
			ins.Operator = SkipNotKey
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0xf:
		switch ins.KK {
		case 0x07:
			ins.Operator = LoadFromDelay
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = LoadDelay
		case 0x18:
			ins.Operator = LoadSound
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = LoadGlyph
		case 0x33:
			ins.Operator = StoreBCD
		case 0x55:
			ins.Operator = StoreRegisters
		case 0x65:
			ins.Operator = LoadRegisters
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	}

	return ins, nil
}
