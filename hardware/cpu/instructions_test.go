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

package cpu_test

import (
	"testing"

	"github.com/clint07/gopher8/curated"
	"github.com/clint07/gopher8/hardware/cpu"
	"github.com/clint07/gopher8/test"
)

func TestDecodeOperands(t *testing.T) {
	ins, err := cpu.Decode(0xd1a5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == cpu.Draw, true)
	test.Equate(t, ins.X, 0x01)
	test.Equate(t, ins.Y, 0x0a)
	test.Equate(t, ins.N, 0x05)

	ins, err = cpu.Decode(0x6aff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == cpu.Load, true)
	test.Equate(t, ins.X, 0x0a)
	test.Equate(t, ins.KK, 0xff)

	ins, err = cpu.Decode(0xa123)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == cpu.LoadIndex, true)
	test.Equate(t, ins.NNN, 0x0123)
}

func TestDecodeZeroGroup(t *testing.T) {
	ins, err := cpu.Decode(0x00e0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == cpu.Clear, true)

	ins, err = cpu.Decode(0x00ee)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == cpu.Return, true)

	// any other 0nnn pattern decodes as a machine language routine
	ins, err = cpu.Decode(0x0123)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == cpu.Sys, true)
	test.Equate(t, ins.NNN, 0x0123)
}

func TestDecodeUnknown(t *testing.T) {
	// instruction words matching no known pattern
	for _, opcode := range []uint16{0x5121, 0x9121, 0x8128, 0x812f, 0xe100, 0xf100, 0xf1ff} {
		_, err := cpu.Decode(opcode)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	}
}

func TestDecodeArithmeticGroup(t *testing.T) {
	for opcode, operator := range map[uint16]cpu.Operator{
		0x8120: cpu.LoadXY,
		0x8121: cpu.Or,
		0x8122: cpu.And,
		0x8123: cpu.Xor,
		0x8124: cpu.AddXY,
		0x8125: cpu.SubXY,
		0x8126: cpu.ShiftRight,
		0x8127: cpu.SubYX,
		0x812e: cpu.ShiftLeft,
	} {
		ins, err := cpu.Decode(opcode)
		test.ExpectedSuccess(t, err)
		test.Equate(t, ins.Operator == operator, true)
	}
}

func TestDecodeMiscGroup(t *testing.T) {
	for opcode, operator := range map[uint16]cpu.Operator{
		0xe29e: cpu.SkipKey,
		0xe2a1: cpu.SkipNotKey,
		0xf207: cpu.LoadFromDelay,
		0xf20a: cpu.WaitKey,
		0xf215: cpu.LoadDelay,
		0xf218: cpu.LoadSound,
		0xf21e: cpu.AddIndex,
		0xf229: cpu.LoadGlyph,
		0xf233: cpu.StoreBCD,
		0xf255: cpu.StoreRegisters,
		0xf265: cpu.LoadRegisters,
	} {
		ins, err := cpu.Decode(opcode)
		test.ExpectedSuccess(t, err)
		test.Equate(t, ins.Operator == operator, true)
	}
}

func TestInstructionString(t *testing.T) {
	ins, err := cpu.Decode(0xd1a5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.String(), "DRW V1, VA, $5")

	ins, err = cpu.Decode(0x1234)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.String(), "JP $234")

	ins, err = cpu.Decode(0x00e0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.String(), "CLS")
}
