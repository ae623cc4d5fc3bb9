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
	"github.com/clint07/gopher8/hardware/input"
	"github.com/clint07/gopher8/hardware/memory"
	"github.com/clint07/gopher8/hardware/timer"
	"github.com/clint07/gopher8/hardware/video"
	"github.com/clint07/gopher8/random"
	"github.com/clint07/gopher8/test"
)

type testMachine struct {
	mc  *cpu.CPU
	mem *memory.RAM
	scr *video.Display
	key *input.Keypad
	tmr *timer.Timer
}

func newTestMachine(t *testing.T, program ...uint8) *testMachine {
	t.Helper()

	tm := &testMachine{
		mem: memory.NewRAM(),
		scr: video.NewDisplay(),
		key: input.NewKeypad(),
		tmr: timer.NewTimer(),
	}
	tm.mc = cpu.NewCPU(tm.mem, tm.scr, tm.key, tm.tmr, random.NewZeroSeed())
	tm.mc.Reset()

	if len(program) > 0 {
		err := tm.mem.LoadProgram(program)
		test.ExpectedSuccess(t, err)
	}

	return tm
}

func (tm *testMachine) step(t *testing.T) {
	t.Helper()
	err := tm.mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)
}

func TestJump(t *testing.T) {
	tm := newTestMachine(t, 0x13, 0x45)
	tm.step(t)

	// jump replaces PC exactly. no implicit increment afterwards
	test.Equate(t, tm.mc.Reg.PC, 0x0345)
}

func TestCallReturn(t *testing.T) {
	// 0x200: CALL 0x206
	// 0x206: RET
	tm := newTestMachine(t, 0x22, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0xee)

	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0206)
	test.Equate(t, tm.mc.Reg.SP, 1)
	test.Equate(t, tm.mc.Reg.Stack[0], 0x0200)

	tm.step(t)

	// execution resumes at the instruction after the call
	test.Equate(t, tm.mc.Reg.PC, 0x0202)
	test.Equate(t, tm.mc.Reg.SP, 0)
}

func TestStackOverflow(t *testing.T) {
	// CALL 0x200. an infinite loop of calls
	tm := newTestMachine(t, 0x22, 0x00)

	for i := 0; i < cpu.StackDepth; i++ {
		tm.step(t)
	}

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackOverflow))
}

func TestStackUnderflow(t *testing.T) {
	tm := newTestMachine(t, 0x00, 0xee)

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
}

func TestUnknownOpcode(t *testing.T) {
	tm := newTestMachine(t, 0x80, 0x08)

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnknownOpcode))
}

func TestMachineRoutineFault(t *testing.T) {
	tm := newTestMachine(t, 0x01, 0x23)

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnsupportedMachineRoutine))
}

func TestSkips(t *testing.T) {
	// SE V0, 0x42 with V0 == 0x42. skip taken
	tm := newTestMachine(t, 0x30, 0x42)
	tm.mc.Reg.V[0] = 0x42
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0204)

	// SE V0, 0x42 with V0 != 0x42. skip not taken
	tm = newTestMachine(t, 0x30, 0x42)
	tm.mc.Reg.V[0] = 0x00
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0202)

	// SNE V0, 0x42 with V0 != 0x42
	tm = newTestMachine(t, 0x40, 0x42)
	tm.mc.Reg.V[0] = 0x00
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0204)

	// SE V0, V1
	tm = newTestMachine(t, 0x50, 0x10)
	tm.mc.Reg.V[0] = 0x07
	tm.mc.Reg.V[1] = 0x07
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0204)

	// SNE V0, V1 with equal registers. skip not taken
	tm = newTestMachine(t, 0x90, 0x10)
	tm.mc.Reg.V[0] = 0x07
	tm.mc.Reg.V[1] = 0x07
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0202)
}

func TestAddCarry(t *testing.T) {
	// ADD V0, V1 with no carry
	tm := newTestMachine(t, 0x80, 0x14)
	tm.mc.Reg.V[0] = 0x10
	tm.mc.Reg.V[1] = 0x20
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x30)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 0)

	// ADD V0, V1 with carry. result wraps modulo 256
	tm = newTestMachine(t, 0x80, 0x14)
	tm.mc.Reg.V[0] = 0xff
	tm.mc.Reg.V[1] = 0x02
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x01)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 1)
}

func TestFlagWrittenLast(t *testing.T) {
	// ADD VF, V1 with carry. VF is the destination but the flag outcome
	// must survive
	tm := newTestMachine(t, 0x8f, 0x14)
	tm.mc.Reg.V[cpu.FlagRegister] = 0xff
	tm.mc.Reg.V[1] = 0x02
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 1)

	// SUB V1, VF. flag computed from the operand values before mutation
	tm = newTestMachine(t, 0x81, 0xf5)
	tm.mc.Reg.V[1] = 0x05
	tm.mc.Reg.V[cpu.FlagRegister] = 0x03
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[1], 0x02)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 1)
}

func TestSubBorrow(t *testing.T) {
	// SUB V0, V1 with V0 < V1. borrow, so VF == 0
	tm := newTestMachine(t, 0x80, 0x15)
	tm.mc.Reg.V[0] = 0x01
	tm.mc.Reg.V[1] = 0x02
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0xff)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 0)

	// SUBN V0, V1. V0 = V1 - V0
	tm = newTestMachine(t, 0x80, 0x17)
	tm.mc.Reg.V[0] = 0x01
	tm.mc.Reg.V[1] = 0x03
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x02)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 1)
}

func TestShifts(t *testing.T) {
	// SHR V0. bit shifted out goes to VF
	tm := newTestMachine(t, 0x80, 0x06)
	tm.mc.Reg.V[0] = 0x05
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x02)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 1)

	// SHL V0
	tm = newTestMachine(t, 0x80, 0x0e)
	tm.mc.Reg.V[0] = 0x81
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x02)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 1)
}

func TestImmediateAddNoFlag(t *testing.T) {
	// ADD V0, 0xff overflows but the immediate form never touches VF
	tm := newTestMachine(t, 0x70, 0xff)
	tm.mc.Reg.V[0] = 0x02
	tm.mc.Reg.V[cpu.FlagRegister] = 0x55
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x01)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 0x55)
}

func TestLogicalOps(t *testing.T) {
	tm := newTestMachine(t, 0x80, 0x11, 0x80, 0x12, 0x80, 0x13)

	tm.mc.Reg.V[0] = 0xf0
	tm.mc.Reg.V[1] = 0x0f
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0xff)

	tm.mc.Reg.V[0] = 0xf0
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x00)

	tm.mc.Reg.V[0] = 0xff
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0xf0)
}

func TestJumpV0(t *testing.T) {
	tm := newTestMachine(t, 0xb3, 0x00)
	tm.mc.Reg.V[0] = 0x21
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0321)
}

func TestRandomMask(t *testing.T) {
	// RND V0, 0x00. whatever the random value, the mask forces zero
	tm := newTestMachine(t, 0xc0, 0x00)
	tm.mc.Reg.V[0] = 0xff
	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x00)
	test.Equate(t, tm.mc.Reg.PC, 0x0202)
}

func TestDrawCollision(t *testing.T) {
	// two identical draws at the same location. the second erases and
	// collides
	tm := newTestMachine(t, 0xd0, 0x11, 0xd0, 0x11)
	tm.mc.Reg.I = memory.GlyphAddress(0)
	tm.mc.Reg.V[0] = 4
	tm.mc.Reg.V[1] = 2

	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 0)
	test.Equate(t, tm.scr.Pixel(4, 2), true)

	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[cpu.FlagRegister], 1)
	test.Equate(t, tm.scr.Pixel(4, 2), false)
}

func TestTimerInstructions(t *testing.T) {
	// LD V0, DT / LD DT, V1 / LD ST, V1
	tm := newTestMachine(t, 0xf0, 0x07, 0xf1, 0x15, 0xf1, 0x18)
	tm.tmr.Delay = 0x33
	tm.mc.Reg.V[1] = 0x44

	tm.step(t)
	test.Equate(t, tm.mc.Reg.V[0], 0x33)

	tm.step(t)
	test.Equate(t, tm.tmr.Delay, 0x44)

	tm.step(t)
	test.Equate(t, tm.tmr.Sound, 0x44)
}

func TestAddIndexMask(t *testing.T) {
	tm := newTestMachine(t, 0xf0, 0x1e)
	tm.mc.Reg.I = 0x0fff
	tm.mc.Reg.V[0] = 0x02

	tm.step(t)
	test.Equate(t, tm.mc.Reg.I, 0x0001)
}

func TestLoadGlyph(t *testing.T) {
	tm := newTestMachine(t, 0xf0, 0x29)
	tm.mc.Reg.V[0] = 0x0a
	tm.step(t)
	test.Equate(t, tm.mc.Reg.I, 0x0a*memory.GlyphSize)
}

func TestStoreBCD(t *testing.T) {
	tm := newTestMachine(t, 0xf0, 0x33)
	tm.mc.Reg.V[0] = 254
	tm.mc.Reg.I = 0x0400

	tm.step(t)
	test.Equate(t, tm.mem.Read8(0x0400), 2)
	test.Equate(t, tm.mem.Read8(0x0401), 5)
	test.Equate(t, tm.mem.Read8(0x0402), 4)
}

func TestRegisterFileRoundTrip(t *testing.T) {
	// LD [I], V7 then LD V7, [I] with the registers cleared in between
	tm := newTestMachine(t, 0xf7, 0x55, 0xf7, 0x65)
	for i := uint8(0); i <= 7; i++ {
		tm.mc.Reg.V[i] = i * 11
	}
	tm.mc.Reg.V[8] = 0xee
	tm.mc.Reg.I = 0x0500

	tm.step(t)

	for i := uint8(0); i <= 7; i++ {
		tm.mc.Reg.V[i] = 0
	}

	tm.step(t)
	for i := 0; i <= 7; i++ {
		test.Equate(t, tm.mc.Reg.V[i], i*11)
	}

	// registers past X are untouched in both directions
	test.Equate(t, tm.mc.Reg.V[8], 0xee)
	test.Equate(t, tm.mem.Read8(0x0508), 0)

	// I is not modified
	test.Equate(t, tm.mc.Reg.I, 0x0500)
}

func TestWaitKey(t *testing.T) {
	tm := newTestMachine(t, 0xf3, 0x0a)

	// a key held before the wait begins must not resolve it
	tm.key.Press(0x05)

	tm.step(t)
	test.Equate(t, tm.mc.Status == cpu.WaitingForKey, true)
	test.Equate(t, tm.mc.Reg.PC, 0x0202)

	// executing while waiting is a fault
	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.NotRunning))

	test.Equate(t, tm.mc.ResolveWait(), false)

	tm.key.Press(0x0b)
	test.Equate(t, tm.mc.ResolveWait(), true)
	test.Equate(t, tm.mc.Reg.V[3], 0x0b)
	test.Equate(t, tm.mc.Status == cpu.Running, true)
}

func TestClearDisplay(t *testing.T) {
	tm := newTestMachine(t, 0x00, 0xe0)
	tm.scr.DrawSprite(0, 0, []uint8{0xff})

	tm.step(t)
	test.Equate(t, tm.scr.Pixel(0, 0), false)
	test.Equate(t, tm.mc.Reg.PC, 0x0202)
}

func TestSkipKey(t *testing.T) {
	// SKP V0 with the key down
	tm := newTestMachine(t, 0xe0, 0x9e)
	tm.mc.Reg.V[0] = 0x04
	tm.key.Press(0x04)
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0204)

	// SKNP V0 with the key down. skip not taken
	tm = newTestMachine(t, 0xe0, 0xa1)
	tm.mc.Reg.V[0] = 0x04
	tm.key.Press(0x04)
	tm.step(t)
	test.Equate(t, tm.mc.Reg.PC, 0x0202)
}
