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
	"github.com/clint07/gopher8/curated"
	"github.com/clint07/gopher8/hardware/input"
	"github.com/clint07/gopher8/hardware/memory"
	"github.com/clint07/gopher8/hardware/timer"
	"github.com/clint07/gopher8/hardware/video"
	"github.com/clint07/gopher8/random"
)

// Status indicates which of the two states the CPU is in.
type Status int

// List of valid Status values. The WaitingForKey state is entered by the
// key-wait instruction. While waiting, ExecuteInstruction() must not be
// called; the host loop polls ResolveWait() instead.
const (
	Running Status = iota
	WaitingForKey
)

// Sentinal errors returned by ExecuteInstruction(). None of them are raised
// by the CPU as a panic; the host decides the policy.
const (
	StackOverflow             = "cpu: stack overflow (call at %#04x)"
	StackUnderflow            = "cpu: stack underflow (return at %#04x)"
	UnsupportedMachineRoutine = "cpu: machine language routine at %#03x is not supported"
	NotRunning                = "cpu: ExecuteInstruction() called when CPU is not in the running state"
)

// CPU implements the fetch-decode-execute cycle of the CHIP-8. It owns the
// register file and mutates the memory, display, keypad and timer
// collaborators it was created with.
type CPU struct {
	Reg *Registers

	mem *memory.RAM
	scr *video.Display
	key *input.Keypad
	tmr *timer.Timer
	rnd *random.Random

	Status Status

	// the register that receives the key value that ends a WaitingForKey
	// state, and the keypad sequence number taken when the wait began.
	waitTarget uint8
	waitSeq    int

	// the most recently executed instruction. used by the host for logging.
	LastResult Instruction
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.RAM, scr *video.Display, key *input.Keypad, tmr *timer.Timer, rnd *random.Random) *CPU {
	return &CPU{
		Reg: NewRegisters(),
		mem: mem,
		scr: scr,
		key: key,
		tmr: tmr,
		rnd: rnd,
	}
}

// Reset the CPU.
func (mc *CPU) Reset() {
	mc.Reg.Reset()
	mc.Status = Running
	mc.LastResult = Instruction{}
}

// ResolveWait checks the keypad for a key pressed since the wait began. If
// one is found its value is stored in the waiting register and the CPU
// returns to the running state.
//
// Returns true if the wait has been resolved. Calling ResolveWait() on a
// CPU that is not waiting returns true immediately.
func (mc *CPU) ResolveWait() bool {
	if mc.Status != WaitingForKey {
		return true
	}

	key, ok := mc.key.PressedSince(mc.waitSeq)
	if !ok {
		return false
	}

	mc.Reg.V[mc.waitTarget] = key
	mc.Status = Running

	return true
}

// ExecuteInstruction fetches the instruction word at PC, decodes it and
// executes it. The program counter is advanced by the instruction itself:
// by two normally, by four for a taken skip and not at all for the jump
// instructions, which replace PC entirely.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Status != Running {
		return curated.Errorf(NotRunning)
	}

	opcode := mc.mem.ReadInstruction(mc.Reg.PC)

	ins, err := Decode(opcode)
	if err != nil {
		return err
	}
	mc.LastResult = ins

	switch ins.Operator {
	case Sys:
		return curated.Errorf(UnsupportedMachineRoutine, ins.NNN)

	case Clear:
		mc.scr.Clear()
		mc.Reg.PC += 2

	case Return:
		if mc.Reg.SP <= 0 {
			return curated.Errorf(StackUnderflow, mc.Reg.PC)
		}
		mc.Reg.SP--
		mc.Reg.PC = mc.Reg.Stack[mc.Reg.SP] + 2

	case Jump:
		mc.Reg.PC = ins.NNN

	case Call:
		if mc.Reg.SP >= StackDepth {
			return curated.Errorf(StackOverflow, mc.Reg.PC)
		}
		mc.Reg.Stack[mc.Reg.SP] = mc.Reg.PC
		mc.Reg.SP++
		mc.Reg.PC = ins.NNN

	case SkipEqual:
		mc.skip(mc.Reg.V[ins.X] == ins.KK)

	case SkipNotEqual:
		mc.skip(mc.Reg.V[ins.X] != ins.KK)

	case SkipEqualXY:
		mc.skip(mc.Reg.V[ins.X] == mc.Reg.V[ins.Y])

	case SkipNotEqualXY:
		mc.skip(mc.Reg.V[ins.X] != mc.Reg.V[ins.Y])

	case Load:
		mc.Reg.V[ins.X] = ins.KK
		mc.Reg.PC += 2

	case Add:
		// no flag outcome for the immediate form of add
		mc.Reg.V[ins.X] += ins.KK
		mc.Reg.PC += 2

	case LoadXY:
		mc.Reg.V[ins.X] = mc.Reg.V[ins.Y]
		mc.Reg.PC += 2

	case Or:
		mc.Reg.V[ins.X] |= mc.Reg.V[ins.Y]
		mc.Reg.PC += 2

	case And:
		mc.Reg.V[ins.X] &= mc.Reg.V[ins.Y]
		mc.Reg.PC += 2

	case Xor:
		mc.Reg.V[ins.X] ^= mc.Reg.V[ins.Y]
		mc.Reg.PC += 2

	// for all the ALU instructions with a flag outcome the flag is computed
	// from the pre-mutation operands and written after the result. the
	// destination register may itself be VF, in which case the flag must
	// win
	case AddXY:
		sum := uint16(mc.Reg.V[ins.X]) + uint16(mc.Reg.V[ins.Y])
		mc.Reg.V[ins.X] = uint8(sum)
		mc.setFlag(sum > 255)
		mc.Reg.PC += 2

	case SubXY:
		noBorrow := mc.Reg.V[ins.X] > mc.Reg.V[ins.Y]
		mc.Reg.V[ins.X] = mc.Reg.V[ins.X] - mc.Reg.V[ins.Y]
		mc.setFlag(noBorrow)
		mc.Reg.PC += 2

	case SubYX:
		noBorrow := mc.Reg.V[ins.Y] > mc.Reg.V[ins.X]
		mc.Reg.V[ins.X] = mc.Reg.V[ins.Y] - mc.Reg.V[ins.X]
		mc.setFlag(noBorrow)
		mc.Reg.PC += 2

	case ShiftRight:
		lsb := mc.Reg.V[ins.X] & 0x01
		mc.Reg.V[ins.X] >>= 1
		mc.setFlag(lsb == 0x01)
		mc.Reg.PC += 2

	case ShiftLeft:
		msb := (mc.Reg.V[ins.X] >> 7) & 0x01
		mc.Reg.V[ins.X] <<= 1
		mc.setFlag(msb == 0x01)
		mc.Reg.PC += 2

	case LoadIndex:
		mc.Reg.I = ins.NNN
		mc.Reg.PC += 2

	case JumpV0:
		mc.Reg.PC = uint16(mc.Reg.V[0]) + ins.NNN

	case Random:
		mc.Reg.V[ins.X] = ins.KK & mc.rnd.Uint8()
		mc.Reg.PC += 2

	case Draw:
		sprite := make([]uint8, ins.N)
		for i := range sprite {
			sprite[i] = mc.mem.Read8(mc.Reg.I + uint16(i))
		}
		collision := mc.scr.DrawSprite(mc.Reg.V[ins.X], mc.Reg.V[ins.Y], sprite)
		mc.setFlag(collision)
		mc.Reg.PC += 2

	case SkipKey:
		mc.skip(mc.key.IsDown(mc.Reg.V[ins.X]))

	case SkipNotKey:
		mc.skip(!mc.key.IsDown(mc.Reg.V[ins.X]))

	case LoadFromDelay:
		mc.Reg.V[ins.X] = mc.tmr.Delay
		mc.Reg.PC += 2

	case WaitKey:
		// suspend the instruction stream. execution continues from the
		// already-incremented PC once ResolveWait() observes a new press
		mc.Status = WaitingForKey
		mc.waitTarget = ins.X
		mc.waitSeq = mc.key.PressSeq()
		mc.Reg.PC += 2

	case LoadDelay:
		mc.tmr.Delay = mc.Reg.V[ins.X]
		mc.Reg.PC += 2

	case LoadSound:
		mc.tmr.Sound = mc.Reg.V[ins.X]
		mc.Reg.PC += 2

	case AddIndex:
		mc.Reg.I = (mc.Reg.I + uint16(mc.Reg.V[ins.X])) & memory.AddressMask
		mc.Reg.PC += 2

	case LoadGlyph:
		mc.Reg.I = memory.GlyphAddress(mc.Reg.V[ins.X])
		mc.Reg.PC += 2

	case StoreBCD:
		v := mc.Reg.V[ins.X]
		mc.mem.Write8(mc.Reg.I, v/100)
		mc.mem.Write8(mc.Reg.I+1, (v/10)%10)
		mc.mem.Write8(mc.Reg.I+2, v%10)
		mc.Reg.PC += 2

	case StoreRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			mc.mem.Write8(mc.Reg.I+i, mc.Reg.V[i])
		}
		mc.Reg.PC += 2

	case LoadRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			mc.Reg.V[i] = mc.mem.Read8(mc.Reg.I + i)
		}
		mc.Reg.PC += 2

	default:
		// the Operator enumeration is closed. Decode() has already faulted
		// on anything unknown
		return curated.Errorf(UnknownOpcode, opcode)
	}

	return nil
}

// advance PC by four when the skip condition holds, by two otherwise.
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.Reg.PC += 4
	} else {
		mc.Reg.PC += 2
	}
}

// write the flag outcome to VF. always the last mutation of an instruction
// that defines a flag outcome.
func (mc *CPU) setFlag(flag bool) {
	if flag {
		mc.Reg.V[FlagRegister] = 1
	} else {
		mc.Reg.V[FlagRegister] = 0
	}
}
