package cpu

import (
	"github.com/thelolagemann/go-sm83/internal/types"
	"github.com/thelolagemann/go-sm83/pkg/log"
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT.
	ModeHalt
	// ModeStop is entered by STOP.
	ModeStop
	// ModeLocked is entered by executing an illegal opcode. The CPU
	// stays locked until it is Reset.
	ModeLocked
)

// CPU executes SM83 instructions against a Storage. It does not fetch
// opcodes itself, the caller reads the byte at PC and hands it to
// Execute.
type CPU struct {
	*Storage

	// IME is the interrupt master enable flag.
	IME bool
	// imeDelay counts down the instructions left before a pending EI
	// takes effect.
	imeDelay uint8

	mode         mode
	instructions uint64
	cycles       uint64

	Log log.Logger

	Debug           bool
	DebugBreakpoint bool
}

// instruction is a decoded opcode together with its immediate operand,
// read before PC is advanced past it.
type instruction struct {
	Descriptor
	n8  uint8
	n16 uint16
}

// NewCPU creates a new CPU operating on the given Storage. A nil
// logger discards all output.
func NewCPU(s *Storage, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &CPU{
		Storage: s,
		Log:     logger,
	}
}

// Execute runs a single instruction. opcode must be the byte at PC,
// any operands are read from the bytes that follow it. PC is moved past
// the instruction before it runs, so jumps overwrite it and relative
// jumps are taken from the next instruction.
func (c *CPU) Execute(opcode uint8) {
	if c.mode == ModeLocked {
		return
	}
	c.mode = ModeNormal

	at := c.PC
	d := Decode(opcode)
	if d.Op == OpPrefix {
		d = DecodeCB(c.FetchByte(at + 1))
	}
	if d.Op == OpInvalid {
		c.mode = ModeLocked
		c.Log.Errorf("cpu: illegal opcode 0x%02X at 0x%04X, locking up", opcode, at)
		return
	}

	in := instruction{Descriptor: d}
	if !d.Prefixed {
		switch d.Length {
		case 2:
			in.n8 = c.FetchByte(at + 1)
		case 3:
			in.n16 = c.FetchWord(at + 1)
		}
	}
	c.PC += uint16(d.Length)

	var taken bool
	if d.Prefixed {
		c.executeCB(in)
	} else {
		switch d.Block {
		case 0:
			taken = c.executeBlock0(in)
		case 1:
			c.executeBlock1(in)
		case 2:
			c.alu(d.Op, c.R8(d.Src))
		case 3:
			taken = c.executeBlock3(in)
		}
	}

	c.instructions++
	c.cycles += uint64(d.Cycles)
	if taken {
		c.cycles += uint64(d.Taken)
	}

	if c.imeDelay > 0 {
		c.imeDelay--
		if c.imeDelay == 0 {
			c.IME = true
		}
	}

	if c.Debug {
		c.Log.Debugf("%04X %-16s %s", at, d, c.Storage)
		if d.Op == OpLdR8R8 && d.Dst == B && d.Src == B {
			c.DebugBreakpoint = true
		}
	}
}

func (c *CPU) executeBlock0(in instruction) bool {
	switch in.Op {
	case OpNop:
	case OpStop:
		c.mode = ModeStop
	case OpLdR16N16:
		c.setR16(in.Pair, in.n16)
	case OpLdMemA:
		c.SetByte(c.memPair(in.Pair), c.A)
	case OpLdAMem:
		c.A = c.FetchByte(c.memPair(in.Pair))
	case OpLdA16SP:
		c.SetWord(in.n16, c.SP)
	case OpIncR16:
		c.setR16(in.Pair, c.r16(in.Pair)+1)
	case OpDecR16:
		c.setR16(in.Pair, c.r16(in.Pair)-1)
	case OpAddHLR16:
		c.addHL(c.r16(in.Pair))
	case OpIncR8:
		c.SetR8(in.Dst, c.increment(c.R8(in.Dst)))
	case OpDecR8:
		c.SetR8(in.Dst, c.decrement(c.R8(in.Dst)))
	case OpLdR8N8:
		c.SetR8(in.Dst, in.n8)
	case OpJr:
		c.jumpRelative(in.n8)
	case OpJrCond:
		if c.condition(in.Cond) {
			c.jumpRelative(in.n8)
			return true
		}
	case OpRlca:
		c.A = c.rotateLeftCarry(c.A)
		c.ClearFlag(FlagZero)
	case OpRrca:
		c.A = c.rotateRightCarry(c.A)
		c.ClearFlag(FlagZero)
	case OpRla:
		c.A = c.rotateLeftThroughCarry(c.A)
		c.ClearFlag(FlagZero)
	case OpRra:
		c.A = c.rotateRightThroughCarry(c.A)
		c.ClearFlag(FlagZero)
	case OpDaa:
		c.decimalAdjust()
	case OpCpl:
		c.complement()
	case OpScf:
		c.setCarryFlag()
	case OpCcf:
		c.complementCarryFlag()
	}
	return false
}

// executeBlock1 handles the register to register loads. HALT sits where
// LD (HL), (HL) would be and never touches memory.
func (c *CPU) executeBlock1(in instruction) {
	if in.Op == OpHalt {
		c.mode = ModeHalt
		return
	}
	c.SetR8(in.Dst, c.R8(in.Src))
}

func (c *CPU) executeBlock3(in instruction) bool {
	switch in.Op {
	case OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp:
		c.alu(in.Op, in.n8)
	case OpRet:
		c.ret()
	case OpRetCond:
		if c.condition(in.Cond) {
			c.ret()
			return true
		}
	case OpReti:
		c.ret()
		c.IME = true
	case OpPop:
		c.pop(in.Pair)
	case OpPush:
		c.push(in.Pair)
	case OpJp:
		c.PC = in.n16
	case OpJpCond:
		if c.condition(in.Cond) {
			c.PC = in.n16
			return true
		}
	case OpJpHL:
		c.PC = c.HL.Uint16()
	case OpCall:
		c.call(in.n16)
	case OpCallCond:
		if c.condition(in.Cond) {
			c.call(in.n16)
			return true
		}
	case OpRst:
		c.call(uint16(in.Index) * 8)
	case OpLdhA8A:
		c.SetByte(0xFF00|uint16(in.n8), c.A)
	case OpLdhCA:
		c.SetByte(0xFF00|uint16(c.C), c.A)
	case OpLdA16A:
		c.SetByte(in.n16, c.A)
	case OpLdhAA8:
		c.A = c.FetchByte(0xFF00 | uint16(in.n8))
	case OpLdhAC:
		c.A = c.FetchByte(0xFF00 | uint16(c.C))
	case OpLdAA16:
		c.A = c.FetchByte(in.n16)
	case OpAddSPE8:
		c.SP = c.addSPSigned(in.n8)
	case OpLdHLSPE8:
		c.HL.SetUint16(c.addSPSigned(in.n8))
	case OpLdSPHL:
		c.SP = c.HL.Uint16()
	case OpDi:
		c.IME = false
		c.imeDelay = 0
	case OpEi:
		// counted down once at the end of this instruction, and once
		// more after the next
		c.imeDelay = 2
	}
	return false
}

func (c *CPU) executeCB(in instruction) {
	value := c.R8(in.Src)
	switch in.Op {
	case OpRlc:
		value = c.rotateLeftCarry(value)
	case OpRrc:
		value = c.rotateRightCarry(value)
	case OpRl:
		value = c.rotateLeftThroughCarry(value)
	case OpRr:
		value = c.rotateRightThroughCarry(value)
	case OpSla:
		value = c.shiftLeftArithmetic(value)
	case OpSra:
		value = c.shiftRightArithmetic(value)
	case OpSwap:
		value = c.swap(value)
	case OpSrl:
		value = c.shiftRightLogical(value)
	case OpBit:
		c.testBit(value, in.Index)
		return
	case OpRes:
		value = c.resetBit(value, in.Index)
	case OpSet:
		value = c.setBit(value, in.Index)
	}
	c.SetR8(in.Src, value)
}

// condition reports whether the branch condition currently holds.
func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.IsFlagSet(FlagZero)
	case CondZ:
		return c.IsFlagSet(FlagZero)
	case CondNC:
		return !c.IsFlagSet(FlagCarry)
	case CondC:
		return c.IsFlagSet(FlagCarry)
	}
	return true
}

// Instructions returns the number of instructions executed since the
// last Reset.
func (c *CPU) Instructions() uint64 {
	return c.instructions
}

// Cycles returns the number of M-cycles spent since the last Reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Halted reports whether the last instruction executed was HALT.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Stopped reports whether the last instruction executed was STOP.
func (c *CPU) Stopped() bool {
	return c.mode == ModeStop
}

// Locked reports whether an illegal opcode has locked up the CPU.
func (c *CPU) Locked() bool {
	return c.mode == ModeLocked
}

// Reset returns the CPU and its registers to their power on state.
// Memory is left as is.
func (c *CPU) Reset() {
	c.Storage.Reset()
	c.IME = false
	c.imeDelay = 0
	c.mode = ModeNormal
	c.instructions = 0
	c.cycles = 0
	c.DebugBreakpoint = false
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.Storage.Load(s)
	c.IME = s.ReadBool()
	c.imeDelay = s.Read8()
	c.mode = s.Read8()
	c.instructions = s.Read64()
	c.cycles = s.Read64()
}

func (c *CPU) Save(s *types.State) {
	c.Storage.Save(s)
	s.WriteBool(c.IME)
	s.Write8(c.imeDelay)
	s.Write8(c.mode)
	s.Write64(c.instructions)
	s.Write64(c.cycles)
}
