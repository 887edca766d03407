package cpu

import (
	"fmt"
	"strings"
)

// Condition is the branch condition encoded in bits 4-3 of the
// conditional control flow opcodes.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
	// CondAlways marks an unconditional branch.
	CondAlways
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return ""
}

// Descriptor is the structured form of an opcode. All the bit slicing
// needed to execute an instruction happens when building it, the engine
// only switches on the result.
//
//	00 000 000
//	^^ ^^^ ^^^
//	bl dst src
type Descriptor struct {
	Opcode uint8
	// Block is selected by bits 7-6.
	Block uint8
	Op    Operation

	// Dst and Src are the 8-bit operands, from bits 5-3 and 2-0.
	Dst R8
	Src R8
	// Pair is the 16-bit operand from bits 5-4. For PUSH and POP,
	// SP stands in for AF. For the (r16) loads, HL and SP stand in
	// for (HL+) and (HL-).
	Pair R16
	Cond Condition
	// Index is bits 5-3 taken as a number: the bit for BIT/RES/SET
	// and the vector (Index*8) for RST.
	Index uint8
	// Immediate is set for the ALU operations on an 8-bit operand.
	Immediate bool
	Prefixed  bool

	// Length is the instruction's size in bytes, including the
	// prefix and operands.
	Length uint8
	// Cycles is the cost in M-cycles, Taken the extra M-cycles spent
	// when a conditional branch is taken.
	Cycles uint8
	Taken  uint8
}

// aluOps maps bits 5-3 of a block 2 (or ALU n8) opcode to its operation.
var aluOps = [8]Operation{OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp}

// accumulatorOps maps bits 5-3 of a block 0 opcode ending in 111.
var accumulatorOps = [8]Operation{OpRlca, OpRrca, OpRla, OpRra, OpDaa, OpCpl, OpScf, OpCcf}

// cbOps maps bits 5-3 of a block 0 CB-prefixed opcode.
var cbOps = [8]Operation{OpRlc, OpRrc, OpRl, OpRr, OpSla, OpSra, OpSwap, OpSrl}

var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// cycles holds the M-cycle cost of each opcode, with conditional branches
// not taken. 0xCB is costed by the prefixed table.
var cycles = [256]uint8{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
}

// Decode slices an unprefixed opcode into its Descriptor.
func Decode(opcode uint8) Descriptor {
	d := Descriptor{
		Opcode: opcode,
		Block:  opcode >> 6 & 0x3,
		Dst:    R8FromBits(opcode >> 3),
		Src:    R8FromBits(opcode),
		Pair:   R16FromBits(opcode >> 4),
		Cond:   Condition(opcode >> 3 & 0x3),
		Index:  opcode >> 3 & 0x7,
		Length: 1,
		Cycles: cycles[opcode],
	}

	switch d.Block {
	case 0:
		decodeBlock0(&d)
	case 1:
		decodeBlock1(&d)
	case 2:
		d.Op = aluOps[d.Index]
	case 3:
		decodeBlock3(&d)
	}

	return d
}

// decodeBlock0 classifies 0x00-0x3F: first the two exact opcodes, then
// by the low 3 bits, and whatever remains by the low nibble.
func decodeBlock0(d *Descriptor) {
	switch {
	case d.Opcode == 0x00:
		d.Op = OpNop
		return
	case d.Opcode == 0x10:
		d.Op = OpStop
		d.Length = 2
		return
	}

	switch d.Opcode & 0x7 {
	case 0x7: // accumulator rotates and flag ops
		d.Op = accumulatorOps[d.Index]
		return
	case 0x0: // relative jumps, and LD (a16), SP which shares the pattern
		switch {
		case d.Opcode == 0x08:
			d.Op = OpLdA16SP
			d.Length = 3
		case d.Opcode == 0x18:
			d.Op = OpJr
			d.Cond = CondAlways
			d.Length = 2
		default:
			d.Op = OpJrCond
			d.Cond = Condition(d.Opcode >> 3 & 0x3)
			d.Length = 2
			d.Taken = 1
		}
		return
	case 0x6:
		d.Op = OpLdR8N8
		d.Length = 2
		return
	}

	switch d.Opcode & 0xF {
	case 0x1:
		d.Op = OpLdR16N16
		d.Length = 3
	case 0x2:
		d.Op = OpLdMemA
	case 0xA:
		d.Op = OpLdAMem
	case 0x3:
		d.Op = OpIncR16
	case 0xB:
		d.Op = OpDecR16
	case 0x9:
		d.Op = OpAddHLR16
	case 0x4, 0xC:
		d.Op = OpIncR8
	case 0x5, 0xD:
		d.Op = OpDecR8
	}
}

// decodeBlock1 handles 0x40-0x7F. The (HL) to (HL) load is HALT.
func decodeBlock1(d *Descriptor) {
	if d.Dst == IndirectHL && d.Src == IndirectHL {
		d.Op = OpHalt
		return
	}
	d.Op = OpLdR8R8
}

func decodeBlock3(d *Descriptor) {
	for _, o := range disallowedOpcodes {
		if d.Opcode == o {
			d.Op = OpInvalid
			return
		}
	}

	switch d.Opcode {
	case 0xC3:
		d.Op, d.Cond, d.Length = OpJp, CondAlways, 3
	case 0xC9:
		d.Op, d.Cond = OpRet, CondAlways
	case 0xCB:
		d.Op, d.Length = OpPrefix, 2
	case 0xCD:
		d.Op, d.Cond, d.Length = OpCall, CondAlways, 3
	case 0xD9:
		d.Op, d.Cond = OpReti, CondAlways
	case 0xE0:
		d.Op, d.Length = OpLdhA8A, 2
	case 0xE2:
		d.Op = OpLdhCA
	case 0xE8:
		d.Op, d.Length = OpAddSPE8, 2
	case 0xE9:
		d.Op, d.Cond = OpJpHL, CondAlways
	case 0xEA:
		d.Op, d.Length = OpLdA16A, 3
	case 0xF0:
		d.Op, d.Length = OpLdhAA8, 2
	case 0xF2:
		d.Op = OpLdhAC
	case 0xF3:
		d.Op = OpDi
	case 0xF8:
		d.Op, d.Length = OpLdHLSPE8, 2
	case 0xF9:
		d.Op = OpLdSPHL
	case 0xFA:
		d.Op, d.Length = OpLdAA16, 3
	case 0xFB:
		d.Op = OpEi
	default:
		switch d.Opcode & 0x7 {
		case 0:
			d.Op, d.Taken = OpRetCond, 3
		case 1:
			d.Op = OpPop
		case 2:
			d.Op, d.Length, d.Taken = OpJpCond, 3, 1
		case 4:
			d.Op, d.Length, d.Taken = OpCallCond, 3, 3
		case 5:
			d.Op = OpPush
		case 6:
			d.Op = aluOps[d.Index]
			d.Immediate = true
			d.Length = 2
		case 7:
			d.Op = OpRst
		}
	}
}

// DecodeCB slices the opcode following a 0xCB prefix.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func DecodeCB(opcode uint8) Descriptor {
	d := Descriptor{
		Opcode:   opcode,
		Block:    opcode >> 6 & 0x3,
		Dst:      R8FromBits(opcode),
		Src:      R8FromBits(opcode),
		Index:    opcode >> 3 & 0x7,
		Prefixed: true,
		Length:   2,
		Cycles:   2,
	}

	switch d.Block {
	case 0:
		d.Op = cbOps[d.Index]
	case 1:
		d.Op = OpBit
	case 2:
		d.Op = OpRes
	case 3:
		d.Op = OpSet
	}

	if d.Src == IndirectHL {
		if d.Op == OpBit {
			d.Cycles = 3
		} else {
			d.Cycles = 4
		}
	}

	return d
}

// String returns the mnemonic of the instruction, with immediate operands
// shown by their kind (n8, n16, e8, a8, a16).
func (d Descriptor) String() string {
	name := d.Op.String()
	var operands []string

	switch d.Op {
	case OpLdR8R8:
		operands = []string{d.Dst.String(), d.Src.String()}
	case OpLdR8N8:
		operands = []string{d.Dst.String(), "n8"}
	case OpIncR8, OpDecR8:
		operands = []string{d.Dst.String()}
	case OpLdR16N16:
		operands = []string{d.Pair.String(), "n16"}
	case OpIncR16, OpDecR16:
		operands = []string{d.Pair.String()}
	case OpAddHLR16:
		operands = []string{"HL", d.Pair.String()}
	case OpLdMemA:
		operands = []string{memPairName(d.Pair), "A"}
	case OpLdAMem:
		operands = []string{"A", memPairName(d.Pair)}
	case OpLdA16SP:
		operands = []string{"(a16)", "SP"}
	case OpJr:
		operands = []string{"e8"}
	case OpJrCond:
		operands = []string{d.Cond.String(), "e8"}
	case OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp:
		operand := d.Src.String()
		if d.Immediate {
			operand = "n8"
		}
		operands = []string{"A", operand}
	case OpRetCond:
		operands = []string{d.Cond.String()}
	case OpJpCond, OpCallCond:
		operands = []string{d.Cond.String(), "a16"}
	case OpJp, OpCall:
		operands = []string{"a16"}
	case OpJpHL:
		operands = []string{"HL"}
	case OpPush, OpPop:
		operands = []string{stackPairName(d.Pair)}
	case OpRst:
		operands = []string{fmt.Sprintf("$%02X", d.Index*8)}
	case OpLdhA8A:
		operands = []string{"(a8)", "A"}
	case OpLdhAA8:
		operands = []string{"A", "(a8)"}
	case OpLdhCA:
		operands = []string{"(C)", "A"}
	case OpLdhAC:
		operands = []string{"A", "(C)"}
	case OpLdA16A:
		operands = []string{"(a16)", "A"}
	case OpLdAA16:
		operands = []string{"A", "(a16)"}
	case OpAddSPE8:
		operands = []string{"SP", "e8"}
	case OpLdHLSPE8:
		operands = []string{"HL", "SP+e8"}
	case OpLdSPHL:
		operands = []string{"SP", "HL"}
	case OpRlc, OpRrc, OpRl, OpRr, OpSla, OpSra, OpSwap, OpSrl:
		operands = []string{d.Src.String()}
	case OpBit, OpRes, OpSet:
		operands = []string{fmt.Sprint(d.Index), d.Src.String()}
	}

	if len(operands) == 0 {
		return name
	}
	return name + " " + strings.Join(operands, ", ")
}

func memPairName(p R16) string {
	switch p {
	case BC:
		return "(BC)"
	case DE:
		return "(DE)"
	case HL:
		return "(HL+)"
	}
	return "(HL-)"
}

func stackPairName(p R16) string {
	if p == SP {
		return "AF"
	}
	return p.String()
}
