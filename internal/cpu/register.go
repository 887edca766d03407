package cpu

import (
	"errors"
	"fmt"
)

// ErrInvalidRegister is returned when a 16-bit register accessor is
// given an id outside of BC, DE, HL and SP.
var ErrInvalidRegister = errors.New("invalid register")

// R8 identifies one of the 8-bit operands an opcode can name in its
// 3-bit register fields. IndirectHL is not a physical register, it is
// the byte in memory addressed by the HL register pair.
type R8 uint8

const (
	B R8 = iota
	C
	D
	E
	H
	L
	IndirectHL
	A
)

// R8FromBits returns the R8 encoded by the low 3 bits of b.
func R8FromBits(b uint8) R8 {
	return R8(b & 0x7)
}

// Bits returns the 3-bit encoding of r.
func (r R8) Bits() uint8 {
	return uint8(r) & 0x7
}

// IsMemory reports whether r redirects to memory.
func (r R8) IsMemory() bool {
	return r == IndirectHL
}

func (r R8) String() string {
	switch r {
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case IndirectHL:
		return "(HL)"
	case A:
		return "A"
	}
	return fmt.Sprintf("R8(%d)", uint8(r))
}

// R16 identifies a 16-bit register, as encoded by the 2-bit register
// pair fields of an opcode.
type R16 uint8

const (
	BC R16 = iota
	DE
	HL
	SP
)

// R16FromBits returns the R16 encoded by the low 2 bits of b.
func R16FromBits(b uint8) R16 {
	return R16(b & 0x3)
}

func (r R16) String() string {
	switch r {
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	}
	return fmt.Sprintf("R16(%d)", uint8(r))
}

// RegisterPair is a pair of 8-bit registers which are accessed as
// a single 16-bit value. The high register holds the upper byte.
type RegisterPair struct {
	High *uint8
	Low  *uint8
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers holds the 8-bit registers, as well as the register pairs
// built on top of them.
type Registers struct {
	A uint8
	F uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// bindPairs points the register pairs at their halves. It must be
// called once the Registers have reached their final address.
func (r *Registers) bindPairs() {
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	r.AF = &RegisterPair{&r.A, &r.F}
}
