package cpu

import "github.com/thelolagemann/go-sm83/pkg/bits"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flagMask covers the bits of F that hold flags, the lower
// nibble always reads as zero.
const flagMask uint8 = 0xF0

// SetFlag sets the given flag.
func (s *Storage) SetFlag(flag Flag) {
	s.F = bits.Set(s.F, flag)
}

// ClearFlag clears the given flag.
func (s *Storage) ClearFlag(flag Flag) {
	s.F = bits.Reset(s.F, flag)
}

// IsFlagSet returns true if the given flag is set.
func (s *Storage) IsFlagSet(flag Flag) bool {
	return bits.Test(s.F, flag)
}

// SetFlags replaces all four flags at once.
func (s *Storage) SetFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= 1 << FlagZero
	}
	if subtract {
		f |= 1 << FlagSubtract
	}
	if halfCarry {
		f |= 1 << FlagHalfCarry
	}
	if carry {
		f |= 1 << FlagCarry
	}
	s.F = f
}

// carryBit returns the carry flag as 0 or 1.
func (s *Storage) carryBit() uint8 {
	return bits.Val(s.F, FlagCarry)
}
