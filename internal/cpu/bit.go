package cpu

import "github.com/thelolagemann/go-sm83/pkg/bits"

// testBit tests bit b of n.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, b uint8) {
	c.SetFlags(!bits.Test(n, b), false, true, c.IsFlagSet(FlagCarry))
}

// resetBit returns n with bit b cleared. No flags are affected.
func (c *CPU) resetBit(n uint8, b uint8) uint8 {
	return bits.Reset(n, b)
}

// setBit returns n with bit b set. No flags are affected.
func (c *CPU) setBit(n uint8, b uint8) uint8 {
	return bits.Set(n, b)
}
