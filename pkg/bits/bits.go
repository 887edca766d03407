// Package bits provides helpers for composing and slicing the bytes,
// words and nibbles that the SM83 operates on.
package bits

import "golang.org/x/exp/constraints"

// WordFromBytes combines two bytes into a little-endian word,
// with hi occupying the upper 8 bits.
func WordFromBytes(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// LowByte returns the lower 8 bits of w.
func LowByte(w uint16) uint8 {
	return uint8(w & 0x00FF)
}

// HighByte returns the upper 8 bits of w.
func HighByte(w uint16) uint8 {
	return uint8(w >> 8)
}

// LowNibble returns the lower 4 bits of b.
func LowNibble(b uint8) uint8 {
	return b & 0x0F
}

// HighNibble returns the upper 4 bits of b, shifted down.
func HighNibble(b uint8) uint8 {
	return b >> 4
}

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}
