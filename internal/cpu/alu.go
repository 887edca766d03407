package cpu

// halfCarry reports whether adding b and the carry c to a carries out
// of bit 3.
func halfCarry(a, b, c uint8) bool {
	return a&0xF+b&0xF+c > 0xF
}

// fullCarry reports whether adding b and the carry c to a carries out
// of bit 7.
func fullCarry(a, b, c uint8) bool {
	return uint16(a)+uint16(b)+uint16(c) > 0xFF
}

// halfBorrow reports whether subtracting b and the carry c from a
// borrows from bit 4.
func halfBorrow(a, b, c uint8) bool {
	return b&0xF+c > a&0xF
}

// fullBorrow reports whether subtracting b and the carry c from a
// borrows.
func fullBorrow(a, b, c uint8) bool {
	return uint16(b)+uint16(c) > uint16(a)
}

// alu applies one of the eight accumulator operations to A and n.
func (c *CPU) alu(op Operation, n uint8) {
	switch op {
	case OpAdd:
		c.A = c.add(c.A, n, 0)
	case OpAdc:
		c.A = c.add(c.A, n, c.carryBit())
	case OpSub:
		c.A = c.sub(c.A, n, 0)
	case OpSbc:
		c.A = c.sub(c.A, n, c.carryBit())
	case OpAnd:
		c.and(n)
	case OpXor:
		c.xor(n)
	case OpOr:
		c.or(n)
	case OpCp:
		c.compare(n)
	}
}

// add returns a + b + carry.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b, carry uint8) uint8 {
	result := a + b + carry
	c.SetFlags(result == 0, false, halfCarry(a, b, carry), fullCarry(a, b, carry))
	return result
}

// sub returns a - b - carry.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b, carry uint8) uint8 {
	result := a - b - carry
	c.SetFlags(result == 0, true, halfBorrow(a, b, carry), fullBorrow(a, b, carry))
	return result
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.SetFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.SetFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.SetFlags(c.A == 0, false, false, false)
}

// compare subtracts n from the A Register, keeping only the flags.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.sub(c.A, n, 0)
}
