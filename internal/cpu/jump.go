package cpu

import "github.com/thelolagemann/go-sm83/pkg/bits"

// pushStack pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.SetByte(c.SP, bits.HighByte(value))
	c.SP--
	c.SetByte(c.SP, bits.LowByte(value))
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	lower := c.FetchByte(c.SP)
	c.SP++
	upper := c.FetchByte(c.SP)
	c.SP++
	return bits.WordFromBytes(lower, upper)
}

// push pushes the given register pair. The SP encoding selects AF.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) push(pair R16) {
	if pair == SP {
		c.pushStack(c.AF.Uint16())
		return
	}
	c.pushStack(c.r16(pair))
}

// pop pops into the given register pair. The SP encoding selects AF,
// whose lower nibble of F can never be set.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) pop(pair R16) {
	value := c.popStack()
	if pair == SP {
		c.AF.SetUint16(value & 0xFFF0)
		return
	}
	c.setR16(pair, value)
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	RST n
//	nn = 16-bit immediate value
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}
