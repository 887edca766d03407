package cpu

// memPair returns the address held by the register pair of an (r16)
// load. The HL and SP encodings stand for (HL+) and (HL-), which
// post-increment or post-decrement HL.
//
//	LD (nn), A
//	LD A, (nn)
//	nn = BC, DE, HL+, HL-
func (c *CPU) memPair(pair R16) uint16 {
	switch pair {
	case BC:
		return c.BC.Uint16()
	case DE:
		return c.DE.Uint16()
	case HL:
		address := c.HL.Uint16()
		c.HL.SetUint16(address + 1)
		return address
	default:
		address := c.HL.Uint16()
		c.HL.SetUint16(address - 1)
		return address
	}
}
