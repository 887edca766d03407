package cpu

import (
	"fmt"
	"io"

	"github.com/thelolagemann/go-sm83/internal/mmu"
	"github.com/thelolagemann/go-sm83/internal/types"
)

// Storage is everything an instruction can mutate: the registers, the
// flags, PC, SP and the address space behind the MMU. All operand access
// goes through the id-keyed accessors, so that the engine can treat a
// register and the byte at (HL) the same way.
type Storage struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	mmu *mmu.MMU
}

// NewStorage creates a zeroed Storage backed by m.
func NewStorage(m *mmu.MMU) *Storage {
	s := &Storage{mmu: m}
	s.bindPairs()
	return s
}

// FetchByte reads the byte at addr.
func (s *Storage) FetchByte(addr uint16) uint8 {
	return s.mmu.Read(addr)
}

// SetByte writes val to addr.
func (s *Storage) SetByte(addr uint16, val uint8) {
	s.mmu.Write(addr, val)
}

// FetchWord reads the little-endian word at addr, addr+1.
func (s *Storage) FetchWord(addr uint16) uint16 {
	return s.mmu.ReadWord(addr)
}

// SetWord writes val little-endian to addr, addr+1.
func (s *Storage) SetWord(addr uint16, val uint16) {
	s.mmu.WriteWord(addr, val)
}

// LoadROM replaces the whole 64kB image from r.
func (s *Storage) LoadROM(r io.Reader) error {
	return s.mmu.LoadROM(r)
}

// DumpROM writes the whole 64kB image to w.
func (s *Storage) DumpROM(w io.Writer) error {
	return s.mmu.DumpROM(w)
}

// R8 returns the value of the given 8-bit operand. IndirectHL reads
// the byte addressed by HL.
func (s *Storage) R8(id R8) uint8 {
	switch id {
	case B:
		return s.B
	case C:
		return s.C
	case D:
		return s.D
	case E:
		return s.E
	case H:
		return s.H
	case L:
		return s.L
	case IndirectHL:
		return s.FetchByte(s.HL.Uint16())
	default:
		return s.A
	}
}

// SetR8 sets the given 8-bit operand. IndirectHL writes the byte
// addressed by HL.
func (s *Storage) SetR8(id R8, val uint8) {
	switch id {
	case B:
		s.B = val
	case C:
		s.C = val
	case D:
		s.D = val
	case E:
		s.E = val
	case H:
		s.H = val
	case L:
		s.L = val
	case IndirectHL:
		s.SetByte(s.HL.Uint16(), val)
	default:
		s.A = val
	}
}

// R16 returns the value of the given 16-bit register.
func (s *Storage) R16(id R16) (uint16, error) {
	if id > SP {
		return 0, fmt.Errorf("%w: r16 id %d", ErrInvalidRegister, uint8(id))
	}
	return s.r16(id), nil
}

// SetR16 sets the given 16-bit register. For BC, DE and HL the high
// byte lands in B, D or H and the low byte in C, E or L.
func (s *Storage) SetR16(id R16, val uint16) error {
	if id > SP {
		return fmt.Errorf("%w: r16 id %d", ErrInvalidRegister, uint8(id))
	}
	s.setR16(id, val)
	return nil
}

// r16 and setR16 are the engine's accessors. Opcode fields are only
// ever 2 bits wide, so the id is masked rather than validated.
func (s *Storage) r16(id R16) uint16 {
	switch id & 0x3 {
	case BC:
		return s.BC.Uint16()
	case DE:
		return s.DE.Uint16()
	case HL:
		return s.HL.Uint16()
	default:
		return s.SP
	}
}

func (s *Storage) setR16(id R16, val uint16) {
	switch id & 0x3 {
	case BC:
		s.BC.SetUint16(val)
	case DE:
		s.DE.SetUint16(val)
	case HL:
		s.HL.SetUint16(val)
	default:
		s.SP = val
	}
}

// Reset zeroes the registers, flags, PC and SP. Memory is untouched.
func (s *Storage) Reset() {
	s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L = 0, 0, 0, 0, 0, 0, 0, 0
	s.PC, s.SP = 0, 0
}

func (s *Storage) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC)
}

var _ types.Stater = (*Storage)(nil)

func (s *Storage) Load(st *types.State) {
	s.A = st.Read8()
	s.F = st.Read8() & flagMask
	s.B = st.Read8()
	s.C = st.Read8()
	s.D = st.Read8()
	s.E = st.Read8()
	s.H = st.Read8()
	s.L = st.Read8()
	s.SP = st.Read16()
	s.PC = st.Read16()
	s.mmu.Load(st)
}

func (s *Storage) Save(st *types.State) {
	st.Write8(s.A)
	st.Write8(s.F)
	st.Write8(s.B)
	st.Write8(s.C)
	st.Write8(s.D)
	st.Write8(s.E)
	st.Write8(s.H)
	st.Write8(s.L)
	st.Write16(s.SP)
	st.Write16(s.PC)
	s.mmu.Save(st)
}
