package cpu

import (
	"testing"

	"github.com/thelolagemann/go-sm83/internal/mmu"
)

var (
	cpu *CPU
)

var registerNames = []string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// resetCPU replaces the package level cpu with a fresh one backed by
// zeroed memory.
func resetCPU() {
	cpu = NewCPU(NewStorage(mmu.NewMMU(nil)), nil)
}

// testInstruction runs f as a subtest against a freshly reset cpu and
// the decoded opcode.
func testInstruction(t *testing.T, name string, opcode uint8, f func(*testing.T, Descriptor)) {
	resetCPU()

	t.Run(name, func(t *testing.T) {
		f(t, Decode(opcode))
	})
}

// execute places opcode and its operands at PC and executes it.
func execute(opcode uint8, operands ...uint8) {
	cpu.SetByte(cpu.PC, opcode)
	for i, operand := range operands {
		cpu.SetByte(cpu.PC+uint16(i)+1, operand)
	}
	cpu.Execute(opcode)
}

func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.IsFlagSet(flag) {
			return false
		}
	}
	return true
}

func (c *CPU) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if c.IsFlagSet(flag) {
			return false
		}
	}
	return true
}

// expectFlags fails t unless the four flags match.
func expectFlags(t *testing.T, zero, subtract, halfCarry, carry bool) {
	t.Helper()
	for _, f := range []struct {
		name  string
		flag  Flag
		value bool
	}{
		{"Z", FlagZero, zero},
		{"N", FlagSubtract, subtract},
		{"H", FlagHalfCarry, halfCarry},
		{"C", FlagCarry, carry},
	} {
		if cpu.IsFlagSet(f.flag) != f.value {
			t.Errorf("expected flag %s to be %v, F=0x%02X", f.name, f.value, cpu.F)
		}
	}
}
