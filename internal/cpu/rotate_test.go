package cpu

import "testing"

func TestInstruction_RotateAccumulator(t *testing.T) {
	for _, tt := range []struct {
		name          string
		opcode        uint8
		a             uint8
		carry         bool
		expected      uint8
		expectedCarry bool
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, true},
		{"RLCA", 0x07, 0x00, true, 0x00, false},
		{"RRCA", 0x0F, 0x01, false, 0x80, true},
		{"RRCA", 0x0F, 0x3B, false, 0x9D, true},
		{"RLA", 0x17, 0x95, true, 0x2B, true},
		{"RLA", 0x17, 0x80, false, 0x00, true},
		{"RRA", 0x1F, 0x81, false, 0x40, true},
		{"RRA", 0x1F, 0x00, true, 0x80, false},
	} {
		testInstruction(t, tt.name, tt.opcode, func(t *testing.T, d Descriptor) {
			cpu.A = tt.a
			cpu.SetFlags(true, true, true, tt.carry)

			cpu.Execute(tt.opcode)

			if cpu.A != tt.expected {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.expected, cpu.A)
			}
			// a zero result still leaves Z clear
			expectFlags(t, false, false, false, tt.expectedCarry)
		})
	}
}

func TestInstruction_DecimalAdjust(t *testing.T) {
	for _, tt := range []struct {
		name     string
		a, b     uint8
		op       uint8
		expected uint8
		zero     bool
		carry    bool
	}{
		{"15+27", 0x15, 0x27, 0x80, 0x42, false, false},
		{"99+01", 0x99, 0x01, 0x80, 0x00, true, true},
		{"45+38", 0x45, 0x38, 0x80, 0x83, false, false},
		{"90+90", 0x90, 0x90, 0x80, 0x80, false, true},
		{"42-15", 0x42, 0x15, 0x90, 0x27, false, false},
		{"10-20", 0x10, 0x20, 0x90, 0x90, false, true},
		{"33-33", 0x33, 0x33, 0x90, 0x00, true, false},
	} {
		testInstruction(t, "DAA "+tt.name, 0x27, func(t *testing.T, d Descriptor) {
			cpu.A = tt.a
			cpu.B = tt.b
			cpu.Execute(tt.op)
			subtract := cpu.IsFlagSet(FlagSubtract)

			cpu.Execute(0x27)

			if cpu.A != tt.expected {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.expected, cpu.A)
			}
			expectFlags(t, tt.zero, subtract, false, tt.carry)
		})
	}
}

func TestInstruction_DecimalAdjustExhaustive(t *testing.T) {
	testInstruction(t, "DAA", 0x27, func(t *testing.T, d Descriptor) {
		for x := 0; x < 100; x++ {
			for y := 0; y < 100; y++ {
				cpu.A = uint8(x/10<<4 | x%10)
				cpu.B = uint8(y/10<<4 | y%10)
				cpu.Execute(0x80)
				cpu.Execute(0x27)

				sum := (x + y) % 100
				want := uint8(sum/10<<4 | sum%10)
				if cpu.A != want {
					t.Fatalf("%d+%d: expected 0x%02X, got 0x%02X", x, y, want, cpu.A)
				}
				if cpu.IsFlagSet(FlagCarry) != (x+y >= 100) {
					t.Fatalf("%d+%d: carry flag wrong", x, y)
				}
			}
		}
	})
}

func TestInstruction_FlagOps(t *testing.T) {
	// 0x2F - CPL
	testInstruction(t, "CPL", 0x2F, func(t *testing.T, d Descriptor) {
		cpu.A = 0x35
		cpu.SetFlags(true, false, false, true)

		cpu.Execute(0x2F)

		if cpu.A != 0xCA {
			t.Errorf("expected A to be 0xCA, got 0x%02X", cpu.A)
		}
		expectFlags(t, true, true, true, true)
	})
	// 0x37 - SCF
	testInstruction(t, "SCF", 0x37, func(t *testing.T, d Descriptor) {
		for _, zero := range []bool{false, true} {
			cpu.SetFlags(zero, true, true, false)

			cpu.Execute(0x37)

			expectFlags(t, zero, false, false, true)
		}
	})
	// 0x3F - CCF
	testInstruction(t, "CCF", 0x3F, func(t *testing.T, d Descriptor) {
		cpu.SetFlags(true, true, true, true)
		cpu.Execute(0x3F)
		expectFlags(t, true, false, false, false)

		cpu.Execute(0x3F)
		expectFlags(t, true, false, false, true)
	})
}
