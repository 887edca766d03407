package cpu

import "testing"

func TestDecode_Blocks(t *testing.T) {
	for i := 0; i <= 0xFF; i++ {
		opcode := uint8(i)
		d := Decode(opcode)

		if d.Opcode != opcode {
			t.Errorf("0x%02X: opcode not kept, got 0x%02X", opcode, d.Opcode)
		}
		if d.Block != opcode>>6 {
			t.Errorf("0x%02X: expected block %d, got %d", opcode, opcode>>6, d.Block)
		}
		if d.Length < 1 || d.Length > 3 {
			t.Errorf("0x%02X: unexpected length %d", opcode, d.Length)
		}

		switch d.Block {
		case 1:
			if opcode == 0x76 {
				if d.Op != OpHalt {
					t.Errorf("0x76: expected HALT, got %s", d.Op)
				}
				continue
			}
			if d.Op != OpLdR8R8 {
				t.Errorf("0x%02X: expected LD r8, r8, got %s", opcode, d.Op)
			}
			if d.Dst.Bits() != opcode>>3&0x7 || d.Src.Bits() != opcode&0x7 {
				t.Errorf("0x%02X: wrong operands %s, %s", opcode, d.Dst, d.Src)
			}
		case 2:
			if d.Op != aluOps[opcode>>3&0x7] {
				t.Errorf("0x%02X: expected %s, got %s", opcode, aluOps[opcode>>3&0x7], d.Op)
			}
			if d.Src != R8FromBits(opcode) {
				t.Errorf("0x%02X: wrong operand %s", opcode, d.Src)
			}
			if d.Immediate {
				t.Errorf("0x%02X: register operand decoded as immediate", opcode)
			}
		}
	}
}

func TestDecode_Illegal(t *testing.T) {
	illegal := map[uint8]bool{}
	for _, o := range disallowedOpcodes {
		illegal[o] = true
	}
	for i := 0; i <= 0xFF; i++ {
		d := Decode(uint8(i))
		if (d.Op == OpInvalid) != illegal[uint8(i)] {
			t.Errorf("0x%02X: decoded as %s", i, d.Op)
		}
	}
}

func TestDecode_Mnemonics(t *testing.T) {
	for opcode, want := range map[uint8]string{
		0x00: "NOP",
		0x01: "LD BC, n16",
		0x02: "LD (BC), A",
		0x08: "LD (a16), SP",
		0x09: "ADD HL, BC",
		0x10: "STOP",
		0x18: "JR e8",
		0x20: "JR NZ, e8",
		0x22: "LD (HL+), A",
		0x27: "DAA",
		0x2F: "CPL",
		0x33: "INC SP",
		0x34: "INC (HL)",
		0x36: "LD (HL), n8",
		0x37: "SCF",
		0x38: "JR C, e8",
		0x3A: "LD A, (HL-)",
		0x3F: "CCF",
		0x41: "LD B, C",
		0x76: "HALT",
		0x7E: "LD A, (HL)",
		0x86: "ADD A, (HL)",
		0x9F: "SBC A, A",
		0xAF: "XOR A, A",
		0xC0: "RET NZ",
		0xC3: "JP a16",
		0xC6: "ADD A, n8",
		0xC9: "RET",
		0xCA: "JP Z, a16",
		0xCB: "PREFIX",
		0xCD: "CALL a16",
		0xD3: "ILLEGAL",
		0xD4: "CALL NC, a16",
		0xD9: "RETI",
		0xE0: "LDH (a8), A",
		0xE2: "LDH (C), A",
		0xE8: "ADD SP, e8",
		0xE9: "JP HL",
		0xEA: "LD (a16), A",
		0xF1: "POP AF",
		0xF3: "DI",
		0xF5: "PUSH AF",
		0xF8: "LD HL, SP+e8",
		0xF9: "LD SP, HL",
		0xFB: "EI",
		0xFE: "CP A, n8",
		0xFF: "RST $38",
	} {
		if got := Decode(opcode).String(); got != want {
			t.Errorf("0x%02X: expected %q, got %q", opcode, want, got)
		}
	}

	for opcode, want := range map[uint8]string{
		0x00: "RLC B",
		0x0E: "RRC (HL)",
		0x11: "RL C",
		0x1F: "RR A",
		0x20: "SLA B",
		0x2F: "SRA A",
		0x37: "SWAP A",
		0x3F: "SRL A",
		0x7C: "BIT 7, H",
		0x86: "RES 0, (HL)",
		0xFF: "SET 7, A",
	} {
		if got := DecodeCB(opcode).String(); got != want {
			t.Errorf("CB 0x%02X: expected %q, got %q", opcode, want, got)
		}
	}
}

func TestDecode_Lengths(t *testing.T) {
	lengths := []uint8{
		1, 3, 1, 1, 1, 1, 2, 1, 3, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
	}
	for i, length := range lengths {
		if got := Decode(uint8(i)).Length; got != length {
			t.Errorf("0x%02X: expected length %d, got %d", i, length, got)
		}
	}

	for opcode, length := range map[uint8]uint8{
		0xC2: 3, 0xC3: 3, 0xC4: 3, 0xC6: 2, 0xCB: 2, 0xCD: 3,
		0xE0: 2, 0xE8: 2, 0xEA: 3, 0xF0: 2, 0xF8: 2, 0xFA: 3,
		0xC1: 1, 0xC5: 1, 0xC9: 1, 0xE9: 1, 0xFF: 1,
	} {
		if got := Decode(opcode).Length; got != length {
			t.Errorf("0x%02X: expected length %d, got %d", opcode, length, got)
		}
	}
}

func TestInstruction_Timing(t *testing.T) {
	timings := []uint8{
		1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
		0, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
		2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
		3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
		3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
	}
	for i, timing := range timings {
		if timing == 0 {
			continue
		}
		d := Decode(uint8(i))
		if d.Cycles != timing {
			t.Errorf("%s (0x%02X): expected %d cycles, got %d", d, i, timing, d.Cycles)
		}
	}

	// taken branches
	for opcode, taken := range map[uint8]uint8{
		0x20: 3, 0x28: 3, 0x30: 3, 0x38: 3,
		0xC0: 5, 0xC8: 5, 0xD0: 5, 0xD8: 5,
		0xC2: 4, 0xCA: 4, 0xD2: 4, 0xDA: 4,
		0xC4: 6, 0xCC: 6, 0xD4: 6, 0xDC: 6,
	} {
		d := Decode(opcode)
		if d.Cycles+d.Taken != taken {
			t.Errorf("%s (0x%02X): expected %d cycles when taken, got %d", d, opcode, taken, d.Cycles+d.Taken)
		}
	}

	for i := 0; i <= 0xFF; i++ {
		want := uint8(2)
		if i&0x7 == 6 {
			want = 4
			if i>>6 == 1 {
				want = 3
			}
		}
		d := DecodeCB(uint8(i))
		if d.Cycles != want {
			t.Errorf("%s (CB 0x%02X): expected %d cycles, got %d", d, i, want, d.Cycles)
		}
	}
}
