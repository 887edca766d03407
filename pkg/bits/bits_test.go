package bits

import "testing"

func TestWordFromBytes(t *testing.T) {
	if w := WordFromBytes(0xEF, 0xBE); w != 0xBEEF {
		t.Errorf("expected 0xBEEF, got 0x%04X", w)
	}
	if w := WordFromBytes(0x00, 0x00); w != 0x0000 {
		t.Errorf("expected 0x0000, got 0x%04X", w)
	}
	if w := WordFromBytes(0xFF, 0xFF); w != 0xFFFF {
		t.Errorf("expected 0xFFFF, got 0x%04X", w)
	}
}

func TestByteEdges(t *testing.T) {
	for _, tt := range []struct {
		w      uint16
		lo, hi uint8
	}{
		{0x0000, 0x00, 0x00},
		{0x00FF, 0xFF, 0x00},
		{0xFF00, 0x00, 0xFF},
		{0xFFFF, 0xFF, 0xFF},
		{0xAAFF, 0xFF, 0xAA},
	} {
		if lo := LowByte(tt.w); lo != tt.lo {
			t.Errorf("LowByte(0x%04X): expected 0x%02X, got 0x%02X", tt.w, tt.lo, lo)
		}
		if hi := HighByte(tt.w); hi != tt.hi {
			t.Errorf("HighByte(0x%04X): expected 0x%02X, got 0x%02X", tt.w, tt.hi, hi)
		}
	}
}

func TestWordRoundTrip(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		w := uint16(i)
		if got := WordFromBytes(LowByte(w), HighByte(w)); got != w {
			t.Fatalf("round trip of 0x%04X produced 0x%04X", w, got)
		}
	}
}

func TestByteRoundTrip(t *testing.T) {
	for lo := 0; lo <= 0xFF; lo++ {
		for hi := 0; hi <= 0xFF; hi++ {
			w := WordFromBytes(uint8(lo), uint8(hi))
			if LowByte(w) != uint8(lo) || HighByte(w) != uint8(hi) {
				t.Fatalf("split of 0x%04X gave lo=0x%02X hi=0x%02X, expected lo=0x%02X hi=0x%02X",
					w, LowByte(w), HighByte(w), lo, hi)
			}
		}
	}
}

func TestNibbles(t *testing.T) {
	for i := 0; i <= 0xFF; i++ {
		b := uint8(i)
		if LowNibble(b) != b&0x0F {
			t.Errorf("LowNibble(0x%02X) = 0x%X", b, LowNibble(b))
		}
		if HighNibble(b) != b>>4 {
			t.Errorf("HighNibble(0x%02X) = 0x%X", b, HighNibble(b))
		}
		if HighNibble(b)<<4|LowNibble(b) != b {
			t.Errorf("nibbles of 0x%02X do not recombine", b)
		}
	}
}

func TestBitHelpers(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		for i := uint8(0); i < 8; i++ {
			v := Set(uint8(0), i)
			if !Test(v, i) || Val(v, i) != 1 {
				t.Errorf("expected bit %d to be set in 0x%02X", i, v)
			}
			if Reset(v, i) != 0 {
				t.Errorf("expected bit %d to be reset", i)
			}
		}
	})
	t.Run("uint16", func(t *testing.T) {
		for i := uint8(0); i < 16; i++ {
			v := Set(uint16(0), i)
			if !Test(v, i) {
				t.Errorf("expected bit %d to be set in 0x%04X", i, v)
			}
			if Reset(uint16(0xFFFF), i)&(1<<i) != 0 {
				t.Errorf("expected bit %d to be reset", i)
			}
		}
	})
}
