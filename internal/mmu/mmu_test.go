package mmu

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMMU_ByteRoundTrip(t *testing.T) {
	m := NewMMU(nil)
	for a := 0; a < Size; a++ {
		v := uint8(rand.Intn(256))
		m.Write(uint16(a), v)
		if got := m.Read(uint16(a)); got != v {
			t.Fatalf("expected 0x%02X at 0x%04X, got 0x%02X", v, a, got)
		}
	}
}

func TestMMU_WordRoundTrip(t *testing.T) {
	m := NewMMU(nil)
	for a := 0; a < Size; a += 3 {
		v := uint16(rand.Intn(0x10000))
		m.WriteWord(uint16(a), v)
		if got := m.ReadWord(uint16(a)); got != v {
			t.Fatalf("expected 0x%04X at 0x%04X, got 0x%04X", v, a, got)
		}
		// little-endian layout
		if m.Read(uint16(a)) != uint8(v) || m.Read(uint16(a+1)) != uint8(v>>8) {
			t.Fatalf("expected 0x%04X to be stored little-endian at 0x%04X", v, a)
		}
	}
}

func TestMMU_WordWraps(t *testing.T) {
	m := NewMMU(nil)
	m.WriteWord(0xFFFF, 0xBEEF)

	assert.Equal(t, uint8(0xEF), m.Read(0xFFFF))
	assert.Equal(t, uint8(0xBE), m.Read(0x0000))
	assert.Equal(t, uint16(0xBEEF), m.ReadWord(0xFFFF))
}

func TestMMU_ROMRoundTrip(t *testing.T) {
	src := NewMMU(nil)
	for a := 0; a < Size; a++ {
		src.Write(uint16(a), uint8(rand.Intn(256)))
	}
	// values that a text-mode stream would mangle
	src.Write(0x0100, '\n')
	src.Write(0x0101, '\r')
	src.Write(0x0102, 0x1A)

	var buf bytes.Buffer
	require.NoError(t, src.DumpROM(&buf))
	require.Equal(t, Size, buf.Len())

	dst := NewMMU(nil)
	require.NoError(t, dst.LoadROM(&buf))
	for a := 0; a < Size; a++ {
		if src.Read(uint16(a)) != dst.Read(uint16(a)) {
			t.Fatalf("mismatch at 0x%04X", a)
		}
	}
	assert.Equal(t, src.Fingerprint(), dst.Fingerprint())
}

func TestMMU_LoadROMShort(t *testing.T) {
	m := NewMMU(nil)
	m.Write(0x1234, 0xAF)

	err := m.LoadROM(bytes.NewReader(make([]byte, 100)))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, uint8(0xAF), m.Read(0x1234), "image should be untouched")

	err = m.LoadROM(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestMMU_DumpROMError(t *testing.T) {
	assert.ErrorIs(t, NewMMU(nil).DumpROM(failingWriter{}), io.ErrClosedPipe)
}

type recorder struct {
	reads, writes []uint16
	value         uint8
}

func (r *recorder) Read(address uint16) uint8 {
	r.reads = append(r.reads, address)
	return r.value
}

func (r *recorder) Write(address uint16, value uint8) {
	r.writes = append(r.writes, address)
	r.value = value
}

func TestMMU_Attach(t *testing.T) {
	m := NewMMU(nil)
	dev := &recorder{}
	m.Attach(0xFF00, 0xFF7F, dev)

	m.Write(0xFF40, 0x91)
	assert.Equal(t, uint8(0x91), m.Read(0xFF40))
	assert.Equal(t, []uint16{0xFF40}, dev.writes)
	assert.Equal(t, []uint16{0xFF40}, dev.reads)

	// outside of the region is plain memory
	m.Write(0xFF80, 0x12)
	assert.Equal(t, uint8(0x12), m.Read(0xFF80))
	assert.Len(t, dev.writes, 1)

	// the raw image never sees device writes
	var buf bytes.Buffer
	require.NoError(t, m.DumpROM(&buf))
	assert.Equal(t, uint8(0), buf.Bytes()[0xFF40])

	m.Detach(0xFF00, 0xFF7F)
	assert.Equal(t, uint8(0), m.Read(0xFF40))
}

func TestMMU_Reset(t *testing.T) {
	m := NewMMU(nil)
	fresh := m.Fingerprint()
	m.Write(0xC000, 0x42)
	assert.NotEqual(t, fresh, m.Fingerprint())

	m.Reset()
	assert.Equal(t, uint8(0), m.Read(0xC000))
	assert.Equal(t, fresh, m.Fingerprint())
}
