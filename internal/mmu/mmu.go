// Package mmu provides the 64kB address space of the SM83. The MMU owns
// the raw memory image, and routes accesses in attached ranges to
// memory-mapped devices via the IOBus interface.
package mmu

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/go-sm83/internal/types"
	"github.com/thelolagemann/go-sm83/pkg/log"
)

// Size is the size of the address space in bytes.
const Size = 0x10000

// IOBus is the interface that memory-mapped devices implement in order
// to be attached to a region of the address space.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit. It handles all memory reads and
// writes to the 64kB address space. Addresses are 16-bit and the space
// is flat, so address arithmetic wraps at 0xFFFF.
type MMU struct {
	// 0x0000 - 0xFFFF
	raw [Size]uint8

	// devices attached per address, nil for plain memory
	devices [Size]IOBus

	Log log.Logger
}

// NewMMU returns a new, zero-filled MMU.
func NewMMU(logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &MMU{Log: logger}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	m.checkAddress("read", int(address))
	if d := m.devices[address]; d != nil {
		return d.Read(address)
	}
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.checkAddress("write", int(address))
	if d := m.devices[address]; d != nil {
		d.Write(address, value)
		return
	}
	m.raw[address] = value
}

// ReadWord reads a little-endian word from address and address+1.
func (m *MMU) ReadWord(address uint16) uint16 {
	lo := m.Read(address)
	hi := m.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes value as a little-endian word to address and
// address+1.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// Attach routes every access in [start, end] to bus, replacing any
// device previously attached there.
func (m *MMU) Attach(start, end uint16, bus IOBus) {
	for i := int(start); i <= int(end); i++ {
		m.devices[i] = bus
	}
	m.Log.Debugf("attached device at 0x%04X-0x%04X", start, end)
}

// Detach returns [start, end] to plain memory.
func (m *MMU) Detach(start, end uint16) {
	m.Attach(start, end, nil)
}

// LoadROM replaces the raw image with exactly Size bytes read from r.
// The image is left untouched if r holds fewer bytes.
func (m *MMU) LoadROM(r io.Reader) error {
	buf := make([]byte, Size)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("load rom: %w", err)
	}
	copy(m.raw[:], buf)
	m.Log.Debugf("loaded %d byte image (%016x)", Size, m.Fingerprint())
	return nil
}

// DumpROM writes the raw image to w in address order. Attached devices
// are not consulted.
func (m *MMU) DumpROM(w io.Writer) error {
	if _, err := w.Write(m.raw[:]); err != nil {
		return fmt.Errorf("dump rom: %w", err)
	}
	return nil
}

// Fingerprint returns the xxhash of the raw image.
func (m *MMU) Fingerprint() uint64 {
	return xxhash.Sum64(m.raw[:])
}

// Reset zero-fills the raw image. Attached devices are kept.
func (m *MMU) Reset() {
	m.raw = [Size]uint8{}
}

var _ types.Stater = (*MMU)(nil)

func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
