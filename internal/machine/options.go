package machine

import (
	"bytes"
	"io"

	"github.com/thelolagemann/go-sm83/internal/snapshot"
	"github.com/thelolagemann/go-sm83/pkg/log"
)

// Opt is a function that modifies a Machine instance.
type Opt func(m *Machine)

// Debug traces every instruction through the logger, and enables the
// LD B, B breakpoint.
func Debug() Opt {
	return func(m *Machine) {
		m.CPU.Debug = true
	}
}

func WithLogger(l log.Logger) Opt {
	return func(m *Machine) {
		m.setLogger(l)
	}
}

// WithROM loads the full 64kB memory image from r.
func WithROM(r io.Reader) Opt {
	return func(m *Machine) {
		m.err = m.CPU.LoadROM(r)
	}
}

// WithPC sets the address execution starts from.
func WithPC(pc uint16) Opt {
	return func(m *Machine) {
		m.CPU.PC = pc
	}
}

func WithSP(sp uint16) Opt {
	return func(m *Machine) {
		m.CPU.SP = sp
	}
}

// WithState restores a snapshot previously written by SaveSnapshot.
func WithState(b []byte) Opt {
	return func(m *Machine) {
		m.err = snapshot.Decode(bytes.NewReader(b), m)
	}
}
