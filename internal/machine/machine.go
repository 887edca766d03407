// Package machine ties the address space, the register storage and the
// CPU together into a single emulated SM83 system, and drives the fetch
// loop that the CPU leaves to its caller.
package machine

import (
	"context"
	"errors"

	"github.com/thelolagemann/go-sm83/internal/cpu"
	"github.com/thelolagemann/go-sm83/internal/mmu"
	"github.com/thelolagemann/go-sm83/internal/scheduler"
	"github.com/thelolagemann/go-sm83/internal/snapshot"
	"github.com/thelolagemann/go-sm83/internal/types"
	"github.com/thelolagemann/go-sm83/pkg/log"
)

// ErrLocked is returned by Run once the CPU has executed an illegal
// opcode.
var ErrLocked = errors.New("machine: cpu locked up")

// Machine is an SM83 and its 64kB of memory. It is the only owner of
// the memory image, peripherals reach it through Attach.
type Machine struct {
	CPU   *cpu.CPU
	mmu   *mmu.MMU
	sched *scheduler.Scheduler

	log.Logger

	err error
}

// New returns a Machine with zeroed memory and registers, then applies
// opts in order. The first option to fail is returned as the error.
func New(opts ...Opt) (*Machine, error) {
	memBus := mmu.NewMMU(nil)
	m := &Machine{
		CPU:    cpu.NewCPU(cpu.NewStorage(memBus), nil),
		mmu:    memBus,
		sched:  scheduler.NewScheduler(),
		Logger: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(m)
		if m.err != nil {
			return nil, m.err
		}
	}

	return m, nil
}

// setLogger points every component at l.
func (m *Machine) setLogger(l log.Logger) {
	m.Logger = l
	m.CPU.Log = l
	m.mmu.Log = l
}

// Step fetches the opcode at PC and executes it, then advances the
// scheduler by the cycles it took.
func (m *Machine) Step() {
	before := m.CPU.Cycles()
	m.CPU.Execute(m.CPU.FetchByte(m.CPU.PC))
	m.sched.Tick(m.CPU.Cycles() - before)
}

// Scheduler returns the event scheduler peripherals use to run in step
// with the CPU.
func (m *Machine) Scheduler() *scheduler.Scheduler {
	return m.sched
}

// Run steps the machine until limit instructions have run, the CPU
// halts or stops, or a debug breakpoint is hit. A limit of 0 runs
// without a limit. ctx is checked between instructions. Run returns the
// number of instructions executed.
func (m *Machine) Run(ctx context.Context, limit uint64) (uint64, error) {
	var executed uint64
	for limit == 0 || executed < limit {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if m.CPU.Locked() {
			return executed, ErrLocked
		}

		m.Step()
		if m.CPU.Locked() {
			return executed, ErrLocked
		}
		executed++

		switch {
		case m.CPU.Halted():
			m.Infof("halted at 0x%04X after %d instructions", m.CPU.PC, executed)
			return executed, nil
		case m.CPU.Stopped():
			m.Infof("stopped at 0x%04X after %d instructions", m.CPU.PC, executed)
			return executed, nil
		case m.CPU.DebugBreakpoint:
			m.CPU.DebugBreakpoint = false
			m.Infof("breakpoint at 0x%04X", m.CPU.PC-1)
			return executed, nil
		}
	}
	return executed, nil
}

// Attach maps a peripheral over [start, end] of the address space.
func (m *Machine) Attach(start, end uint16, bus mmu.IOBus) {
	m.mmu.Attach(start, end, bus)
}

// Fingerprint returns a hash of the memory image.
func (m *Machine) Fingerprint() uint64 {
	return m.mmu.Fingerprint()
}

// Reset returns the CPU to its power on state, keeping memory. Pending
// events are dropped.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.sched.Reset()
}

// SaveSnapshot writes the machine state to path.
func (m *Machine) SaveSnapshot(path string) error {
	if err := snapshot.Save(path, m); err != nil {
		return err
	}
	m.Infof("saved snapshot to %s", path)
	return nil
}

// LoadSnapshot restores the machine state from path.
func (m *Machine) LoadSnapshot(path string) error {
	if err := snapshot.Load(path, m); err != nil {
		return err
	}
	m.Infof("loaded snapshot from %s", path)
	return nil
}

var _ types.Stater = (*Machine)(nil)

func (m *Machine) Load(s *types.State) {
	m.CPU.Load(s)
}

func (m *Machine) Save(s *types.State) {
	m.CPU.Save(s)
}
