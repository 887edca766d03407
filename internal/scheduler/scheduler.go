package scheduler

import (
	"fmt"
	"strings"
)

// Scheduler is a simple event scheduler that runs callbacks once the
// machine has executed a given number of M-cycles.
//
// The scheduler is a linked list of events, sorted by the cycle at which
// they should be executed. When an event is scheduled, it is inserted into
// the list in the correct position, and when the scheduler is ticked, every
// event that has come due is removed from the list and its handler run.
type Scheduler struct {
	cycles uint64
	root   *Event

	eventHandlers [256]func(late uint64) // indexed by EventType, avoids a bounds check
	events        [256]Event             // only one event of each type can be scheduled at a time
}

func NewScheduler() *Scheduler {
	s := &Scheduler{}
	for i := range s.events {
		s.events[i].eventType = EventType(i)
	}
	return s
}

// Cycle returns the number of cycles the scheduler has been ticked by.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}

// RegisterEvent registers fn to be called when an event of eventType
// comes due. fn is passed the number of cycles the event ran late by,
// as Tick only resolves events at instruction boundaries.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func(late uint64)) {
	s.eventHandlers[eventType] = fn
}

// Tick advances the scheduler by c cycles and executes every event
// scheduled at or before the new cycle, in order. Handlers may schedule
// further events, including their own type.
func (s *Scheduler) Tick(c uint64) {
	s.cycles += c

	for s.root != nil && s.root.cycle <= s.cycles {
		event := s.root
		s.root = event.next
		event.next = nil

		if fn := s.eventHandlers[event.eventType]; fn != nil {
			fn(s.cycles - event.cycle)
		}
	}
}

// ScheduleEvent schedules eventType to run after the given number of
// cycles. An event of the same type that is already pending is moved.
func (s *Scheduler) ScheduleEvent(eventType EventType, after uint64) {
	s.DescheduleEvent(eventType)

	this := &s.events[eventType]
	this.cycle = s.cycles + after
	this.next = nil

	// events scheduled for the same cycle run in the order they were added
	if s.root == nil || this.cycle < s.root.cycle {
		this.next = s.root
		s.root = this
		return
	}

	event := s.root
	for event.next != nil && event.next.cycle <= this.cycle {
		event = event.next
	}
	this.next = event.next
	event.next = this
}

// DescheduleEvent removes eventType from the list, if it is pending.
func (s *Scheduler) DescheduleEvent(eventType EventType) {
	var prev *Event
	for event := s.root; event != nil; event = event.next {
		if event.eventType == eventType {
			if prev == nil {
				s.root = event.next
			} else {
				prev.next = event.next
			}
			event.next = nil
			return
		}
		prev = event
	}
}

// Pending reports whether eventType is scheduled.
func (s *Scheduler) Pending(eventType EventType) bool {
	for event := s.root; event != nil; event = event.next {
		if event.eventType == eventType {
			return true
		}
	}
	return false
}

// Until returns the number of cycles until the next event, and false if
// nothing is scheduled.
func (s *Scheduler) Until() (uint64, bool) {
	if s.root == nil {
		return 0, false
	}
	if s.root.cycle <= s.cycles {
		return 0, true
	}
	return s.root.cycle - s.cycles, true
}

// Reset drops every pending event and rewinds the cycle counter. Handlers
// stay registered.
func (s *Scheduler) Reset() {
	s.cycles = 0
	s.root = nil
	for i := range s.events {
		s.events[i].Reset()
		s.events[i].eventType = EventType(i)
	}
}

func (s *Scheduler) String() string {
	var b strings.Builder
	for event := s.root; event != nil; event = event.next {
		fmt.Fprintf(&b, "%d:%d->", event.eventType, event.cycle)
	}
	return b.String()
}
