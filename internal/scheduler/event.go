package scheduler

// EventType identifies a kind of event. Only one event of each type can
// be pending at a time, scheduling it again moves it.
type EventType uint8

type Event struct {
	cycle     uint64
	eventType EventType
	next      *Event
}

func (e *Event) Reset() {
	e.cycle = 0
	e.eventType = 0
	e.next = nil
}
