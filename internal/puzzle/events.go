package puzzle

// EventType identifies an outward signal from a puzzle.
type EventType uint8

const (
	EventTileUpdated EventType = iota + 1
	EventPuzzleSolved
)

func (t EventType) String() string {
	switch t {
	case EventTileUpdated:
		return "TILE_UPDATED"
	case EventPuzzleSolved:
		return "PUZZLE_SOLVED"
	default:
		return "UNKNOWN"
	}
}

// Event is one signal. Slot is the affected grid slot, -1 when the event is
// not tied to a tile.
type Event struct {
	Type EventType
	Slot int
}

// Events is a read-once FIFO queue. The driver owns it and passes it into
// every HandleInput call; puzzles only append.
type Events struct {
	queue []Event
}

// Emit appends an event.
func (e *Events) Emit(t EventType, slot int) {
	if e == nil {
		return
	}
	e.queue = append(e.queue, Event{Type: t, Slot: slot})
}

// Drain returns all pending events in emission order and clears the queue.
func (e *Events) Drain() []Event {
	if e == nil || len(e.queue) == 0 {
		return nil
	}
	out := e.queue
	e.queue = nil
	return out
}

// Len returns the number of pending events.
func (e *Events) Len() int {
	if e == nil {
		return 0
	}
	return len(e.queue)
}

// Has reports whether an event of type t is pending.
func (e *Events) Has(t EventType) bool {
	if e == nil {
		return false
	}
	for _, ev := range e.queue {
		if ev.Type == t {
			return true
		}
	}
	return false
}
