package obj

import "github.com/hajimehoshi/ebiten/v2"

// EventKind identifies input events.
type EventKind int

const (
	EventClose EventKind = iota + 1
	EventWheel
	EventButton
	EventPause
	EventCopyCursor
)

func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "close"
	case EventWheel:
		return "wheel"
	case EventButton:
		return "button"
	case EventPause:
		return "pause"
	case EventCopyCursor:
		return "copy_cursor"
	}
	return "unknown"
}

// Event is a single input occurrence. Delta is set for wheel events; Button,
// X and Y (screen pixels) for button events.
type Event struct {
	Kind   EventKind
	Delta  float64
	Button ebiten.MouseButton
	X, Y   int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events in arrival order and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
