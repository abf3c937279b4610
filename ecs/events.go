package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventHoverEnter    = "hover_enter"
	EventHoverLeave    = "hover_leave"
	EventContactCopied = "contact_copied"
)

// HoverEvent is the payload of hover enter and leave events.
type HoverEvent struct {
	Entity Entity
	Name   string
}

// EventQueue is a simple FIFO queue. Events live until the end of the tick
// they were pushed in.
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

// Peek returns the pending events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
