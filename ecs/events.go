package ecs

// EventType names an intra-tick request between systems.
type EventType string

const (
	// EventDespawn asks the despawn pass to remove Entity at the end of the tick.
	EventDespawn EventType = "despawn"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
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

// Despawn queues e for removal.
func (q *EventQueue) Despawn(e Entity) {
	q.Push(Event{Type: EventDespawn, Entity: e})
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
