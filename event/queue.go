package event

import "github.com/lixenwraith/rooftop-fighter/parameter"

// Queue is the per-session FIFO of pending events
// Single goroutine: producers and the consumer both run inside the frame loop
type Queue struct {
	events []GameEvent
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]GameEvent, 0, parameter.EventQueueInitialCapacity)}
}

// Push appends an event
func (q *Queue) Push(t EventType, payload any) {
	q.events = append(q.events, GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}
