package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Event is a message captured by EventLog.
type Event struct {
	RoutingKey string
	Body       json.RawMessage
}

// EventLog records published events in process instead of sending them to a
// broker. It backs the memory events driver.
type EventLog struct {
	mu       sync.Mutex
	capacity int
	events   []Event
}

// NewEventLog creates an empty EventLog that keeps the most recent capacity
// events. A capacity <= 0 keeps everything.
func NewEventLog(capacity int) *EventLog {
	return &EventLog{capacity: capacity}
}

// Publish records payload under routingKey, evicting the oldest event when
// the log is full.
func (l *EventLog) Publish(ctx context.Context, routingKey string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", routingKey, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.capacity > 0 && len(l.events) >= l.capacity {
		n := copy(l.events, l.events[len(l.events)-l.capacity+1:])
		clear(l.events[n:])
		l.events = l.events[:n]
	}
	l.events = append(l.events, Event{RoutingKey: routingKey, Body: body})
	return nil
}

// Events returns a copy of the retained events, oldest first.
func (l *EventLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}
