package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/plandeck/plandeck/pkg/models"
)

// RecordingSink is an in-memory Sink for tests. It validates payloads the
// same way the real Publisher does and applies the same dedupe rule, so
// tests observe the log a viewer would see.
type RecordingSink struct {
	mu     sync.Mutex
	events []RecordedEvent
	seen   map[string]bool // planID|name|dedupeKey
}

// RecordedEvent is one committed event with its routing ref.
type RecordedEvent struct {
	Ref   models.TenantRef
	Event Event
}

// NewRecordingSink creates an empty RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{seen: make(map[string]bool)}
}

// Publish validates, dedupes, and records the event.
func (s *RecordingSink) Publish(_ context.Context, ref models.TenantRef, evt Event) error {
	payloadJSON, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if err := ValidatePayload(evt.EventName(), payloadJSON); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if key := evt.DedupeKey(); key != "" {
		full := ref.PlanID + "|" + evt.EventName() + "|" + key
		if s.seen[full] {
			return nil
		}
		s.seen[full] = true
	}

	s.events = append(s.events, RecordedEvent{Ref: ref, Event: evt})
	return nil
}

// Events returns a copy of all recorded events in commit order.
func (s *RecordingSink) Events() []RecordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Names returns the event names in commit order.
func (s *RecordingSink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.events))
	for i, e := range s.events {
		names[i] = e.Event.EventName()
	}
	return names
}

// ByName returns all recorded events with the given name.
func (s *RecordingSink) ByName(name string) []RecordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []RecordedEvent
	for _, e := range s.events {
		if e.Event.EventName() == name {
			out = append(out, e)
		}
	}
	return out
}
