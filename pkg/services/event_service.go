package services

import (
	"context"
	"fmt"
	"time"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/event"
)

// EventService is the read and retention surface of the event log. Writes
// go through events.Publisher, which needs transactional NOTIFY; this
// service only queries and deletes.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events on a channel committed after
// sinceID, oldest first. Used for WebSocket catchup.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(int(sinceID)),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupPlanEvents removes all events for a plan
func (s *EventService) CleanupPlanEvents(ctx context.Context, planID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.PlanIDEQ(planID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup plan events: %w", err)
	}
	return count, nil
}

// CleanupOldEvents removes events older than the retention window.
func (s *EventService) CleanupOldEvents(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return count, nil
}
