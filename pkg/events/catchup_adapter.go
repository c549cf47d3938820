package events

import (
	"context"
	"encoding/json"

	"github.com/plandeck/plandeck/pkg/services"
)

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events committed after sinceID, wrapped in the
// same Envelope shape the NOTIFY path delivers.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]Envelope, error) {
	rows, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]Envelope, len(rows))
	for i, row := range rows {
		result[i] = Envelope{
			ID:      int64(row.ID),
			Name:    row.Name,
			Channel: row.Channel,
			Data:    json.RawMessage(row.Payload),
		}
	}
	return result, nil
}
