package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/event"
)

// EventService queries and prunes persisted broadcast events. Events are
// written by the events publisher inside the notify transaction; this
// service only reads them (websocket catchup) and deletes expired ones.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsAfter returns events on a channel with id greater than afterID,
// oldest first. Reconnecting websocket clients use it to catch up on what
// they missed.
func (s *EventService) GetEventsAfter(ctx context.Context, channel string, afterID int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.Channel(channel),
			event.IDGT(afterID),
		).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events after %d on %s: %w", afterID, channel, err)
	}
	return events, nil
}

// GetEventsSince returns up to limit events on a channel with id greater
// than sinceID, oldest first. Backs the websocket catchup mechanism.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.Channel(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query.Limit(limit)
	}
	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events since %d on %s: %w", sinceID, channel, err)
	}
	return events, nil
}

// DeleteOlderThan removes events created before cutoff. Returns the number
// of rows deleted.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired events: %w", err)
	}
	return n, nil
}
