package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/searchevent"
)

// searchChannelPrefix mirrors events.SearchChannel. Kept local so the
// events package can depend on this one for catch-up without a cycle.
const searchChannelPrefix = "search:"

// StoredEvent is one persisted progress event, keyed by the serial row id
// that orders catch-up replays.
type StoredEvent struct {
	ID      int
	Payload map[string]interface{}
}

// EventService reads and prunes the persisted progress event stream.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events for a channel with row id
// greater than sinceID, in id order. Only search channels have history;
// other channels return an empty slice.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]StoredEvent, error) {
	searchID, ok := strings.CutPrefix(channel, searchChannelPrefix)
	if !ok {
		return nil, nil
	}

	rows, err := s.client.SearchEvent.Query().
		Where(
			searchevent.SearchIDEQ(searchID),
			searchevent.IDGT(sinceID),
		).
		Order(ent.Asc(searchevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]StoredEvent, len(rows))
	for i, row := range rows {
		events[i] = StoredEvent{ID: row.ID, Payload: row.Payload}
	}
	return events, nil
}

// CleanupSearchEvents removes all events for a search.
func (s *EventService) CleanupSearchEvents(ctx context.Context, searchID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.SearchEvent.Delete().
		Where(searchevent.SearchIDEQ(searchID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup search events: %w", err)
	}

	return count, nil
}

// CleanupOldEvents removes events older than the retention window.
func (s *EventService) CleanupOldEvents(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.SearchEvent.Delete().
		Where(searchevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}

	return count, nil
}
