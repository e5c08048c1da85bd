package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/painscope/painscope/pkg/metrics"
)

// EventPublisher publishes progress events for WebSocket delivery.
// Every event is stored in the search_events table and broadcast via
// NOTIFY in the same transaction, so live delivery and catch-up replay
// can never disagree about what happened.
//
// Each public method wraps a specific typed payload struct from
// payloads.go in the wire Envelope.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishStoryDiscovered persists and broadcasts a story_discovered event.
func (p *EventPublisher) PublishStoryDiscovered(ctx context.Context, searchID string, payload StoryDiscoveredPayload) error {
	return p.publish(ctx, searchID, PhaseStories, EventTypeStoryDiscovered, payload)
}

// PublishPhaseProgress persists and broadcasts a phase_progress event.
func (p *EventPublisher) PublishPhaseProgress(ctx context.Context, searchID, phase string, payload PhaseProgressPayload) error {
	return p.publish(ctx, searchID, phase, EventTypePhaseProgress, payload)
}

// PublishSearchStatus persists a status event to the search channel and
// broadcasts a transient copy to the global searches channel. Both
// publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishSearchStatus(ctx context.Context, searchID, phase string, payload SearchStatusPayload) error {
	env := newEnvelope(searchID, phase, EventTypeSearchStatus, payload)
	envJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal SearchStatusPayload envelope: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, env, envJSON); err != nil {
		slog.Warn("Failed to publish search status to search channel",
			"search_id", searchID, "status", payload.Status, "error", err)
		firstErr = err
	} else {
		metrics.EventsPublished.WithLabelValues(EventTypeSearchStatus).Inc()
	}

	if err := p.notifyOnly(ctx, GlobalSearchesChannel, envJSON); err != nil {
		slog.Warn("Failed to publish search status to global channel",
			"search_id", searchID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// publish wraps a typed payload in an Envelope and persists + broadcasts it.
func (p *EventPublisher) publish(ctx context.Context, searchID, phase, eventType string, payload any) error {
	env := newEnvelope(searchID, phase, eventType, payload)
	envJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", eventType, err)
	}
	if err := p.persistAndNotify(ctx, env, envJSON); err != nil {
		return err
	}
	metrics.EventsPublished.WithLabelValues(eventType).Inc()
	return nil
}

func newEnvelope(searchID, phase, eventType string, payload any) Envelope {
	return Envelope{
		ID:        uuid.New().String(),
		SearchID:  searchID,
		Phase:     phase,
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// persistAndNotify stores a pre-marshaled envelope and broadcasts it via
// NOTIFY in a single transaction (pg_notify is transactional, so the
// notification is held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, env Envelope, envJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var dbEventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO search_events (event_id, search_id, phase, event_type, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		env.ID, env.SearchID, env.Phase, env.EventType, envJSON, time.Now(),
	).Scan(&dbEventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// The NOTIFY copy carries db_event_id so clients can track their
	// catch-up position. The stored payload does not include it.
	notifyPayload, err := injectDBEventIDAndTruncate(envJSON, dbEventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", SearchChannel(env.SearchID), notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled envelope via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, envJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(envJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the envelope JSON for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(envJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(envJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal envelope for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON bytes, keeping only the routing fields the client needs to
// fetch the complete event via catch-up.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		ID        string `json:"id"`
		SearchID  string `json:"search_id"`
		EventType string `json:"event_type"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"id":         routing.ID,
		"search_id":  routing.SearchID,
		"event_type": routing.EventType,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
