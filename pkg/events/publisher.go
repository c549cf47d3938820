package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/plandeck/plandeck/pkg/models"
)

// notifyLimit keeps NOTIFY payloads under PostgreSQL's 8000-byte cap.
// Larger events (marker or region lists) are delivered as a truncation
// envelope; clients fetch the full row via catchup.
const notifyLimit = 7900

// Sink is the event commit surface workers and the coordinator write to.
// Implemented by Publisher; tests use RecordingSink.
type Sink interface {
	Publish(ctx context.Context, ref models.TenantRef, evt Event) error
}

// Publisher commits typed plan events: validate against the schema
// registry, persist to the events table, and broadcast via pg_notify in
// the same transaction (NOTIFY is transactional — held until COMMIT).
//
// Duplicate emissions — redelivered queue jobs re-reporting a sheet — are
// dropped by the partial unique index on (plan_id, name, dedupe_key):
// the INSERT conflicts, no row is written, and NOTIFY is skipped.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish commits one event to the plan channel. Plan lifecycle events
// (started, progress, completed, failed) are additionally mirrored as
// transient copies on the org channel for dashboard subscribers.
func (p *Publisher) Publish(ctx context.Context, ref models.TenantRef, evt Event) error {
	name := evt.EventName()
	payloadJSON, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshaling %s payload: %w", name, err)
	}
	if err := ValidatePayload(name, payloadJSON); err != nil {
		return err
	}

	channel := PlanChannel(ref.PlanID)
	eventID, duplicate, err := p.persistAndNotify(ctx, ref, name, channel, evt.DedupeKey(), payloadJSON)
	if err != nil {
		return err
	}
	if duplicate {
		slog.Debug("Dropped duplicate event", "event", name, "plan_id", ref.PlanID, "dedupe_key", evt.DedupeKey())
		return nil
	}

	if isPlanLifecycle(name) {
		if err := p.notifyOnly(ctx, OrgChannel(ref.OrganizationID), eventID, name, payloadJSON); err != nil {
			// Mirror is best-effort: the persisted plan-channel event is
			// already committed and reachable via catchup.
			slog.Warn("Failed to mirror event to org channel",
				"event", name, "organization_id", ref.OrganizationID, "error", err)
		}
	}
	return nil
}

func isPlanLifecycle(name string) bool {
	switch name {
	case EventPlanProcessingStarted, EventPlanProcessingProgress,
		EventPlanProcessingCompleted, EventPlanProcessingFailed:
		return true
	}
	return false
}

// persistAndNotify inserts the event row and fires pg_notify on the plan
// channel in one transaction. Returns duplicate=true when the dedupe index
// rejected the row, in which case nothing was written or notified.
func (p *Publisher) persistAndNotify(ctx context.Context, ref models.TenantRef, name, channel, dedupeKey string, payloadJSON []byte) (int64, bool, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("beginning event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var dedupe sql.NullString
	if dedupeKey != "" {
		dedupe = sql.NullString{String: dedupeKey, Valid: true}
	}

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (organization_id, plan_id, name, channel, dedupe_key, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (plan_id, name, dedupe_key) WHERE dedupe_key IS NOT NULL DO NOTHING
		 RETURNING id`,
		ref.OrganizationID, ref.PlanID, name, channel, dedupe, payloadJSON, time.Now(),
	).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("persisting event %s: %w", name, err)
	}

	notifyPayload, err := buildNotifyPayload(eventID, name, channel, payloadJSON)
	if err != nil {
		return 0, false, err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return 0, false, fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("committing event transaction: %w", err)
	}
	return eventID, false, nil
}

// notifyOnly broadcasts an envelope via NOTIFY without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, eventID int64, name string, payloadJSON []byte) error {
	notifyPayload, err := buildNotifyPayload(eventID, name, channel, payloadJSON)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// buildNotifyPayload wraps the data object in an Envelope and applies the
// truncation fallback when the result would exceed the NOTIFY limit.
func buildNotifyPayload(eventID int64, name, channel string, payloadJSON []byte) (string, error) {
	full, err := json.Marshal(Envelope{
		ID:      eventID,
		Name:    name,
		Channel: channel,
		Data:    json.RawMessage(payloadJSON),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling NOTIFY envelope: %w", err)
	}
	if len(full) <= notifyLimit {
		return string(full), nil
	}

	truncated, err := json.Marshal(Envelope{
		ID:        eventID,
		Name:      name,
		Channel:   channel,
		Truncated: true,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling truncated envelope: %w", err)
	}
	return string(truncated), nil
}
