// Package stages implements the five pipeline stage executors. Each
// executor consumes one stage's queue: it reads blobs, calls the compute
// container, writes result blobs, emits the stage's events, and reports
// per-sheet completion to the coordinator.
//
// Error policy, uniformly: only transient external failures (blob not yet
// readable, container unreachable or 5xx, call deadline) surface to the
// queue as retries. Everything else is absorbed — the job acks and the
// sheet's slot is still reported to the coordinator so the pipeline can
// never deadlock on a bad sheet. Event-log trouble is logged and
// swallowed; it never blocks a report or an acknowledgement.
package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
)

// Reporter is the coordinator surface the executors report to.
type Reporter interface {
	Initialize(ctx context.Context, ref models.TenantRef, planName string, totalSheets int, timeout time.Duration) (*coordinator.State, error)
	SheetImageGenerated(ctx context.Context, planID, sheetID string) (*coordinator.State, error)
	SheetMetadataExtracted(ctx context.Context, planID, sheetID string, isValid bool, sheetNumber *string) (*coordinator.State, error)
	SheetCalloutsDetected(ctx context.Context, planID, sheetID string) (*coordinator.State, error)
	SheetLayoutDetected(ctx context.Context, planID, sheetID string) (*coordinator.State, error)
	SheetTilesGenerated(ctx context.Context, planID, sheetID string) (*coordinator.State, error)
	MarkFailed(ctx context.Context, planID, errMsg string) (*coordinator.State, error)
}

// emit publishes one event best-effort.
func emit(ctx context.Context, sink events.Sink, ref models.TenantRef, evt events.Event) {
	if err := sink.Publish(ctx, ref, evt); err != nil {
		slog.Warn("Failed to publish event",
			"plan_id", ref.PlanID, "event", evt.EventName(), "error", err)
	}
}

// decodeJob unmarshals a stage job payload.
func decodeJob[T any](payload json.RawMessage) (T, error) {
	var job T
	if err := json.Unmarshal(payload, &job); err != nil {
		return job, fmt.Errorf("decoding job payload: %w", err)
	}
	return job, nil
}
