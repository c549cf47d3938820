package stages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/pkg/container"
	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/paths"
	"github.com/plandeck/plandeck/pkg/queue"
	"github.com/plandeck/plandeck/pkg/storage"
)

// CalloutExecutor runs the callout half of parallel detection for one
// valid sheet.
type CalloutExecutor struct {
	blobs       storage.BlobStore
	container   *container.Client
	coordinator Reporter
	events      events.Sink
}

// NewCalloutExecutor creates the callout-detection executor.
func NewCalloutExecutor(blobs storage.BlobStore, cc *container.Client, rep Reporter, sink events.Sink) *CalloutExecutor {
	return &CalloutExecutor{
		blobs:       blobs,
		container:   cc,
		coordinator: rep,
		events:      sink,
	}
}

// Stage identifies the queue this executor consumes.
func (e *CalloutExecutor) Stage() models.Stage { return models.StageCalloutDetection }

// Execute processes one callout job.
func (e *CalloutExecutor) Execute(ctx context.Context, raw *ent.StageJob) queue.Outcome {
	job, err := decodeJob[models.CalloutJob](raw.Payload)
	if err != nil {
		return queue.AckFailure(err)
	}
	ref := job.TenantRef

	key := paths.SheetPNG(ref.OrganizationID, ref.ProjectID, ref.PlanID, job.SheetID)
	png, err := e.blobs.Get(ctx, key)
	if err != nil {
		return queue.Retry(fmt.Errorf("reading sheet PNG %s: %w", key, err))
	}

	result, err := e.container.DetectCallouts(ctx, ref.PlanID, job.SheetID, job.SheetNumber, job.ValidSheetNumbers, png)
	if err != nil {
		if container.IsTransient(err) {
			return queue.Retry(err)
		}
		// Absorbed: no callout event, but the slot completes.
		slog.Warn("Callout detection failed permanently",
			"plan_id", ref.PlanID, "sheet_id", job.SheetID, "error", err)
		if _, repErr := e.coordinator.SheetCalloutsDetected(ctx, ref.PlanID, job.SheetID); repErr != nil {
			return queue.Retry(repErr)
		}
		return queue.AckFailure(err)
	}

	markers := result.Markers
	if markers == nil {
		markers = []models.Marker{}
	}
	now := time.Now().UnixMilli()
	emit(ctx, e.events, ref, events.SheetCalloutsDetectedPayload{
		SheetID:        job.SheetID,
		PlanID:         ref.PlanID,
		Markers:        markers,
		UnmatchedCount: result.UnmatchedCount,
		DetectedAt:     now,
	})

	if len(result.GridBubbles) > 0 {
		emit(ctx, e.events, ref, events.SheetGridBubblesDetectedPayload{
			SheetID:    job.SheetID,
			Bubbles:    result.GridBubbles,
			DetectedAt: now,
		})
	}

	if _, err := e.coordinator.SheetCalloutsDetected(ctx, ref.PlanID, job.SheetID); err != nil {
		return queue.Retry(fmt.Errorf("reporting sheet %s: %w", job.SheetID, err))
	}
	return queue.Ack()
}
