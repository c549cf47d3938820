package stages

import (
	"context"
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

// LayoutExecutor runs the layout half of parallel detection. Layout
// regions are supplementary: the executor never retries, and every
// failure — blob miss, container down, 5xx — is absorbed. The slot is
// always reported so the parallel-detection join cannot stall, and the
// sheetLayoutRegionsDetected event is emitted only on success.
type LayoutExecutor struct {
	blobs       storage.BlobStore
	container   *container.Client
	coordinator Reporter
	events      events.Sink
}

// NewLayoutExecutor creates the layout-detection executor.
func NewLayoutExecutor(blobs storage.BlobStore, cc *container.Client, rep Reporter, sink events.Sink) *LayoutExecutor {
	return &LayoutExecutor{
		blobs:       blobs,
		container:   cc,
		coordinator: rep,
		events:      sink,
	}
}

// Stage identifies the queue this executor consumes.
func (e *LayoutExecutor) Stage() models.Stage { return models.StageLayoutDetection }

// Execute processes one layout job.
func (e *LayoutExecutor) Execute(ctx context.Context, raw *ent.StageJob) queue.Outcome {
	job, err := decodeJob[models.LayoutJob](raw.Payload)
	if err != nil {
		return queue.AckFailure(err)
	}
	ref := job.TenantRef

	var detectErr error
	key := paths.SheetPNG(ref.OrganizationID, ref.ProjectID, ref.PlanID, job.SheetID)
	png, err := e.blobs.Get(ctx, key)
	if err != nil {
		detectErr = err
	} else {
		result, err := e.container.DetectLayout(ctx, ref.PlanID, job.SheetID, png)
		if err != nil {
			detectErr = err
		} else {
			regions := result.Regions
			if regions == nil {
				regions = []models.LayoutRegion{}
			}
			emit(ctx, e.events, ref, events.SheetLayoutRegionsDetectedPayload{
				SheetID:    job.SheetID,
				Regions:    regions,
				DetectedAt: time.Now().UnixMilli(),
			})
		}
	}

	if detectErr != nil {
		slog.Warn("Layout detection failed, absorbing",
			"plan_id", ref.PlanID, "sheet_id", job.SheetID, "error", detectErr)
	}

	// Reported unconditionally; only a coordinator store failure retries.
	if _, err := e.coordinator.SheetLayoutDetected(ctx, ref.PlanID, job.SheetID); err != nil {
		return queue.Retry(err)
	}
	if detectErr != nil {
		return queue.AckFailure(detectErr)
	}
	return queue.Ack()
}
