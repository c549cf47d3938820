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

// TilesExecutor runs stage 5 for one valid sheet: generate the PMTiles
// pyramid and write it to the canonical tiles key.
type TilesExecutor struct {
	blobs       storage.BlobStore
	container   *container.Client
	coordinator Reporter
	events      events.Sink
	sheets      SheetWriter
}

// NewTilesExecutor creates the stage-5 executor. sheets may be nil.
func NewTilesExecutor(blobs storage.BlobStore, cc *container.Client, rep Reporter, sink events.Sink, sheets SheetWriter) *TilesExecutor {
	return &TilesExecutor{
		blobs:       blobs,
		container:   cc,
		coordinator: rep,
		events:      sink,
		sheets:      sheets,
	}
}

// Stage identifies the queue this executor consumes.
func (e *TilesExecutor) Stage() models.Stage { return models.StageTileGeneration }

// Execute processes one tiles job.
func (e *TilesExecutor) Execute(ctx context.Context, raw *ent.StageJob) queue.Outcome {
	job, err := decodeJob[models.TilesJob](raw.Payload)
	if err != nil {
		return queue.AckFailure(err)
	}
	ref := job.TenantRef

	pngKey := paths.SheetPNG(ref.OrganizationID, ref.ProjectID, ref.PlanID, job.SheetID)
	png, err := e.blobs.Get(ctx, pngKey)
	if err != nil {
		return queue.Retry(fmt.Errorf("reading sheet PNG %s: %w", pngKey, err))
	}

	result, err := e.container.GenerateTiles(ctx, container.TilesInput{
		OrganizationID: ref.OrganizationID,
		ProjectID:      ref.ProjectID,
		PlanID:         ref.PlanID,
		SheetID:        job.SheetID,
	}, png)
	if err != nil {
		if container.IsTransient(err) {
			return queue.Retry(err)
		}
		// Absorbed: the sheet ships without tiles; the slot completes.
		slog.Warn("Tile generation failed permanently",
			"plan_id", ref.PlanID, "sheet_id", job.SheetID, "error", err)
		if _, repErr := e.coordinator.SheetTilesGenerated(ctx, ref.PlanID, job.SheetID); repErr != nil {
			return queue.Retry(repErr)
		}
		return queue.AckFailure(err)
	}

	tilesKey := paths.SheetTiles(ref.OrganizationID, ref.ProjectID, ref.PlanID, job.SheetID)
	if err := e.blobs.Put(ctx, tilesKey, result.Archive); err != nil {
		return queue.Retry(fmt.Errorf("writing tiles %s: %w", tilesKey, err))
	}

	if e.sheets != nil {
		if err := e.sheets.RecordTilesPath(ctx, ref, job.SheetID, tilesKey, result.MinZoom, result.MaxZoom); err != nil {
			slog.Warn("Failed to persist tiles path",
				"plan_id", ref.PlanID, "sheet_id", job.SheetID, "error", err)
		}
	}

	emit(ctx, e.events, ref, events.SheetTilesGeneratedPayload{
		SheetID:          job.SheetID,
		PlanID:           ref.PlanID,
		LocalPmtilesPath: tilesKey,
		MinZoom:          result.MinZoom,
		MaxZoom:          result.MaxZoom,
		GeneratedAt:      time.Now().UnixMilli(),
	})

	if _, err := e.coordinator.SheetTilesGenerated(ctx, ref.PlanID, job.SheetID); err != nil {
		return queue.Retry(fmt.Errorf("reporting sheet %s: %w", job.SheetID, err))
	}
	return queue.Ack()
}
