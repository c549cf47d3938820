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

// SheetWriter persists per-sheet detail rows for the read API. Implemented
// by services.SheetService; a nil writer disables persistence.
type SheetWriter interface {
	UpsertImage(ctx context.Context, ref models.TenantRef, sheetID string, pageNumber, width, height int, imagePath string) error
	UpsertMetadata(ctx context.Context, ref models.TenantRef, sheetID string, md *container.Metadata) error
	RecordTilesPath(ctx context.Context, ref models.TenantRef, sheetID, tilesPath string, minZoom, maxZoom int) error
}

// MetadataExecutor runs stage 2 for one sheet: extract the title-block
// metadata from the sheet PNG and report validity to the coordinator.
//
// A permanent container failure is absorbed as isValid=false — the sheet
// drops out of the valid set but the stage slot completes so the plan
// advances.
type MetadataExecutor struct {
	blobs       storage.BlobStore
	container   *container.Client
	coordinator Reporter
	events      events.Sink
	sheets      SheetWriter
}

// NewMetadataExecutor creates the stage-2 executor. sheets may be nil.
func NewMetadataExecutor(blobs storage.BlobStore, cc *container.Client, rep Reporter, sink events.Sink, sheets SheetWriter) *MetadataExecutor {
	return &MetadataExecutor{
		blobs:       blobs,
		container:   cc,
		coordinator: rep,
		events:      sink,
		sheets:      sheets,
	}
}

// Stage identifies the queue this executor consumes.
func (e *MetadataExecutor) Stage() models.Stage { return models.StageMetadataExtraction }

// Execute processes one metadata job.
func (e *MetadataExecutor) Execute(ctx context.Context, raw *ent.StageJob) queue.Outcome {
	job, err := decodeJob[models.MetadataJob](raw.Payload)
	if err != nil {
		return queue.AckFailure(err)
	}
	ref := job.TenantRef

	key := paths.SheetPNG(ref.OrganizationID, ref.ProjectID, ref.PlanID, job.SheetID)
	png, err := e.blobs.Get(ctx, key)
	if err != nil {
		return queue.Retry(fmt.Errorf("reading sheet PNG %s: %w", key, err))
	}

	md, err := e.container.ExtractMetadata(ctx, ref.PlanID, job.SheetID, png)
	if err != nil {
		if container.IsTransient(err) {
			return queue.Retry(err)
		}
		// Absorbed: the sheet is treated as invalid and the slot completes.
		slog.Warn("Metadata extraction failed permanently, marking sheet invalid",
			"plan_id", ref.PlanID, "sheet_id", job.SheetID, "error", err)
		if _, repErr := e.coordinator.SheetMetadataExtracted(ctx, ref.PlanID, job.SheetID, false, nil); repErr != nil {
			return queue.Retry(repErr)
		}
		return queue.AckFailure(err)
	}

	if e.sheets != nil {
		if err := e.sheets.UpsertMetadata(ctx, ref, job.SheetID, md); err != nil {
			slog.Warn("Failed to persist sheet metadata",
				"plan_id", ref.PlanID, "sheet_id", job.SheetID, "error", err)
		}
	}

	if md.IsValid {
		var number string
		if md.SheetNumber != nil {
			number = *md.SheetNumber
		}
		emit(ctx, e.events, ref, events.SheetMetadataExtractedPayload{
			SheetID:     job.SheetID,
			PlanID:      ref.PlanID,
			SheetNumber: number,
			ExtractedAt: time.Now().UnixMilli(),
			SheetTitle:  md.Title,
			Discipline:  md.Discipline,
		})
	}

	if _, err := e.coordinator.SheetMetadataExtracted(ctx, ref.PlanID, job.SheetID, md.IsValid, md.SheetNumber); err != nil {
		return queue.Retry(fmt.Errorf("reporting sheet %s: %w", job.SheetID, err))
	}
	return queue.Ack()
}
