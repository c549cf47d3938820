package stages

import (
	"context"
	"errors"
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

// ImageGenExecutor runs stage 1: discover the sheets of the uploaded PDF,
// rasterize every page in batches, write each sheet PNG, and report sheets
// to the coordinator as their PNGs land.
//
// The whole job retries as a unit on transient failure. Re-running is
// safe: PNG writes overwrite identical content, Initialize is idempotent,
// and per-sheet reports and events dedupe.
type ImageGenExecutor struct {
	blobs       storage.BlobStore
	container   *container.Client
	coordinator Reporter
	events      events.Sink
	sheets      SheetWriter
	batchSize   int
}

// NewImageGenExecutor creates the stage-1 executor. sheets may be nil.
// batchSize caps pages per /render-pages call.
func NewImageGenExecutor(blobs storage.BlobStore, cc *container.Client, rep Reporter, sink events.Sink, sheets SheetWriter, batchSize int) *ImageGenExecutor {
	if batchSize <= 0 {
		batchSize = 4
	}
	return &ImageGenExecutor{
		blobs:       blobs,
		container:   cc,
		coordinator: rep,
		events:      sink,
		sheets:      sheets,
		batchSize:   batchSize,
	}
}

// Stage identifies the queue this executor consumes.
func (e *ImageGenExecutor) Stage() models.Stage { return models.StageImageGeneration }

// Execute processes one image-gen job.
func (e *ImageGenExecutor) Execute(ctx context.Context, raw *ent.StageJob) queue.Outcome {
	job, err := decodeJob[models.ImageGenJob](raw.Payload)
	if err != nil {
		return queue.AckFailure(err)
	}
	ref := job.TenantRef

	pdf, err := e.blobs.Get(ctx, job.PDFPath)
	if err != nil {
		// Uploads may still be settling; let the queue retry.
		return queue.Retry(fmt.Errorf("reading source PDF %s: %w", job.PDFPath, err))
	}

	gen, err := e.container.GenerateImages(ctx, ref.PlanID, pdf)
	if err != nil {
		if container.IsTransient(err) {
			return queue.Retry(err)
		}
		// The container rejected the PDF outright. Nothing downstream can
		// recover, so this is the one place a worker fails the whole plan.
		if _, mfErr := e.coordinator.MarkFailed(ctx, ref.PlanID, "Corrupted or unreadable PDF"); mfErr != nil {
			return queue.Retry(mfErr)
		}
		return queue.AckFailure(err)
	}

	totalSheets := len(gen.Sheets)
	slog.Info("Plan sheets discovered",
		"plan_id", ref.PlanID, "total_sheets", totalSheets, "total_pages", gen.TotalPages)

	planName := job.PlanName
	if planName == "" {
		planName = ref.PlanID
	}
	if _, err := e.coordinator.Initialize(ctx, ref, planName, totalSheets, 0); err != nil {
		return queue.Retry(fmt.Errorf("initializing coordinator: %w", err))
	}

	sheetByPage := make(map[int]container.SheetInfo, totalSheets)
	pageNumbers := make([]int, 0, totalSheets)
	for _, sheet := range gen.Sheets {
		sheetByPage[sheet.PageNumber] = sheet
		pageNumbers = append(pageNumbers, sheet.PageNumber)
	}

	for start := 0; start < len(pageNumbers); start += e.batchSize {
		end := min(start+e.batchSize, len(pageNumbers))
		if err := e.renderBatch(ctx, job, planName, pdf, pageNumbers[start:end], sheetByPage); err != nil {
			var statusErr *container.StatusError
			if errors.As(err, &statusErr) && !container.IsTransient(err) {
				// Permanent render refusal. The missing sheets leave the
				// plan to the deadline alarm.
				return queue.AckFailure(err)
			}
			return queue.Retry(err)
		}
	}

	return queue.Ack()
}

// renderBatch rasterizes one batch of pages, writes the PNGs, and reports
// each sheet.
func (e *ImageGenExecutor) renderBatch(ctx context.Context, job models.ImageGenJob, planName string, pdf []byte, pageNumbers []int, sheetByPage map[int]container.SheetInfo) error {
	ref := job.TenantRef
	pages, err := e.container.RenderPages(ctx, ref.PlanID, pdf, pageNumbers)
	if err != nil {
		return err
	}

	for _, page := range pages {
		sheet, ok := sheetByPage[page.PageNumber]
		if !ok {
			slog.Warn("Rendered page has no discovered sheet, skipping",
				"plan_id", ref.PlanID, "page_number", page.PageNumber)
			continue
		}

		key := paths.SheetPNG(ref.OrganizationID, ref.ProjectID, ref.PlanID, sheet.SheetID)
		if err := e.blobs.Put(ctx, key, page.PNG); err != nil {
			return fmt.Errorf("writing sheet PNG %s: %w", key, err)
		}

		if e.sheets != nil {
			if err := e.sheets.UpsertImage(ctx, ref, sheet.SheetID, page.PageNumber, page.Width, page.Height, key); err != nil {
				slog.Warn("Failed to persist sheet image row",
					"plan_id", ref.PlanID, "sheet_id", sheet.SheetID, "error", err)
			}
		}

		emit(ctx, e.events, ref, events.SheetImageGeneratedPayload{
			SheetID:        sheet.SheetID,
			ProjectID:      ref.ProjectID,
			PlanID:         ref.PlanID,
			PlanName:       planName,
			PageNumber:     page.PageNumber,
			LocalImagePath: key,
			Width:          page.Width,
			Height:         page.Height,
			GeneratedAt:    time.Now().UnixMilli(),
		})

		if _, err := e.coordinator.SheetImageGenerated(ctx, ref.PlanID, sheet.SheetID); err != nil {
			return fmt.Errorf("reporting sheet %s: %w", sheet.SheetID, err)
		}
	}
	return nil
}
