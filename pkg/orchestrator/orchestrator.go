// Package orchestrator turns blob-store upload notifications into pipeline
// work. It is the single entry point of the pipeline: everything downstream
// is driven by the stage queues and the coordinator.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/paths"
)

// Enqueuer is the queue surface the orchestrator enqueues into.
type Enqueuer interface {
	Enqueue(ctx context.Context, job models.PipelineJob) error
}

// Orchestrator reacts to upload notifications by announcing the plan and
// enqueueing its image-generation job.
type Orchestrator struct {
	queue  Enqueuer
	events events.Sink
}

// New creates an Orchestrator.
func New(queue Enqueuer, sink events.Sink) *Orchestrator {
	return &Orchestrator{queue: queue, events: sink}
}

// HandleUploadNotification starts the pipeline for a canonical source.pdf
// write. Non-write actions and keys outside the canonical layout are
// ignored without error — bucket feeds carry unrelated traffic.
//
// Redelivered notifications are safe: the started event dedupes and the
// image-generation stage is idempotent end to end.
func (o *Orchestrator) HandleUploadNotification(ctx context.Context, n models.UploadNotification) error {
	switch n.Action {
	case models.ActionPutObject, models.ActionCompleteMultipartUpload:
	default:
		return nil
	}

	organizationID, projectID, planID, ok := paths.ParseUploadKey(n.ObjectKey)
	if !ok {
		slog.Debug("Ignoring non-plan object", "object_key", n.ObjectKey, "action", n.Action)
		return nil
	}

	ref := models.TenantRef{
		OrganizationID: organizationID,
		ProjectID:      projectID,
		PlanID:         planID,
	}
	slog.Info("Plan upload received",
		"plan_id", planID, "project_id", projectID, "organization_id", organizationID, "size", n.Size)

	if err := o.events.Publish(ctx, ref, events.PlanProcessingStartedPayload{
		PlanID:    planID,
		StartedAt: time.Now().UnixMilli(),
	}); err != nil {
		slog.Warn("Failed to publish plan started event", "plan_id", planID, "error", err)
	}

	job := models.ImageGenJob{
		TenantRef: ref,
		PDFPath:   n.ObjectKey,
		PlanName:  planID,
	}
	if err := o.queue.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("enqueueing image generation for plan %s: %w", planID, err)
	}
	return nil
}
