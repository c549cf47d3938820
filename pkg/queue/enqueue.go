package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/stagejob"
	"github.com/plandeck/plandeck/pkg/models"
)

// Enqueuer writes stage jobs into their queues. Implements
// coordinator.Enqueuer and is used directly by the orchestrator for the
// initial image-gen job.
type Enqueuer struct {
	client *ent.Client
}

// NewEnqueuer creates an Enqueuer.
func NewEnqueuer(client *ent.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// Enqueue persists one pending job, immediately claimable.
func (e *Enqueuer) Enqueue(ctx context.Context, job models.PipelineJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshaling %s job: %w", job.Stage(), err)
	}

	ref := job.Tenant()
	err = e.client.StageJob.Create().
		SetID(uuid.New().String()).
		SetStage(stagejob.Stage(job.Stage())).
		SetPayload(payload).
		SetOrganizationID(ref.OrganizationID).
		SetProjectID(ref.ProjectID).
		SetPlanID(ref.PlanID).
		SetSheetID(job.Sheet()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("enqueueing %s job: %w", job.Stage(), err)
	}

	slog.Debug("Job enqueued",
		"stage", job.Stage(), "plan_id", ref.PlanID, "sheet_id", job.Sheet())
	return nil
}
